// Package protocol implements the newline-delimited command protocol spoken
// over a MAGIC command socket.
//
// The protocol is plain text: one command per line, one reply line per
// command, strictly paired. Command content is opaque to this package; no
// MAGIC semantics are parsed beyond delimiting a line.
//
// Example usage:
//
//	conn := protocol.NewConn(stream, log)
//
//	reply, err := conn.RoundTrip("select bbox")
package protocol
