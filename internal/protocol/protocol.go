package protocol

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vlsilabs/magic-go/internal/errors"
)

// readChunkSize is the size of each bounded read when scanning for a reply
// delimiter.
const readChunkSize = 512

// Conn speaks the newline-delimited command protocol over an established
// byte stream.
//
// Conn is not safe for concurrent use. A single MAGIC session is strictly
// sequential: the next command is never sent before the previous reply line
// has been fully consumed. Callers needing concurrency must serialize
// access or use one instance per worker.
type Conn struct {
	rw  io.ReadWriter
	log *slog.Logger
}

// NewConn wraps an established stream in a protocol connection.
// The logger receives wire-level debug output; nil means silent.
func NewConn(rw io.ReadWriter, log *slog.Logger) *Conn {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Conn{
		rw:  rw,
		log: log.With("component", "protocol"),
	}
}

// Send writes one command line to the stream, appending the newline
// delimiter. A short or failed write is fatal for the session.
func (c *Conn) Send(line string) error {
	c.log.Debug("Sending command", "command", line)

	if _, err := io.WriteString(c.rw, line+"\n"); err != nil {
		c.log.Error("Command write failed", "command", line, "error", err)

		return &errors.TransportError{Op: "write", Err: err}
	}

	return nil
}

// ReadLine reads from the stream until a newline is observed and returns
// the accumulated text with the delimiter stripped.
//
// Bytes following the delimiter within the same chunk are dropped, not
// buffered for the next call. MAGIC answers one line per command and the
// protocol is strictly request/reply, so in practice nothing trails the
// delimiter; the behavior is documented here because it is observable when
// the peer misbehaves.
//
// Any read error, including io.EOF when the peer closes the connection,
// is fatal. A reply containing invalid UTF-8 is likewise fatal.
func (c *Conn) ReadLine() (string, error) {
	var s strings.Builder

	buf := make([]byte, readChunkSize)

	for {
		n, err := c.rw.Read(buf)
		if err != nil {
			c.log.Error("Reply read failed", "error", err)

			return "", &errors.TransportError{Op: "read", Err: err}
		}

		chunk := buf[:n]
		if !utf8.Valid(chunk) {
			c.log.Error("Reply contained invalid UTF-8", "len", n)

			raw := make([]byte, n)
			copy(raw, chunk)

			return "", &errors.DecodeError{Raw: raw}
		}

		text := string(chunk)
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			s.WriteString(text[:i])

			break
		}

		s.WriteString(text)
	}

	line := s.String()
	c.log.Debug("Received reply", "reply", line)

	return line, nil
}

// RoundTrip sends one command line and blocks until its reply line has been
// fully consumed. This is the synchronization point of the protocol: the
// caller cannot issue the next command until RoundTrip returns.
func (c *Conn) RoundTrip(line string) (string, error) {
	if err := c.Send(line); err != nil {
		return "", err
	}

	return c.ReadLine()
}
