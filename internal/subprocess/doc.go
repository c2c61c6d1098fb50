// Package subprocess manages the MAGIC child process lifecycle.
//
// Start spawns MAGIC headless with its stdin piped and its stdout/stderr
// discarded, then injects the embedded serversock.tcl bootstrap (prefixed
// with a port assignment) over stdin. Connect waits for the bootstrap's
// TCP listener to come up by dialing loopback with backoff. Kill forcibly
// terminates and reaps the child; the process is never left orphaned.
package subprocess
