package errors

import (
	"errors"
	"fmt"
)

// MagicError is the base interface for all SDK errors.
type MagicError interface {
	error
	IsMagicError() bool
}

// Compile-time verification that all error types implement MagicError.
var (
	_ MagicError = (*NotFoundError)(nil)
	_ MagicError = (*SpawnError)(nil)
	_ MagicError = (*HandshakeError)(nil)
	_ MagicError = (*TransportError)(nil)
	_ MagicError = (*DecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrStartupTimeout indicates MAGIC never opened its command listener
	// within the configured connect timeout.
	ErrStartupTimeout = errors.New("timed out waiting for MAGIC command listener")

	// ErrInstanceClosed indicates the instance has been closed and cannot be
	// reused. Instances are single-use; build a new one.
	ErrInstanceClosed = errors.New("magic instance closed")
)

// NotFoundError indicates the MAGIC binary was not found.
type NotFoundError struct {
	SearchedPaths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("magic binary not found in: %v", e.SearchedPaths)
}

// IsMagicError implements MagicError.
func (e *NotFoundError) IsMagicError() bool { return true }

// SpawnError indicates the MAGIC process failed to start.
// Spawn failures are fatal; there is no fallback search or retry.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start MAGIC process: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsMagicError implements MagicError.
func (e *SpawnError) IsMagicError() bool { return true }

// HandshakeError indicates the startup handshake failed after the process
// was spawned. Stage identifies the phase: "bootstrap" means the socket
// script could not be written to the child's stdin, "connect" means the
// loopback dial never succeeded.
type HandshakeError struct {
	Stage string
	Err   error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("MAGIC startup handshake failed (%s): %v", e.Stage, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// IsMagicError implements MagicError.
func (e *HandshakeError) IsMagicError() bool { return true }

// TransportError indicates an I/O failure on the established connection.
// Op is "write" for a failed command send, "read" for a failed reply read.
// Transport failures are fatal for the session; there is no reconnection.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsMagicError implements MagicError.
func (e *TransportError) IsMagicError() bool { return true }

// DecodeError indicates a reply contained invalid UTF-8.
// The raw bytes that failed to decode are preserved.
type DecodeError struct {
	Raw []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in reply (%d bytes)", len(e.Raw))
}

// IsMagicError implements MagicError.
func (e *DecodeError) IsMagicError() bool { return true }
