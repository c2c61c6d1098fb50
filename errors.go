package magic

import "github.com/vlsilabs/magic-go/internal/errors"

// Re-export error types from internal package

// NotFoundError indicates the MAGIC binary was not found.
type NotFoundError = errors.NotFoundError

// SpawnError indicates the MAGIC process failed to start.
type SpawnError = errors.SpawnError

// HandshakeError indicates the startup handshake failed after spawn.
type HandshakeError = errors.HandshakeError

// TransportError indicates an I/O failure on the established connection.
type TransportError = errors.TransportError

// DecodeError indicates a reply contained invalid UTF-8.
type DecodeError = errors.DecodeError

// MagicError is the base interface for all SDK errors.
type MagicError = errors.MagicError

// Re-export sentinel errors from internal package.
var (
	// ErrStartupTimeout indicates MAGIC never opened its command listener
	// within the configured connect timeout.
	ErrStartupTimeout = errors.ErrStartupTimeout

	// ErrInstanceClosed indicates the instance has been closed and cannot
	// be reused.
	ErrInstanceClosed = errors.ErrInstanceClosed
)
