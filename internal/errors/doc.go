// Package errors defines error types for the MAGIC SDK.
//
// This package provides structured error types that identify which phase of
// a MAGIC session failed: binary discovery, process spawn, startup handshake,
// or transport I/O on the established connection. All error types support
// error unwrapping and can be checked using errors.Is, errors.As, and
// errors.AsType.
package errors
