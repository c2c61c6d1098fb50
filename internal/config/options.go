// Package config provides the resolved configuration consumed by the
// internal packages of the MAGIC SDK.
package config

import (
	"log/slog"
	"time"
)

// DefaultPort is the TCP port MAGIC's command listener binds when the
// builder does not override it.
const DefaultPort uint16 = 9999

// DefaultConnectTimeout bounds the startup connect loop. A zero timeout in
// Options means retry indefinitely.
const DefaultConnectTimeout = 30 * time.Second

// Options is the finalized configuration produced by the builder.
//
// All fields are optional except Port, which always carries a value.
// No field is validated here; invalid values surface as spawn or connect
// failures when the instance is built.
type Options struct {
	// Cwd is the working directory for the MAGIC process.
	// Empty means inherit the caller's working directory.
	Cwd string

	// Tech is the technology name passed to MAGIC via -T.
	// Empty means MAGIC's own default technology.
	Tech string

	// MagicPath is an explicit path to the MAGIC binary.
	// Empty means resolve "magic" through discovery.
	MagicPath string

	// Port is the TCP port the bootstrap script instructs MAGIC to
	// listen on.
	Port uint16

	// ConnectTimeout is the overall budget for the startup connect loop.
	// Zero means no limit: keep retrying until the context is cancelled.
	ConnectTimeout time.Duration

	// Logger receives structured debug output. Nil means silent.
	Logger *slog.Logger
}
