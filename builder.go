package magic

import (
	"context"
	"log/slog"
	"time"

	"github.com/vlsilabs/magic-go/internal/config"
)

// Builder accumulates optional startup parameters for a MAGIC instance.
//
// Builder is a value type: every setter returns a new Builder, leaving the
// receiver untouched, so partially configured builders can be shared and
// extended safely. Setting the same field twice overwrites the previous
// value. No setter can fail; invalid values surface from Build as spawn or
// connect errors.
//
// Example:
//
//	builder := magic.NewBuilder().Cwd("/path/to/cwd").Tech("scmos")
type Builder struct {
	opts config.Options
}

// NewBuilder creates a Builder with defaults: no working directory override,
// no technology flag, binary resolved via PATH, port 9999.
func NewBuilder() Builder {
	return Builder{
		opts: config.Options{
			Port:           config.DefaultPort,
			ConnectTimeout: config.DefaultConnectTimeout,
		},
	}
}

// Cwd sets the working directory in which to start MAGIC.
func (b Builder) Cwd(dir string) Builder {
	b.opts.Cwd = dir

	return b
}

// Tech sets the name of the technology for MAGIC to use.
func (b Builder) Tech(name string) Builder {
	b.opts.Tech = name

	return b
}

// MagicPath sets an explicit path to the MAGIC binary.
//
// If not specified, the binary is found by searching the system PATH and
// common installation directories.
func (b Builder) MagicPath(path string) Builder {
	b.opts.MagicPath = path

	return b
}

// Port sets the port to use when communicating with MAGIC.
//
// Make sure this port is not already in use, either by another MAGIC
// instance or by some other process. The default port is 9999.
func (b Builder) Port(port uint16) Builder {
	b.opts.Port = port

	return b
}

// ConnectTimeout bounds how long Build waits for MAGIC to open its command
// listener. The default is 30 seconds. Zero means wait until the context
// is cancelled.
func (b Builder) ConnectTimeout(d time.Duration) Builder {
	b.opts.ConnectTimeout = d

	return b
}

// Logger sets the structured logger for debug output.
// If not set, logging is disabled (silent operation).
func (b Builder) Logger(log *slog.Logger) Builder {
	b.opts.Logger = log

	return b
}

// Build consumes the builder, returning a connected Instance.
//
// This starts a MAGIC process in the background, injects the bootstrap
// script that makes it listen on the configured port, and blocks until a
// connection to that listener succeeds or the connect timeout expires.
func (b Builder) Build(ctx context.Context) (*Instance, error) {
	return newInstance(ctx, &b.opts)
}
