package magic

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/vlsilabs/magic-go/internal/config"
	"github.com/vlsilabs/magic-go/internal/errors"
	"github.com/vlsilabs/magic-go/internal/protocol"
	"github.com/vlsilabs/magic-go/internal/subprocess"
)

// Instance is a handle to a running MAGIC process.
//
// An Instance owns exactly one child process and one open connection to its
// command listener. It is created by Builder.Build and must be released
// with Close, which forcibly terminates the child; the process is never
// left orphaned.
//
// Instance is not safe for concurrent use. Every command blocks until its
// reply line has been consumed, so sequential callers get strictly paired
// request/reply ordering; concurrent callers must serialize access or use
// one instance per worker.
type Instance struct {
	id   string
	log  *slog.Logger
	proc *subprocess.Process
	sock net.Conn
	conn *protocol.Conn

	mu     sync.Mutex
	closed bool
}

// newInstance runs the startup handshake: spawn, bootstrap, connect.
func newInstance(ctx context.Context, opts *config.Options) (*Instance, error) {
	log := opts.Logger
	if log == nil {
		log = NopLogger()
	}

	id := ulid.Make().String()
	log = log.With("instance_id", id)

	proc, err := subprocess.Start(opts)
	if err != nil {
		return nil, err
	}

	sock, err := subprocess.Connect(ctx, opts.Port, opts.ConnectTimeout, log)
	if err != nil {
		// The child is already running; tear it down before reporting.
		_ = proc.Kill()

		return nil, err
	}

	log.Info("MAGIC instance ready", "pid", proc.Pid(), "port", opts.Port)

	return &Instance{
		id:   id,
		log:  log,
		proc: proc,
		sock: sock,
		conn: protocol.NewConn(sock, log),
	}, nil
}

// ID returns the unique identifier of this instance, as used in log output.
func (m *Instance) ID() string {
	return m.id
}

// Command sends one raw command line to MAGIC and returns its reply line.
//
// The command is opaque text; no MAGIC semantics are parsed. This is the
// extension seam for commands whose replies carry structure the typed
// methods discard.
func (m *Instance) Command(ctx context.Context, line string) (string, error) {
	if err := m.checkUsable(ctx); err != nil {
		return "", err
	}

	return m.conn.RoundTrip(line)
}

// GetCell creates a subcell instance within the current edit cell.
//
// With only the cell name given, an orientation of zero is assumed and the
// cell is placed such that the lower-left corner of its bounding box lands
// at the lower-left corner of the cursor box in the parent cell.
func (m *Instance) GetCell(ctx context.Context, cell string) error {
	_, err := m.Command(ctx, fmt.Sprintf("getcell %s", cell))

	return err
}

// Sideways flips the selection from left to right.
//
// Flipping is done such that the lower left-hand corner of the selection
// remains in the same place through the flip.
func (m *Instance) Sideways(ctx context.Context) error {
	_, err := m.Command(ctx, "sideways")

	return err
}

// SelectBBox queries the bounding box of the selection.
//
// The reply is currently discarded; use Command("select bbox") to obtain
// the raw reply line until a typed decoder exists.
func (m *Instance) SelectBBox(ctx context.Context) error {
	_, err := m.Command(ctx, "select bbox")

	return err
}

// checkUsable rejects operations on a closed instance and honors context
// cancellation before any bytes hit the wire. A command already blocked on
// its reply is not interruptible; tearing down the instance is the only
// way out, and that is not a designed cancellation path.
func (m *Instance) checkUsable(ctx context.Context) error {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return errors.ErrInstanceClosed
	}

	return ctx.Err()
}

// Close terminates the MAGIC process and releases the connection.
//
// The child is killed unconditionally; no shutdown command is sent first,
// and kill failures on an already-exited process are swallowed. Safe to
// call multiple times.
func (m *Instance) Close() error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()

		return nil
	}

	m.closed = true
	m.mu.Unlock()

	m.log.Info("Closing MAGIC instance", "pid", m.proc.Pid())

	_ = m.sock.Close()

	return m.proc.Kill()
}
