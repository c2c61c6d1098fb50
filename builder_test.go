package magic

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vlsilabs/magic-go/internal/config"
)

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder()

	require.Equal(t, "", b.opts.Cwd)
	require.Equal(t, "", b.opts.Tech)
	require.Equal(t, "", b.opts.MagicPath)
	require.Equal(t, config.DefaultPort, b.opts.Port)
	require.Equal(t, config.DefaultConnectTimeout, b.opts.ConnectTimeout)
	require.Nil(t, b.opts.Logger)
}

func TestBuilder_FluentConstruction(t *testing.T) {
	b := NewBuilder().
		Cwd("/fake/path/dir").
		Tech("sky130A").
		MagicPath("/opt/magic/bin/magic").
		Port(8888).
		ConnectTimeout(10 * time.Second).
		Logger(slog.Default())

	require.Equal(t, "/fake/path/dir", b.opts.Cwd)
	require.Equal(t, "sky130A", b.opts.Tech)
	require.Equal(t, "/opt/magic/bin/magic", b.opts.MagicPath)
	require.Equal(t, uint16(8888), b.opts.Port)
	require.Equal(t, 10*time.Second, b.opts.ConnectTimeout)
	require.NotNil(t, b.opts.Logger)
}

func TestBuilder_SettersDoNotMutateReceiver(t *testing.T) {
	base := NewBuilder().Tech("scmos")

	derived := base.Tech("sky130A").Port(7777)

	// The base builder is untouched; each setter returned a new value.
	require.Equal(t, "scmos", base.opts.Tech)
	require.Equal(t, config.DefaultPort, base.opts.Port)

	require.Equal(t, "sky130A", derived.opts.Tech)
	require.Equal(t, uint16(7777), derived.opts.Port)
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b := NewBuilder().
		Tech("scmos").
		Tech("sky130A").
		Port(1111).
		Port(2222)

	require.Equal(t, "sky130A", b.opts.Tech)
	require.Equal(t, uint16(2222), b.opts.Port)
}

func TestBuild_BinaryNotFound(t *testing.T) {
	_, err := NewBuilder().
		MagicPath(filepath.Join(t.TempDir(), "no-such-magic")).
		Build(context.Background())
	require.Error(t, err)

	var nfErr *NotFoundError

	require.True(t, stderrors.As(err, &nfErr))
}

func TestBuild_ConnectTimeout(t *testing.T) {
	// Reserve a port with no listener so the connect loop can never
	// succeed, and verify Build gives up within the configured budget
	// and cleans up the spawned process.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := uint16(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	start := time.Now()

	_, err = NewBuilder().
		MagicPath(fakeMagicBinary(t)).
		Port(port).
		ConnectTimeout(200 * time.Millisecond).
		Build(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrStartupTimeout)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestBuild_CancelledContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := uint16(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = NewBuilder().
		MagicPath(fakeMagicBinary(t)).
		Port(port).
		ConnectTimeout(0). // unbounded, only ctx limits the wait
		Build(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
