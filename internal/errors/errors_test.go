package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{SearchedPaths: []string{"$PATH", "/usr/local/bin/magic"}}

	require.Contains(t, err.Error(), "magic binary not found")
	require.Contains(t, err.Error(), "/usr/local/bin/magic")
	require.True(t, err.IsMagicError())
}

func TestSpawnError_Unwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := &SpawnError{Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "failed to start MAGIC process")
}

func TestHandshakeError_Stages(t *testing.T) {
	t.Run("bootstrap stage", func(t *testing.T) {
		err := &HandshakeError{Stage: "bootstrap", Err: io.ErrClosedPipe}

		require.Contains(t, err.Error(), "bootstrap")
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})

	t.Run("connect stage carries timeout sentinel", func(t *testing.T) {
		err := &HandshakeError{Stage: "connect", Err: ErrStartupTimeout}

		require.Contains(t, err.Error(), "connect")
		require.ErrorIs(t, err, ErrStartupTimeout)
	})
}

func TestTransportError(t *testing.T) {
	err := &TransportError{Op: "read", Err: io.EOF}

	require.Contains(t, err.Error(), "transport read failed")
	require.ErrorIs(t, err, io.EOF)
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Raw: []byte{0xff, 0xfe}}

	require.Contains(t, err.Error(), "invalid UTF-8")
	require.Contains(t, err.Error(), "2 bytes")
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	inner := &HandshakeError{Stage: "connect", Err: ErrStartupTimeout}
	wrapped := fmt.Errorf("build instance: %w", inner)

	var hsErr *HandshakeError

	require.True(t, stderrors.As(wrapped, &hsErr))
	require.Equal(t, "connect", hsErr.Stage)
	require.ErrorIs(t, wrapped, ErrStartupTimeout)
}

func TestMagicErrorInterface(t *testing.T) {
	errs := []MagicError{
		&NotFoundError{},
		&SpawnError{},
		&HandshakeError{},
		&TransportError{},
		&DecodeError{},
	}

	for _, err := range errs {
		require.True(t, err.IsMagicError())
	}
}
