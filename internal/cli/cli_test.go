package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlsilabs/magic-go/internal/config"
	"github.com/vlsilabs/magic-go/internal/errors"
)

func TestBuildArgs(t *testing.T) {
	t.Run("headless flags always present", func(t *testing.T) {
		args := BuildArgs(&config.Options{})

		require.Equal(t, []string{"-dnull", "-noconsole"}, args)
	})

	t.Run("technology flag", func(t *testing.T) {
		args := BuildArgs(&config.Options{Tech: "sky130A"})

		require.Equal(t, []string{"-dnull", "-noconsole", "-T", "sky130A"}, args)
	})
}

func TestDiscover_ExplicitPath(t *testing.T) {
	t.Run("existing path is used as-is", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "magic")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

		d := NewDiscoverer(&Config{MagicPath: path})

		found, err := d.Discover()
		require.NoError(t, err)
		require.Equal(t, path, found)
	})

	t.Run("missing explicit path returns NotFoundError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-magic")

		d := NewDiscoverer(&Config{MagicPath: path})

		_, err := d.Discover()
		require.Error(t, err)

		var nfErr *errors.NotFoundError

		require.True(t, stderrors.As(err, &nfErr))
		require.Equal(t, []string{path}, nfErr.SearchedPaths)
	})

	t.Run("explicit path is not subject to PATH fallback", func(t *testing.T) {
		// Even if a "magic" exists somewhere in PATH, an explicit path that
		// does not exist must fail rather than fall back.
		d := NewDiscoverer(&Config{MagicPath: "/definitely/not/here/magic"})

		_, err := d.Discover()

		var nfErr *errors.NotFoundError

		require.True(t, stderrors.As(err, &nfErr))
		require.Len(t, nfErr.SearchedPaths, 1)
	})
}

func TestNewDiscoverer_NilConfig(t *testing.T) {
	// Should not panic with nil config.
	d := NewDiscoverer(nil)
	require.NotNil(t, d)
}
