package cli

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vlsilabs/magic-go/internal/errors"
)

// BinaryName is the name resolved through PATH when no explicit path is
// configured.
const BinaryName = "magic"

// Config holds configuration for MAGIC binary discovery.
type Config struct {
	// MagicPath is an explicit binary path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	MagicPath string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the MAGIC binary.
type Discoverer interface {
	// Discover locates the MAGIC binary.
	// Returns the path to the binary or NotFoundError.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new binary discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the MAGIC binary.
func (d *discoverer) Discover() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.MagicPath != "" {
		d.log.Debug("Using explicit MAGIC path", "magic_path", d.cfg.MagicPath)

		if _, err := os.Stat(d.cfg.MagicPath); err == nil {
			return d.cfg.MagicPath, nil
		}

		d.log.Debug("Explicit MAGIC path not found", "magic_path", d.cfg.MagicPath)

		return "", &errors.NotFoundError{SearchedPaths: []string{d.cfg.MagicPath}}
	}

	searchedPaths := make([]string, 0, 4)

	// Search in PATH
	d.log.Debug("Searching for 'magic' in PATH")

	if path, err := exec.LookPath(BinaryName); err == nil {
		d.log.Debug("Found 'magic' in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	// Check common locations
	commonPaths := []string{
		"/usr/local/bin/magic",
		"/usr/bin/magic",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/magic"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found MAGIC at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("MAGIC binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.NotFoundError{SearchedPaths: searchedPaths}
}
