package subprocess

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/vlsilabs/magic-go/internal/cli"
	"github.com/vlsilabs/magic-go/internal/config"
	"github.com/vlsilabs/magic-go/internal/errors"
)

// serverSockScript is the Tcl bootstrap that makes MAGIC open its command
// listener. It expects the svcPort variable to be assigned before it runs;
// Start writes that assignment ahead of the script.
//
//go:embed serversock.tcl
var serverSockScript []byte

// Process owns a spawned MAGIC child process.
//
// The process's stdout and stderr are discarded entirely; the only channels
// to the child are its stdin (bootstrap script) and the TCP command socket
// the bootstrap opens.
type Process struct {
	log    *slog.Logger
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	mu     sync.Mutex
	killed bool
}

// Start discovers the MAGIC binary, spawns it headless, and injects the
// bootstrap script with the configured port over the child's stdin.
//
// Returns NotFoundError if the binary cannot be located, SpawnError if the
// process fails to start, and HandshakeError (stage "bootstrap") if the
// script cannot be written. The child's listener readiness is not awaited
// here; use Connect for that.
func Start(options *config.Options) (*Process, error) {
	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "subprocess")

	discoverer := cli.NewDiscoverer(&cli.Config{
		MagicPath: options.MagicPath,
		Logger:    log,
	})

	magicPath, err := discoverer.Discover()
	if err != nil {
		return nil, fmt.Errorf("discover MAGIC binary: %w", err)
	}

	args := cli.BuildArgs(options)
	log.Debug("Built MAGIC invocation", "magic_path", magicPath, "args", args)

	//nolint:gosec // G204: launching the configured layout tool is the point
	cmd := exec.Command(magicPath, args...)

	if options.Cwd != "" {
		cmd.Dir = options.Cwd
	}

	// stdout and stderr stay nil: MAGIC's console output is not observed.
	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Error("Failed to create stdin pipe", "error", err)

		return nil, &errors.SpawnError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start MAGIC process", "error", err)

		return nil, &errors.SpawnError{Err: err}
	}

	log.Info("MAGIC process started", "pid", cmd.Process.Pid, "port", options.Port)

	p := &Process{
		log:   log,
		cmd:   cmd,
		stdin: stdin,
	}

	if err := p.bootstrap(options.Port); err != nil {
		// Never leave the child orphaned on a failed handshake.
		_ = p.Kill()

		return nil, err
	}

	return p, nil
}

// bootstrap writes the port assignment and the embedded socket script to
// the child's stdin. MAGIC executes the script once its own startup
// finishes; the timing is not observable from here.
func (p *Process) bootstrap(port uint16) error {
	p.log.Debug("Writing bootstrap script", "port", port)

	if _, err := fmt.Fprintf(p.stdin, "set svcPort %d\n", port); err != nil {
		return &errors.HandshakeError{Stage: "bootstrap", Err: fmt.Errorf("write port assignment: %w", err)}
	}

	if _, err := p.stdin.Write(serverSockScript); err != nil {
		return &errors.HandshakeError{Stage: "bootstrap", Err: fmt.Errorf("write socket script: %w", err)}
	}

	return nil
}

// Pid returns the child's process id, or -1 if the process never started.
func (p *Process) Pid() int {
	if p.cmd == nil || p.cmd.Process == nil {
		return -1
	}

	return p.cmd.Process.Pid
}

// Kill forcibly terminates the child process and reaps it.
//
// Kill failures on an already-exited process are swallowed: the desired end
// state was already reached. Safe to call multiple times.
func (p *Process) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.killed {
		return nil
	}

	p.killed = true

	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}

	p.log.Debug("Killing MAGIC process", "pid", p.cmd.Process.Pid)

	_ = p.stdin.Close()

	if err := p.cmd.Process.Kill(); err != nil {
		p.log.Debug("Kill failed, process likely already exited", "error", err)
	}

	// Reap the child so it never lingers as a zombie. The error is the
	// kill signal itself and carries no information.
	_ = p.cmd.Wait()

	return nil
}
