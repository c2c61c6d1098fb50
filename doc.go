// Package magic provides a Go SDK for driving the MAGIC VLSI layout editor
// as a subprocess.
//
// The SDK spawns MAGIC headless, injects a Tcl bootstrap script over the
// child's stdin so MAGIC opens a TCP command listener on loopback, connects
// to that listener, and exposes line-oriented command methods. Commands are
// opaque text to the SDK: one line out, one reply line back, strictly
// paired.
//
// # Basic Usage
//
// Build an instance with the fluent builder, issue commands, and close it:
//
//	ctx := context.Background()
//
//	inst, err := magic.NewBuilder().
//	    Tech("sky130A").
//	    Port(9999).
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close()
//
//	if err := inst.GetCell(ctx, "sram"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := inst.SelectBBox(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scoped Lifecycle
//
// WithInstance guarantees the MAGIC process is terminated on every exit
// path:
//
//	err := magic.WithInstance(ctx, magic.NewBuilder().Tech("sky130A"),
//	    func(inst *magic.Instance) error {
//	        return inst.GetCell(ctx, "sram")
//	    })
//
// # Concurrency
//
// A single Instance is synchronous and not safe for concurrent use;
// serialize access or give each worker its own instance. Independent
// instances on distinct ports run fully in parallel, each owning its own
// MAGIC process and socket.
//
// # Logging
//
// For detailed operation tracking, pass a structured logger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	inst, err := magic.NewBuilder().Logger(logger).Build(ctx)
//
// # Error Handling
//
// The SDK provides typed errors identifying which phase failed:
//
//	inst, err := magic.NewBuilder().Build(ctx)
//	if err != nil {
//	    if nfErr, ok := errors.AsType[*magic.NotFoundError](err); ok {
//	        log.Fatalf("MAGIC not installed, searched: %v", nfErr.SearchedPaths)
//	    }
//	    if errors.Is(err, magic.ErrStartupTimeout) {
//	        log.Fatal("MAGIC never opened its command listener")
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// This SDK requires MAGIC to be installed and available in your system
// PATH. You can specify a custom binary path with Builder.MagicPath.
package magic
