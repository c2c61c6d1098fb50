package magic

import (
	"context"
	"fmt"
)

// WithInstance manages instance lifecycle with automatic cleanup.
//
// This helper builds an instance from the given builder, executes the
// callback, and ensures the MAGIC process is terminated via Close on every
// exit path, including callback errors and panics.
//
// If the callback returns an error, it is returned to the caller. If Close
// fails, a warning is logged but does not override the callback's error.
//
// Example usage:
//
//	err := magic.WithInstance(ctx, magic.NewBuilder().Tech("sky130A"),
//	    func(inst *magic.Instance) error {
//	        if err := inst.GetCell(ctx, "sram"); err != nil {
//	            return err
//	        }
//	        return inst.SelectBBox(ctx)
//	    })
func WithInstance(ctx context.Context, builder Builder, fn func(*Instance) error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	log := builder.opts.Logger
	if log == nil {
		log = NopLogger()
	}

	inst, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to build instance: %w", err)
	}

	defer func() {
		if closeErr := inst.Close(); closeErr != nil {
			log.Warn("failed to close instance", "error", closeErr)
		}
	}()

	return fn(inst)
}
