package subprocess

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/vlsilabs/magic-go/internal/errors"
)

const (
	// connectBackoffStart is the delay after the first failed dial.
	connectBackoffStart = 2 * time.Millisecond

	// connectBackoffCap bounds the delay between dial attempts.
	connectBackoffCap = 250 * time.Millisecond
)

// Connect dials the MAGIC command listener on loopback until it accepts.
//
// MAGIC opens the listener only after its own startup sequence finishes,
// at a time this client cannot observe, so readiness is detected by
// successful connect. Dials are retried with exponential backoff from
// 2ms up to 250ms. A non-zero timeout bounds the whole loop and expiry
// returns HandshakeError wrapping ErrStartupTimeout; a zero timeout
// retries until the context is cancelled.
func Connect(ctx context.Context, port uint16, timeout time.Duration, log *slog.Logger) (net.Conn, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Debug("Waiting for MAGIC command listener", "addr", addr, "timeout", timeout)

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	var dialer net.Dialer

	backoff := connectBackoffStart
	attempts := 0

	for {
		attempts++

		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			log.Info("Connected to MAGIC command listener", "addr", addr, "attempts", attempts)

			return conn, nil
		}

		if ctx.Err() != nil {
			return nil, &errors.HandshakeError{Stage: "connect", Err: ctx.Err()}
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Error("MAGIC command listener never became ready", "addr", addr, "attempts", attempts)

			return nil, &errors.HandshakeError{Stage: "connect", Err: errors.ErrStartupTimeout}
		}

		select {
		case <-ctx.Done():
			return nil, &errors.HandshakeError{Stage: "connect", Err: ctx.Err()}
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > connectBackoffCap {
			backoff = connectBackoffCap
		}
	}
}
