package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// withTermination returns a context that is cancelled on Ctrl+C or SIGTERM. In
// raw mode Ctrl+C normally arrives as a key; the signal covers termination
// requests from outside the terminal.
func withTermination(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// notify delivers one resize notification. It reports false when ctx ended
// first.
func notify(ctx context.Context, resizes chan<- struct{}) bool {
	select {
	case resizes <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}
