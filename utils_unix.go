//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// watchResize sends a notification on every SIGWINCH until ctx is done.
func watchResize(ctx context.Context, _ *os.File) <-chan struct{} {
	resizes := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGWINCH)

	go func() {
		defer signal.Stop(sigChan)

		for {
			select {
			case <-sigChan:
				if !notify(ctx, resizes) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return resizes
}
