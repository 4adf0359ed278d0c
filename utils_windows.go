//go:build windows

package main

import (
	"context"
	"os"
	"time"
)

// resizePollInterval is how often the console size is checked; Windows has no
// resize signal.
const resizePollInterval = 250 * time.Millisecond

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// watchResize polls the console size and sends a notification whenever it
// changes, until ctx is done.
func watchResize(ctx context.Context, out *os.File) <-chan struct{} {
	resizes := make(chan struct{})

	go func() {
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()

		last := terminalSize(out)
		for {
			select {
			case <-ticker.C:
				if size := terminalSize(out); size != last {
					last = size
					if !notify(ctx, resizes) {
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return resizes
}
