package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"mdpresent/deck"
)

const (
	defaultRows    = 24
	defaultColumns = 80
)

var termGetSize = term.GetSize

// terminal is the deck.Screen backed by the process's standard streams.
type terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// openTerminal puts stdin into raw mode so single key presses arrive unbuffered.
func openTerminal() (*terminal, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	return &terminal{in: os.Stdin, out: os.Stdout, oldState: oldState}, nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Size returns the terminal size, or 24x80 when it cannot be queried.
func (t *terminal) Size() deck.Size {
	return terminalSize(t.out)
}

func terminalSize(f *os.File) deck.Size {
	cols, rows, err := termGetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return deck.Size{Rows: defaultRows, Columns: defaultColumns}
	}
	return deck.Size{Rows: rows, Columns: cols}
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Write sends s to the terminal. Raw mode disables output post-processing,
// so line feeds are turned into carriage return + line feed here.
func (t *terminal) Write(s string) error {
	_, err := t.out.WriteString(strings.ReplaceAll(s, "\n", "\r\n"))
	return err
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Restore returns stdin to the mode it had before openTerminal.
func (t *terminal) Restore() error {
	return term.Restore(int(t.in.Fd()), t.oldState)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// readKeys decodes key presses from stdin until it fails or ctx is done. The
// returned channel is closed when reading stops.
func (t *terminal) readKeys(ctx context.Context) <-chan deck.Key {
	keys := make(chan deck.Key)

	go func() {
		defer close(keys)
		buf := make([]byte, 32)

		for {
			n, err := t.in.Read(buf)
			if err != nil {
				return
			}

			for _, key := range deck.DecodeKeys(buf[:n]) {
				select {
				case keys <- key:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return keys
}
