package deck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mdpresent/markdown"
)

// fakeScreen records everything written to it.
type fakeScreen struct {
	size   Size
	writes []string
	err    error
}

func (f *fakeScreen) Size() Size { return f.size }

func (f *fakeScreen) Write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, s)
	return nil
}

// frames counts the full-frame writes.
func (f *fakeScreen) frames() int {
	n := 0
	for _, w := range f.writes {
		if strings.HasPrefix(w, markdown.ClearScreen+markdown.HideCursor) {
			n++
		}
	}
	return n
}

func testPages() []Page {
	return Parse("# Deck\nintro\n## One\nfirst\n## Two\nsecond\n")
}

func TestNewSession_NoPages(t *testing.T) {
	_, err := NewSession(nil, &fakeScreen{}, nil)
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("expected ErrNoPages, got %v", err)
	}
}

func TestSession_DrawWritesFrameThenStatus(t *testing.T) {
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}}
	session, err := NewSession(testPages(), screen, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := session.Draw(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(screen.writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(screen.writes))
	}
	wantFrame := markdown.ClearScreen + markdown.HideCursor + Render(testPages()[0], screen.size)
	if screen.writes[0] != wantFrame {
		t.Errorf("expected frame %q, got %q", wantFrame, screen.writes[0])
	}
	if screen.writes[1] != "\n"+StatusLine(0, 3) {
		t.Errorf("expected status line, got %q", screen.writes[1])
	}
}

func TestSession_HandleKey(t *testing.T) {
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}}
	session, _ := NewSession(testPages(), screen, nil)

	steps := []struct {
		key    Key
		index  int
		frames int
	}{
		{KeyPrev, 0, 0},
		{KeyUnknown, 0, 0},
		{KeyNext, 1, 1},
		{KeyNext, 2, 2},
		{KeyNext, 2, 2},
		{KeyPrev, 1, 3},
	}

	for i, step := range steps {
		quit, err := session.HandleKey(step.key)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if quit {
			t.Fatalf("step %d: unexpected quit", i)
		}
		if session.Index() != step.index {
			t.Errorf("step %d: expected index %d, got %d", i, step.index, session.Index())
		}
		if screen.frames() != step.frames {
			t.Errorf("step %d: expected %d frames, got %d", i, step.frames, screen.frames())
		}
	}

	quit, err := session.HandleKey(KeyQuit)
	if err != nil || !quit {
		t.Errorf("expected quit without error, got quit=%v err=%v", quit, err)
	}
}

func TestSession_ResizeKeepsIndex(t *testing.T) {
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}}
	session, _ := NewSession(testPages(), screen, nil)
	session.HandleKey(KeyNext)

	screen.size = Size{Rows: 30, Columns: 120}
	if err := session.Resize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Index() != 1 {
		t.Errorf("expected index 1, got %d", session.Index())
	}
	last := screen.writes[len(screen.writes)-2]
	if want := markdown.ClearScreen + markdown.HideCursor + Render(testPages()[1], screen.size); last != want {
		t.Errorf("expected frame at new size %q, got %q", want, last)
	}
}

func TestSession_Run(t *testing.T) {
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}}
	session, _ := NewSession(testPages(), screen, nil)

	keys := make(chan Key, 4)
	resizes := make(chan struct{}, 1)
	keys <- KeyNext
	keys <- KeyNext
	keys <- KeyQuit
	keys <- KeyPrev

	if err := session.Run(context.Background(), keys, resizes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Index() != 2 {
		t.Errorf("expected index 2 at quit, got %d", session.Index())
	}
	if screen.frames() != 3 {
		t.Errorf("expected 3 frames, got %d", screen.frames())
	}
	if last := screen.writes[len(screen.writes)-1]; last != markdown.ClearScreen+markdown.ShowCursor {
		t.Errorf("expected clear and show cursor last, got %q", last)
	}
}

func TestSession_RunStopsOnContext(t *testing.T) {
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}}
	session, _ := NewSession(testPages(), screen, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := session.Run(ctx, make(chan Key), make(chan struct{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last := screen.writes[len(screen.writes)-1]; last != markdown.ClearScreen+markdown.ShowCursor {
		t.Errorf("expected clear and show cursor last, got %q", last)
	}
}

func TestSession_RunReportsWriteError(t *testing.T) {
	writeErr := errors.New("broken pipe")
	screen := &fakeScreen{size: Size{Rows: 10, Columns: 40}, err: writeErr}
	session, _ := NewSession(testPages(), screen, nil)

	err := session.Run(context.Background(), make(chan Key), make(chan struct{}))
	if !errors.Is(err, writeErr) {
		t.Errorf("expected write error, got %v", err)
	}
}
