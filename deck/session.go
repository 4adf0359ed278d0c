package deck

import (
	"context"
	"fmt"
	"log/slog"

	"mdpresent/markdown"
)

// Screen is the terminal a session draws on.
type Screen interface {
	// Size returns the current terminal size.
	Size() Size
	// Write sends s to the terminal verbatim.
	Write(s string) error
}

// Session presents a fixed list of pages on a screen. It is driven by one
// event at a time and is not safe for concurrent use.
type Session struct {
	pages  []Page
	nav    *Navigator
	screen Screen
	size   Size
	log    *slog.Logger
}

// NewSession returns a session on the first page, or ErrNoPages.
func NewSession(pages []Page, screen Screen, log *slog.Logger) (*Session, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Session{
		pages:  pages,
		nav:    NewNavigator(len(pages)),
		screen: screen,
		log:    log,
	}, nil
}

// Index is the 0-based index of the page on screen.
func (s *Session) Index() int {
	return s.nav.Index()
}

// Draw refreshes the terminal size and writes the current page: one frame
// (clear, hide cursor, page) followed by one status line write.
func (s *Session) Draw() error {
	s.size = s.screen.Size()

	frame := markdown.ClearScreen + markdown.HideCursor + Render(s.pages[s.nav.Index()], s.size)
	if err := s.screen.Write(frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	if err := s.screen.Write("\n" + StatusLine(s.nav.Index(), s.nav.Count())); err != nil {
		return fmt.Errorf("writing status line: %w", err)
	}

	return nil
}

// HandleKey applies one key. Navigation that moves the index redraws once;
// keys that change nothing do not redraw. It reports whether the key quits.
func (s *Session) HandleKey(key Key) (bool, error) {
	from := s.nav.Index()

	switch key {
	case KeyQuit:
		s.log.Debug("quit", "page", from)
		return true, nil
	case KeyNext:
		if !s.nav.Next() {
			return false, nil
		}
	case KeyPrev:
		if !s.nav.Prev() {
			return false, nil
		}
	default:
		return false, nil
	}

	s.log.Debug("navigate", "from", from, "to", s.nav.Index())
	return false, s.Draw()
}

// Resize redraws the current page at the terminal's new size.
func (s *Session) Resize() error {
	if err := s.Draw(); err != nil {
		return err
	}
	s.log.Debug("resize", "rows", s.size.Rows, "columns", s.size.Columns)
	return nil
}

// Close clears the screen and shows the cursor again.
func (s *Session) Close() error {
	return s.screen.Write(markdown.ClearScreen + markdown.ShowCursor)
}

// Run draws the first page and then handles keys and resize notifications
// one at a time until a quit key arrives, the key channel closes or ctx is
// done. The screen is cleared and the cursor shown before Run returns.
func (s *Session) Run(ctx context.Context, keys <-chan Key, resizes <-chan struct{}) (err error) {
	defer func() {
		if closeErr := s.Close(); err == nil {
			err = closeErr
		}
	}()

	s.log.Info("session started", "pages", len(s.pages))

	if err := s.Draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resizes:
			if err := s.Resize(); err != nil {
				return err
			}
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			quit, err := s.HandleKey(key)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}
