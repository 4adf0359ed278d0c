// Package deck turns a heading-structured markdown document into navigable
// pages and renders one page at a time for a terminal.
package deck

import (
	"errors"
	"fmt"
)

// Kind tells a title page from a content page.
type Kind int

const (
	// KindTitle is the page built from the document's leading top-level
	// heading.
	KindTitle Kind = iota
	// KindContent is a page built from a second-level heading section, or
	// from one third-level heading inside it.
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Page is one navigable screen. Content holds the raw, unformatted body.
type Page struct {
	Kind     Kind
	Title    string
	Subtitle string
	Content  string
}

// HasSubtitle reports whether the page came from a third-level heading.
func (p Page) HasSubtitle() bool {
	return p.Subtitle != ""
}

// ErrNoPages is returned when a document has neither a top-level nor a
// second-level heading.
var ErrNoPages = errors.New("document has no top-level or second-level headings")

// ReadError reports a document that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
