package deck

import (
	"strings"

	"mdpresent/markdown"
)

// parseState is where the parser is in the document.
type parseState int

const (
	inTitle parseState = iota
	scanningForSection
	inSection
	inSubsection
)

// parser is a single-pass state machine over the document's lines. buf
// accumulates the body of the block currently being collected.
type parser struct {
	state    parseState
	pages    []Page
	buf      []string
	title    string
	subtitle string
	emitted  int
	inFence  bool
}

// Parse splits a document into pages. The first top-level heading, wherever
// it appears, becomes the title page and sections are read from the end of
// its block on. Without one, sections are read from the top. Every
// second-level heading becomes one page, or one page per non-empty
// third-level heading inside it. Lines inside fenced code blocks never start
// a page. A document with neither heading level yields no pages; callers
// treat that as ErrNoPages.
func Parse(document string) []Page {
	lines := strings.Split(strings.ReplaceAll(document, "\r\n", "\n"), "\n")

	p := &parser{state: scanningForSection}
	if start := findTitle(lines); start >= 0 {
		_, p.title = headingLevel(lines[start])
		p.state = inTitle
		lines = lines[start+1:]
	}

	for _, line := range lines {
		p.line(line)
	}
	p.finish()

	return p.pages
}

// findTitle returns the index of the first top-level heading outside fenced
// code, or -1.
func findTitle(lines []string) int {
	inFence := false
	for i, line := range lines {
		if fenceToggles(line, inFence) {
			inFence = !inFence
			continue
		}
		if level, _ := headingLevel(line); !inFence && level == 1 {
			return i
		}
	}
	return -1
}

// fenceToggles reports whether line opens or closes a fenced code block,
// using the fence syntax the formatter renders as code.
func fenceToggles(line string, inFence bool) bool {
	if inFence {
		return markdown.ClosesFence(line)
	}
	return markdown.OpensFence(line)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func (p *parser) line(line string) {
	level, text := 0, ""
	if fenceToggles(line, p.inFence) {
		p.inFence = !p.inFence
	} else if !p.inFence {
		level, text = headingLevel(line)
	}

	switch p.state {
	case inTitle:
		if level == 0 {
			p.buf = append(p.buf, line)
			return
		}
		p.pages = append(p.pages, Page{Kind: KindTitle, Title: p.title, Content: trimBlock(p.buf)})
		if level == 2 {
			p.startSection(text)
		} else {
			p.state = scanningForSection
		}

	case scanningForSection:
		if level == 2 {
			p.startSection(text)
		}

	case inSection, inSubsection:
		// Top-level headings after the title are body text.
		switch level {
		case 2:
			p.endSection()
			p.startSection(text)
		case 3:
			p.flushBlock()
			p.subtitle = text
			p.state = inSubsection
		default:
			p.buf = append(p.buf, line)
		}
	}
}

func (p *parser) finish() {
	switch p.state {
	case inTitle:
		p.pages = append(p.pages, Page{Kind: KindTitle, Title: p.title, Content: trimBlock(p.buf)})
	case inSection, inSubsection:
		p.endSection()
	}
}

func (p *parser) startSection(title string) {
	p.title = title
	p.subtitle = ""
	p.buf = p.buf[:0]
	p.emitted = 0
	p.state = inSection
}

// flushBlock emits the block collected so far if it has any content.
func (p *parser) flushBlock() {
	content := trimBlock(p.buf)
	p.buf = p.buf[:0]
	if content == "" {
		return
	}

	p.pages = append(p.pages, Page{Kind: KindContent, Title: p.title, Subtitle: p.subtitle, Content: content})
	p.emitted++
}

// endSection flushes the last block and guarantees the section at least one
// page.
func (p *parser) endSection() {
	p.flushBlock()
	if p.emitted == 0 {
		p.pages = append(p.pages, Page{Kind: KindContent, Title: p.title})
	}
	p.state = scanningForSection
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// headingLevel returns 1, 2 or 3 and the heading text when line starts with
// exactly that many '#' followed by at least one space, and 0 otherwise.
func headingLevel(line string) (int, string) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}

	if level < 1 || level > 3 || level == len(line) || line[level] != ' ' {
		return 0, ""
	}

	return level, strings.TrimSpace(line[level:])
}

// trimBlock drops leading and trailing blank lines and joins the rest.
func trimBlock(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}
