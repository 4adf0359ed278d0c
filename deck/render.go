package deck

import (
	"fmt"
	"strings"

	"mdpresent/markdown"
)

const (
	// wideColumns is the terminal width from which every line gets a left
	// margin.
	wideColumns = 100
	wideMargin  = "    "

	subtitleIndent = "  "
)

// Size is a terminal size in character cells.
type Size struct {
	Rows    int
	Columns int
}

// Render lays out one page for a terminal of the given size: the header, the
// formatted and wrapped body centered vertically in the rows left over, and
// a left margin on wide terminals. One row is left free for the status line,
// which is not part of the result. Lines are separated by "\n".
func Render(page Page, size Size) string {
	totalRows := size.Rows - 1

	margin := ""
	width := size.Columns
	if size.Columns >= wideColumns {
		margin = wideMargin
		width -= len(wideMargin)
	}

	header := renderHeader(page)
	body := contentLines(page.Content, width)

	available := totalRows - len(header)
	top := max(0, (available-len(body))/2)
	bottom := max(0, available-top-len(body))

	lines := make([]string, 0, len(header)+top+len(body)+bottom)
	lines = append(lines, header...)
	lines = appendBlank(lines, top)
	lines = append(lines, body...)
	lines = appendBlank(lines, bottom)

	if margin != "" {
		for i, line := range lines {
			lines[i] = margin + line
		}
	}

	return strings.Join(lines, "\n")
}

// StatusLine is the dimmed position indicator shown below every page.
func StatusLine(index, total int) string {
	return markdown.Apply(markdown.Styles.Dim, fmt.Sprintf("[%d/%d] q:quit", index+1, total))
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func renderHeader(page Page) []string {
	title := markdown.Apply(markdown.Styles.Heading, page.Title)

	if page.Kind == KindTitle {
		return []string{title, ""}
	}

	if !page.HasSubtitle() {
		return []string{title}
	}

	return []string{title, "", subtitleIndent + markdown.Apply(markdown.Styles.Heading, page.Subtitle)}
}

// contentLines formats the page body and wraps every non-empty line.
func contentLines(content string, width int) []string {
	var lines []string
	for _, line := range strings.Split(markdown.Format(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, markdown.Wrap(line, width)...)
	}
	return lines
}

func appendBlank(lines []string, n int) []string {
	for range n {
		lines = append(lines, "")
	}
	return lines
}
