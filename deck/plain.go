package deck

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"mdpresent/markdown"
)

const pageRule = "----------------------------------------"

// WritePlain writes every page as unstyled text for output that is not a
// terminal: title, subtitle, then the body, pages separated by a rule.
func WritePlain(w io.Writer, pages []Page) error {
	out := bufio.NewWriter(w)

	for i, page := range pages {
		if i > 0 {
			out.WriteString("\n" + pageRule + "\n\n")
		}

		out.WriteString(page.Title + "\n")
		if page.Kind == KindTitle {
			out.WriteString(strings.Repeat("=", ansi.StringWidth(page.Title)) + "\n")
		}
		if page.HasSubtitle() {
			out.WriteString("\n" + subtitleIndent + page.Subtitle + "\n")
		}

		if body := markdown.PlainText(page.Content); body != "" {
			out.WriteString("\n" + body + "\n")
		}
	}

	return out.Flush()
}
