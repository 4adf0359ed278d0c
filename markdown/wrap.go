package markdown

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// tabIndent replaces a tab in a line's leading indentation.
const tabIndent = "    "

// Wrap breaks a single line into rows no wider than width display cells.
// Words are packed greedily; a word wider than the row is cut into chunks of
// at most that many cells, never splitting a grapheme cluster. Escape sequences
// take no room. The line's leading indentation is repeated on every row as
// long as it leaves at least half the width for text. A blank line yields no
// rows.
func Wrap(line string, width int) []string {
	if width < 1 {
		width = 1
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	indent := strings.ReplaceAll(line[:len(line)-len(strings.TrimLeft(line, " \t"))], "\t", tabIndent)
	if len(indent)*2 > width {
		indent = ""
	}
	avail := width - len(indent)

	var rows []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		rows = append(rows, indent+current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range words {
		wordWidth := ansi.StringWidth(word)

		if wordWidth > avail {
			flush()
			for _, chunk := range splitWord(word, avail) {
				rows = append(rows, indent+chunk)
			}
			continue
		}

		needed := wordWidth
		if current.Len() > 0 {
			needed += currentWidth + 1
		}

		if needed > avail {
			flush()
			needed = wordWidth
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
		currentWidth = needed
	}
	flush()

	return rows
}

// splitWord hard-splits a word that cannot fit on a row of its own into
// chunks of at most width cells. A grapheme wider than width gets a chunk to
// itself. Escape sequences take no width and stay in the chunk being built;
// trailing ones join the last chunk.
func splitWord(word string, width int) []string {
	var chunks []string
	var chunk strings.Builder
	chunkWidth := 0
	state := -1

	for rest := word; rest != ""; {
		if n := escapeLength(rest); n > 0 {
			chunk.WriteString(rest[:n])
			rest = rest[n:]
			continue
		}

		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if chunkWidth > 0 && chunkWidth+w > width {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteString(cluster)
		chunkWidth += w
	}

	if chunk.Len() > 0 {
		if chunkWidth == 0 && len(chunks) > 0 {
			chunks[len(chunks)-1] += chunk.String()
		} else {
			chunks = append(chunks, chunk.String())
		}
	}

	return chunks
}

// escapeLength returns the byte length of the CSI sequence s starts with, or 0.
func escapeLength(s string) int {
	if len(s) < 2 || s[0] != '\x1b' || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}
