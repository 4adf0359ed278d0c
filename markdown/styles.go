package markdown

// ANSI escape codes
const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiItalic  = "\033[3m"
	ansiFgCyan  = "\033[36m"
	ansiFgGreen = "\033[32m"
)

// Screen control sequences written verbatim around each frame.
const (
	ClearScreen = "\033[2J\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// StyleTable holds the start sequence of every visual treatment. Reset ends
// any of them.
type StyleTable struct {
	Heading string
	Bold    string
	Italic  string
	Code    string
	Dim     string
	Reset   string
}

// Styles is the process-wide style table. It is never mutated.
var Styles = StyleTable{
	Heading: ansiBold + ansiFgCyan,
	Bold:    ansiBold,
	Italic:  ansiItalic,
	Code:    ansiFgGreen,
	Dim:     ansiDim,
	Reset:   ansiReset,
}

// Apply wraps text in the given style start sequence followed by an
// unconditional reset, so a style never bleeds past the text it marks.
func Apply(style, text string) string {
	return style + text + Styles.Reset
}
