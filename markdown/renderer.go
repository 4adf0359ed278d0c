package markdown

import (
	"regexp"
	"strings"
)

// segment is a run of page text. Literal segments hold finished code and are
// skipped by every later pass.
type segment struct {
	text    string
	literal bool
}

// Text is the value every formatting pass reads and returns.
type Text []segment

// String joins the segments back into one string.
func (t Text) String() string {
	var result strings.Builder
	for _, seg := range t {
		result.WriteString(seg.text)
	}
	return result.String()
}

// Pass is one step of the formatting pipeline.
type Pass func(Text) Text

// Pipeline is the ordered list of passes Format applies. The order is part of
// the contract: fenced code before inline code, heading markers before
// emphasis, emphasis before links and list markers. Emphasis runs before
// inline code, so a `*` or `_` pair inside backticks is still read as
// emphasis; only fenced code is fully shielded.
var Pipeline = []Pass{
	fencedCodePass,
	headingPass,
	boldPass,
	italicPass,
	inlineCodePass,
	linkPass,
	bulletPass,
	orderedPass,
}

var (
	fenceRegex       = regexp.MustCompile("(?m)^```(\\w*)[ \\t]*\\n((?s:.*?))^```[ \\t]*$")
	fenceOpenRegex   = regexp.MustCompile("^```\\w*[ \\t]*$")
	fenceCloseRegex  = regexp.MustCompile("^```[ \\t]*$")
	headingRegex     = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	boldStarRegex    = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	boldUnderRegex   = regexp.MustCompile(`__([^\n]+?)__`)
	italicStarRegex  = regexp.MustCompile(`\*([^*\s](?:[^*\n]*?[^*\s])?)\*`)
	italicUnderRegex = regexp.MustCompile(`(?m)(^|[^\w])_([^_\s](?:[^_\n]*?[^_\s])?)_($|[^\w])`)
	inlineCodeRegex  = regexp.MustCompile("`([^`\\n]+)`")
	linkRegex        = regexp.MustCompile(`\[([^\]\n]+)\]\([^)\n]*\)`)
	bulletRegex      = regexp.MustCompile(`(?m)^[-*] `)
	orderedRegex     = regexp.MustCompile(`(?m)^[0-9]+\. `)
)

// codeIndent prefixes every line of a fenced code block.
const codeIndent = "  "

// Format converts the markup of a page body into styled terminal text with
// the markup syntax removed. It accepts any input and never fails.
func Format(raw string) string {
	t := Text{{text: raw}}
	for _, pass := range Pipeline {
		t = pass(t)
	}
	return t.String()
}

// OpensFence reports whether line opens a fenced code block: three backticks
// and at most one word of language tag.
func OpensFence(line string) bool {
	return fenceOpenRegex.MatchString(line)
}

// ClosesFence reports whether line closes a fenced code block.
func ClosesFence(line string) bool {
	return fenceCloseRegex.MatchString(line)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func fencedCodePass(t Text) Text {
	return extractLiteral(t, fenceRegex, func(groups []string) string {
		return renderCodeBlock(groups[2])
	})
}

// renderCodeBlock indents each code line and styles it. The line's own
// indentation stays outside the style so the wrapper can keep it.
func renderCodeBlock(body string) string {
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return ""
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		code := strings.TrimLeft(line, " \t")
		if code == "" {
			lines[i] = ""
			continue
		}
		lines[i] = codeIndent + line[:len(line)-len(code)] + Apply(Styles.Code, code)
	}

	return strings.Join(lines, "\n")
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func headingPass(t Text) Text {
	return replaceLines(t, headingRegex, "")
}

func boldPass(t Text) Text {
	t = replaceText(t, boldStarRegex, Styles.Bold+"${1}"+Styles.Reset)
	return replaceText(t, boldUnderRegex, Styles.Bold+"${1}"+Styles.Reset)
}

func italicPass(t Text) Text {
	t = replaceText(t, italicStarRegex, Styles.Italic+"${1}"+Styles.Reset)
	return replaceText(t, italicUnderRegex, "${1}"+Styles.Italic+"${2}"+Styles.Reset+"${3}")
}

func inlineCodePass(t Text) Text {
	return extractLiteral(t, inlineCodeRegex, func(groups []string) string {
		return Apply(Styles.Code, groups[1])
	})
}

func linkPass(t Text) Text {
	return replaceText(t, linkRegex, "${1}")
}

func bulletPass(t Text) Text {
	return replaceLines(t, bulletRegex, "  • ")
}

func orderedPass(t Text) Text {
	return replaceLines(t, orderedRegex, "  ")
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// replaceText applies a regex replacement to every non-literal segment.
func replaceText(t Text, re *regexp.Regexp, repl string) Text {
	out := make(Text, 0, len(t))
	for _, seg := range t {
		if !seg.literal {
			seg.text = re.ReplaceAllString(seg.text, repl)
		}
		out = append(out, seg)
	}
	return out
}

// replaceLines is replaceText for line-anchored patterns. A segment that
// continues a line started by an earlier segment is only rewritten from its
// first newline on.
func replaceLines(t Text, re *regexp.Regexp, repl string) Text {
	out := make(Text, 0, len(t))
	for i, seg := range t {
		if seg.literal {
			out = append(out, seg)
			continue
		}

		if i == 0 || strings.HasSuffix(t[i-1].text, "\n") {
			seg.text = re.ReplaceAllString(seg.text, repl)
		} else if nl := strings.IndexByte(seg.text, '\n'); nl >= 0 {
			seg.text = seg.text[:nl+1] + re.ReplaceAllString(seg.text[nl+1:], repl)
		}

		out = append(out, seg)
	}
	return out
}

// extractLiteral replaces every match in the non-literal segments with a
// literal segment built by render from the match's submatches.
func extractLiteral(t Text, re *regexp.Regexp, render func(groups []string) string) Text {
	out := make(Text, 0, len(t))
	for _, seg := range t {
		if seg.literal {
			out = append(out, seg)
			continue
		}

		pos := 0
		for _, loc := range re.FindAllStringSubmatchIndex(seg.text, -1) {
			if loc[0] > pos {
				out = append(out, segment{text: seg.text[pos:loc[0]]})
			}

			groups := make([]string, len(loc)/2)
			for g := range groups {
				if loc[2*g] >= 0 {
					groups[g] = seg.text[loc[2*g]:loc[2*g+1]]
				}
			}

			out = append(out, segment{text: render(groups), literal: true})
			pos = loc[1]
		}

		if pos < len(seg.text) {
			out = append(out, segment{text: seg.text[pos:]})
		}
	}
	return out
}
