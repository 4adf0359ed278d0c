package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"blank", "   ", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"exact fit", "hello world", 11, []string{"hello world"}},
		{"greedy", "the quick brown fox jumps", 10, []string{"the quick", "brown fox", "jumps"}},
		{"long token", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long token flushes", "ab abcdefgh cd", 4, []string{"ab", "abcd", "efgh", "cd"}},
		{"collapses spaces", "a    b", 10, []string{"a b"}},
		{"keeps indent", "  • one two three", 9, []string{"  • one", "  two", "  three"}},
		{"drops wide indent", "      abc", 8, []string{"abc"}},
		{"tab indent", "\tx", 20, []string{"    x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.line, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrap_IgnoresEscapeSequences(t *testing.T) {
	line := Apply(Styles.Bold, "bold") + " " + Apply(Styles.Code, "code")
	rows := Wrap(line, 9)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %q", len(rows), rows)
	}
	if rows[0] != line {
		t.Errorf("expected %q, got %q", line, rows[0])
	}
}

func TestWrap_Properties(t *testing.T) {
	line := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore"

	for width := 1; width <= 40; width++ {
		rows := Wrap(line, width)
		for _, row := range rows {
			if w := ansi.StringWidth(row); w > width {
				t.Fatalf("width %d: row %q is %d cells wide", width, row, w)
			}
		}

		if width >= len("consectetur") {
			joined := strings.Fields(strings.Join(rows, " "))
			if !reflect.DeepEqual(joined, strings.Fields(line)) {
				t.Errorf("width %d: expected tokens %q, got %q", width, strings.Fields(line), joined)
			}
		}
	}
}

func TestWrap_SplitsLongTokenIntoCeilChunks(t *testing.T) {
	token := strings.Repeat("x", 23)
	for width := 1; width <= 30; width++ {
		rows := Wrap(token, width)
		want := (len(token) + width - 1) / width
		if len(rows) != want {
			t.Errorf("width %d: expected %d chunks, got %d", width, want, len(rows))
		}
		if strings.Join(rows, "") != token {
			t.Errorf("width %d: chunks %q do not rebuild the token", width, rows)
		}
	}
}

func TestWrap_WideCharacters(t *testing.T) {
	tests := []struct {
		width int
		want  []string
	}{
		{1, []string{"中", "文", "字", "符", "测", "试"}},
		{3, []string{"中", "文", "字", "符", "测", "试"}},
		{4, []string{"中文", "字符", "测试"}},
		{5, []string{"中文", "字符", "测试"}},
		{6, []string{"中文字", "符测试"}},
	}

	for _, tt := range tests {
		got := Wrap("中文字符测试", tt.width)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("width %d: expected %q, got %q", tt.width, tt.want, got)
		}
	}
}

func TestWrap_WideCharactersFitWidth(t *testing.T) {
	line := "表示 中文字符测试的句子 mixed 文字 text"
	for width := 2; width <= 20; width++ {
		for _, row := range Wrap(line, width) {
			if row == "" {
				t.Fatalf("width %d: empty row in %q", width, Wrap(line, width))
			}
			if w := ansi.StringWidth(row); w > width {
				t.Fatalf("width %d: row %q is %d cells wide", width, row, w)
			}
		}
	}
}

func TestWrap_SplitKeepsEscapeSequences(t *testing.T) {
	rows := Wrap(Apply(Styles.Code, "abcdef"), 4)
	want := []string{Styles.Code + "abcd", "ef" + Styles.Reset}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %q, got %q", want, rows)
	}
}
