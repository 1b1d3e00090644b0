package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// LineWidth reports the visual width of a single line of text. ANSI
// escape sequences are invisible and contribute nothing; rune widths
// follow the East Asian width rules, so unknown characters default to
// width 1 and control characters to 0.
func LineWidth(s string) int {
	if !strings.ContainsRune(s, ansi.Marker) {
		return runewidth.StringWidth(s)
	}
	return ansi.PrintableRuneWidth(s)
}

// TextWidth reports the visual width of possibly multi-line text: the
// maximum LineWidth across its lines.
func TextWidth(s string) int {
	w := 0
	for _, line := range SplitLines(s) {
		if lw := LineWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// SplitLines splits text on '\n', tolerating '\r\n' endings.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CountLines reports the number of display lines of text. The empty
// string still occupies one line.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// ReplaceTabs expands every tab to tabWidth spaces. A tab width of zero
// removes tabs entirely.
func ReplaceTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// CutWidth cuts a line to at most width visual columns. The cut is
// ANSI-aware: escape sequences are never split and claim no width. A
// wide rune that would straddle the boundary is dropped whole.
func CutWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.String(s, uint(width))
}

// repeatRune builds a run of n copies of the fill rune. Runs of the zero
// rune or of negative length are empty.
func repeatRune(fill rune, n int) string {
	if n <= 0 || fill == 0 {
		return ""
	}
	return strings.Repeat(string(fill), n)
}

// spaces is shorthand for a run of n spaces.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
