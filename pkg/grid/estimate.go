package grid

import (
	"sort"

	"github.com/jondot/tabled/pkg/records"
)

// EstimateWidths computes the minimum width of every column such that
// all content fits losslessly: each cell's intrinsic width (tab-expanded,
// ANSI-invisible, maximum across lines) plus its padding lower-bounds its
// column, and a column-spanning cell lower-bounds the sum of its covered
// columns plus the borders interior to the span. A span deficit is paid
// by growing the last covered column.
func EstimateWidths(rec records.Records, cfg *Config) []int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return nil
	}
	sg := resolveSpans(cfg, rows, cols)
	bm := newBorderMap(cfg, rows, cols)

	widths := make([]int, cols)
	type spanNeed struct {
		pos  Position
		size int
		need int
	}
	var spans []spanNeed

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Position{r, c}
			if !sg.IsVisible(pos) {
				continue
			}
			box := boxWidth(rec, cfg, pos)
			if size := sg.ColSpan(pos); size > 1 {
				spans = append(spans, spanNeed{pos, size, box})
				continue
			}
			if box > widths[c] {
				widths[c] = box
			}
		}
	}

	// Narrow spans settle first so a wide span can reuse width a
	// narrower one already forced.
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].size < spans[j].size })
	for _, s := range spans {
		have := bm.countVerticals(s.pos.Col, s.pos.Col+s.size)
		for c := s.pos.Col; c < s.pos.Col+s.size; c++ {
			have += widths[c]
		}
		if have < s.need {
			widths[s.pos.Col+s.size-1] += s.need - have
		}
	}
	return widths
}

// EstimateHeights computes the minimum height of every row by the same
// rules over line counts, paddings, and row spans against the horizontal
// borders interior to each span.
func EstimateHeights(rec records.Records, cfg *Config) []int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return nil
	}
	sg := resolveSpans(cfg, rows, cols)
	bm := newBorderMap(cfg, rows, cols)

	heights := make([]int, rows)
	type spanNeed struct {
		pos  Position
		size int
		need int
	}
	var spans []spanNeed

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Position{r, c}
			if !sg.IsVisible(pos) {
				continue
			}
			box := boxHeight(rec, cfg, pos)
			if size := sg.RowSpan(pos); size > 1 {
				spans = append(spans, spanNeed{pos, size, box})
				continue
			}
			if box > heights[r] {
				heights[r] = box
			}
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].size < spans[j].size })
	for _, s := range spans {
		have := bm.countHorizontals(s.pos.Row, s.pos.Row+s.size)
		for r := s.pos.Row; r < s.pos.Row+s.size; r++ {
			have += heights[r]
		}
		if have < s.need {
			heights[s.pos.Row+s.size-1] += s.need - have
		}
	}
	return heights
}

// boxWidth is the cell's required box width: content plus padding.
func boxWidth(rec records.Records, cfg *Config, p Position) int {
	text := ReplaceTabs(rec.Get(p.Row, p.Col), cfg.TabWidth())
	pad := cfg.Padding(p)
	return TextWidth(text) + pad.Left.Size + pad.Right.Size
}

// boxHeight is the cell's required box height: line count plus padding,
// with vertically trimmed blank edge lines not counted.
func boxHeight(rec records.Records, cfg *Config, p Position) int {
	text := rec.Get(p.Row, p.Col)
	pad := cfg.Padding(p)
	if !cfg.Formatting(p).VerticalTrim {
		return CountLines(text) + pad.Top.Size + pad.Bottom.Size
	}
	n := len(trimBlankEdges(SplitLines(text)))
	if n == 0 {
		n = 1
	}
	return n + pad.Top.Size + pad.Bottom.Size
}

// trimBlankEdges drops leading and trailing all-blank lines.
func trimBlankEdges(lines []string) []string {
	lo, hi := 0, len(lines)
	for lo < hi && isBlank(lines[lo]) {
		lo++
	}
	for hi > lo && isBlank(lines[hi-1]) {
		hi--
	}
	return lines[lo:hi]
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
