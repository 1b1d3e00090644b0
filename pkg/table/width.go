package table

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// A Peaker picks which column a width adjuster shrinks (or grows) next.
// Peak returns false when no column above its minimum remains. A nil
// mins slice means there is no floor: every column is eligible, which
// is how growth adjusters call it (a zero-width column can still grow).
type Peaker interface {
	Peak(mins, widths []int) (col int, ok bool)
}

// PriorityNone cycles through the columns, shrinking each in turn.
type PriorityNone struct {
	next int
}

// Peak implements Peaker.
func (p *PriorityNone) Peak(mins, widths []int) (int, bool) {
	for range widths {
		col := p.next % len(widths)
		p.next++
		if widths[col] > minAt(mins, col) {
			return col, true
		}
	}
	return 0, false
}

// PriorityMax always shrinks the widest remaining column.
type PriorityMax struct{}

// Peak implements Peaker.
func (PriorityMax) Peak(mins, widths []int) (int, bool) {
	best, bestW := -1, -1
	for col, w := range widths {
		if w > minAt(mins, col) && w > bestW {
			best, bestW = col, w
		}
	}
	return best, best >= 0
}

// PriorityMin always shrinks the narrowest remaining column.
type PriorityMin struct{}

// Peak implements Peaker.
func (PriorityMin) Peak(mins, widths []int) (int, bool) {
	best, bestW := -1, -1
	for col, w := range widths {
		if w > minAt(mins, col) && (bestW == -1 || w < bestW) {
			best, bestW = col, w
		}
	}
	return best, best >= 0
}

// resolvePeaker supplies a fresh default when no priority was chosen,
// so a reused option value never resumes a previous cycle.
func resolvePeaker(p Peaker) Peaker {
	if p == nil {
		return &PriorityNone{}
	}
	return p
}

func minAt(mins []int, col int) int {
	if mins == nil {
		return -1
	}
	if col < len(mins) {
		return mins[col]
	}
	return 0
}

// SuffixLimit selects what happens when a truncation suffix is itself
// wider than the space a cell has left.
type SuffixLimit int

const (
	// SuffixCut cuts the suffix to the available width.
	SuffixCut SuffixLimit = iota
	// SuffixIgnore drops the suffix entirely.
	SuffixIgnore
	// SuffixReplace replaces the suffix with a run of a fill character.
	SuffixReplace
)

// TruncateOption shrinks the table to a total width budget and cuts cell
// content to fit. Columns never shrink below their padding floor; a
// target below the floor stops there rather than failing.
type TruncateOption struct {
	width  int
	suffix string
	limit  SuffixLimit
	fill   rune
	peaker Peaker
}

// Truncate builds a width adjuster targeting the given total table
// width (borders included).
func Truncate(width int) *TruncateOption {
	return &TruncateOption{width: width}
}

// Suffix appends the given string to every cut cell, "…" style.
func (t *TruncateOption) Suffix(s string) *TruncateOption {
	t.suffix = s
	return t
}

// SuffixLimit selects the overflow policy for the suffix itself.
func (t *TruncateOption) SuffixLimit(l SuffixLimit) *TruncateOption {
	t.limit = l
	return t
}

// SuffixFill sets the fill character used by SuffixReplace.
func (t *TruncateOption) SuffixFill(r rune) *TruncateOption {
	t.fill = r
	return t
}

// Priority selects the column shrink order.
func (t *TruncateOption) Priority(p Peaker) *TruncateOption {
	t.peaker = p
	return t
}

// ApplyTable implements Option.
func (t *TruncateOption) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	widths := grid.EstimateWidths(rec, cfg)
	total := grid.TotalWidth(rec, cfg, widths)
	if total <= t.width {
		return
	}
	mins := paddingFloor(rec, cfg)
	peaker := resolvePeaker(t.peaker)
	for total > t.width {
		col, ok := peaker.Peak(mins, widths)
		if !ok {
			break
		}
		widths[col]--
		total--
	}
	dims.Widths = widths

	rewriteCells(rec, cfg, widths, func(text string, avail int) string {
		if grid.TextWidth(text) <= avail {
			return text
		}
		return truncateText(text, avail, t.suffix, t.limit, t.fill)
	})
}

// WrapOption shrinks the table to a total width budget and wraps cell
// content instead of cutting it.
type WrapOption struct {
	width     int
	keepWords bool
	peaker    Peaker
}

// Wrap builds a wrapping width adjuster targeting the given total table
// width (borders included).
func Wrap(width int) *WrapOption {
	return &WrapOption{width: width}
}

// KeepWords wraps at word boundaries where possible.
func (w *WrapOption) KeepWords() *WrapOption {
	w.keepWords = true
	return w
}

// Priority selects the column shrink order.
func (w *WrapOption) Priority(p Peaker) *WrapOption {
	w.peaker = p
	return w
}

// ApplyTable implements Option.
func (w *WrapOption) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	widths := grid.EstimateWidths(rec, cfg)
	total := grid.TotalWidth(rec, cfg, widths)
	if total <= w.width {
		return
	}
	mins := paddingFloor(rec, cfg)
	peaker := resolvePeaker(w.peaker)
	for total > w.width {
		col, ok := peaker.Peak(mins, widths)
		if !ok {
			break
		}
		widths[col]--
		total--
	}
	dims.Widths = widths

	rewriteCells(rec, cfg, widths, func(text string, avail int) string {
		if grid.TextWidth(text) <= avail {
			return text
		}
		return wrapText(text, avail, w.keepWords)
	})
}

// MinWidthOption grows the table to reach a total width budget. Content
// is left untouched; the extra space is blank-filled by alignment.
type MinWidthOption struct {
	width  int
	peaker Peaker
}

// MinWidth builds a growth adjuster targeting the given total table
// width (borders included).
func MinWidth(width int) *MinWidthOption {
	return &MinWidthOption{width: width}
}

// Priority selects the column growth order.
func (m *MinWidthOption) Priority(p Peaker) *MinWidthOption {
	m.peaker = p
	return m
}

// ApplyTable implements Option.
func (m *MinWidthOption) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	widths := grid.EstimateWidths(rec, cfg)
	total := grid.TotalWidth(rec, cfg, widths)
	peaker := resolvePeaker(m.peaker)
	for total < m.width {
		col, ok := peaker.Peak(nil, widths)
		if !ok {
			break
		}
		widths[col]++
		total++
	}
	dims.Widths = widths
}

// ColumnWidth pins every column to the same fixed width, floored at the
// column's padding, and truncates cell content to whatever room is left
// inside the padding. ColumnWidth(0) keeps the grid structure with every
// cell empty.
type ColumnWidth int

// ApplyTable implements Option.
func (n ColumnWidth) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	mins := paddingFloor(rec, cfg)
	widths := make([]int, rec.CountColumns())
	for col := range widths {
		widths[col] = max(int(n), mins[col])
	}
	dims.Widths = widths

	rewriteCells(rec, cfg, widths, func(text string, avail int) string {
		if grid.TextWidth(text) <= avail {
			return text
		}
		return truncateText(text, avail, "", SuffixCut, 0)
	})
}

// WidthList pins per-column widths explicitly. A list shorter than the
// column count is ignored rather than failing. Content is not rewritten;
// overflowing lines are cut at render time.
type WidthList []int

// ApplyTable implements Option.
func (l WidthList) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if len(l) < rec.CountColumns() {
		return
	}
	widths := make([]int, rec.CountColumns())
	copy(widths, l)
	dims.Widths = widths
}

// paddingFloor is the minimum width of every column: the widest
// horizontal padding of any cell in it. Truncation cannot go below it.
func paddingFloor(rec records.Records, cfg *grid.Config) []int {
	cols := rec.CountColumns()
	mins := make([]int, cols)
	for r := 0; r < rec.CountRows(); r++ {
		for c := 0; c < cols; c++ {
			pad := cfg.Padding(grid.Position{Row: r, Col: c})
			if p := pad.Left.Size + pad.Right.Size; p > mins[c] {
				mins[c] = p
			}
		}
	}
	return mins
}

// rewriteCells applies fn to every visible cell with the width available
// to its content: the final width of its columns (plus interior borders
// for spans) minus its padding.
func rewriteCells(rec *records.Vec, cfg *grid.Config, widths []int, fn func(text string, avail int) string) {
	grid.EachVisible(rec, cfg, func(pos grid.Position, colSpan, _ int) {
		avail := grid.InteriorVerticals(rec, cfg, pos.Col, pos.Col+colSpan)
		for c := pos.Col; c < pos.Col+colSpan && c < len(widths); c++ {
			avail += widths[c]
		}
		pad := cfg.Padding(pos)
		avail -= pad.Left.Size + pad.Right.Size
		if avail < 0 {
			avail = 0
		}
		rec.Set(pos.Row, pos.Col, fn(rec.Get(pos.Row, pos.Col), avail))
	})
}

// truncateText cuts every line of text to the available visual width,
// appending the suffix to lines that were cut. Cuts are ANSI-aware:
// escape regions are never split.
func truncateText(text string, width int, suffix string, limit SuffixLimit, fill rune) string {
	if width <= 0 {
		return ""
	}
	sw := grid.LineWidth(suffix)
	avail := width - sw
	if suffix != "" && sw >= width {
		switch limit {
		case SuffixIgnore:
			suffix = ""
			avail = width
		case SuffixReplace:
			if fill == 0 {
				fill = ' '
			}
			suffix = strings.Repeat(string(fill), width)
			avail = 0
		default:
			suffix = grid.CutWidth(suffix, width)
			avail = 0
		}
	}

	lines := grid.SplitLines(text)
	for i, line := range lines {
		if grid.LineWidth(line) <= width {
			continue
		}
		lines[i] = grid.CutWidth(line, avail) + suffix
	}
	return strings.Join(lines, "\n")
}

// wrapText re-flows text into the available width, preserving existing
// newlines. With keepWords set, breaks happen at word boundaries where a
// word fits; over-long words are still hard-wrapped.
func wrapText(text string, width int, keepWords bool) string {
	if width <= 0 {
		return ""
	}
	if keepWords {
		text = wordwrap.String(text, width)
	}
	return wrap.String(text, width)
}
