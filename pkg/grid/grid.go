package grid

import (
	"strings"

	"github.com/jondot/tabled/pkg/records"
)

// Render produces the bordered, padded, aligned text of the grid using
// the supplied per-column widths and per-row heights (normally the
// output of EstimateWidths/EstimateHeights, possibly adjusted by the
// caller). The result is '\n'-separated with no trailing newline; a grid
// with zero rows or zero columns renders as the empty string.
//
// Rendering is a pure function of its inputs: the same records, config,
// and dimensions always produce the same string.
func Render(rec records.Records, cfg *Config, widths, heights []int) string {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return ""
	}
	if len(widths) < cols {
		widths = EstimateWidths(rec, cfg)
	}
	if len(heights) < rows {
		heights = EstimateHeights(rec, cfg)
	}

	rn := &renderer{
		rec:     rec,
		cfg:     cfg,
		widths:  widths,
		heights: heights,
		rows:    rows,
		cols:    cols,
		sg:      resolveSpans(cfg, rows, cols),
		bm:      newBorderMap(cfg, rows, cols),
		cells:   map[Position][]string{},
	}

	var lines []string
	for r := 0; r < rows; r++ {
		if rn.bm.hasHorizontal(r) {
			lines = append(lines, rn.borderLine(r))
		}
		for k := 0; k < heights[r]; k++ {
			lines = append(lines, rn.contentLine(r, k))
		}
	}
	if rn.bm.hasHorizontal(rows) {
		lines = append(lines, rn.borderLine(rows))
	}

	return strings.Join(rn.applyMargin(lines), "\n")
}

// TotalWidth reports the full visual width of the rendered grid body:
// the sum of the column widths plus one column per drawn vertical line.
// Margins are not included.
func TotalWidth(rec records.Records, cfg *Config, widths []int) int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return 0
	}
	bm := newBorderMap(cfg, rows, cols)
	total := 0
	for c := 0; c < cols && c < len(widths); c++ {
		total += widths[c]
	}
	for c := 0; c <= cols; c++ {
		if bm.hasVertical(c) {
			total++
		}
	}
	return total
}

type renderer struct {
	rec     records.Records
	cfg     *Config
	widths  []int
	heights []int
	rows    int
	cols    int
	sg      *spanGrid
	bm      *borderMap
	cells   map[Position][]string
}

// displayWidth is the box width of the cell rooted at root: the covered
// column widths plus the vertical lines interior to the span.
func (rn *renderer) displayWidth(root Position) int {
	size := rn.sg.ColSpan(root)
	w := rn.bm.countVerticals(root.Col, root.Col+size)
	for c := root.Col; c < root.Col+size; c++ {
		w += rn.widths[c]
	}
	return w
}

// displayHeight is the box height of the cell rooted at root: the
// covered row heights plus the horizontal lines interior to the span.
func (rn *renderer) displayHeight(root Position) int {
	size := rn.sg.RowSpan(root)
	h := rn.bm.countHorizontals(root.Row, root.Row+size)
	for r := root.Row; r < root.Row+size; r++ {
		h += rn.heights[r]
	}
	return h
}

// crossIndex is the index into the cell's display lines of the
// horizontal grid line at boundary r (which the cell's row span crosses).
func (rn *renderer) crossIndex(root Position, r int) int {
	idx := 0
	for i := root.Row; i < r; i++ {
		idx += rn.heights[i]
		if i+1 < r && rn.bm.hasHorizontal(i+1) {
			idx++
		}
	}
	return idx
}

// lineIndex is the index into the cell's display lines of content line k
// of grid row r.
func (rn *renderer) lineIndex(root Position, r, k int) int {
	idx := rn.crossIndex(root, r)
	if r > root.Row && rn.bm.hasHorizontal(r) {
		idx++
	}
	return idx + k
}

// contentLine renders content line k of grid row r across all columns.
func (rn *renderer) contentLine(r, k int) string {
	var sb strings.Builder
	c := 0
	for c < rn.cols {
		pos := Position{r, c}
		root := rn.sg.Owner(pos)
		if root.Col != c {
			// Interior to a column span; the owner already emitted
			// this region including the suppressed separator.
			c++
			continue
		}
		if rn.bm.hasVertical(c) {
			sb.WriteString(rn.paintBorder(string(rn.bm.verticalGlyph(r, c)), pos))
		}
		line := rn.cellLines(root)[rn.lineIndex(root, r, k)]
		sb.WriteString(line)
		c += rn.sg.ColSpan(root)
	}
	if rn.bm.hasVertical(rn.cols) {
		last := Position{r, rn.cols - 1}
		sb.WriteString(rn.paintBorder(string(rn.bm.verticalGlyph(r, rn.cols)), last))
	}
	return sb.String()
}

// borderLine renders the horizontal grid line at boundary r. Segments
// interior to a row span are replaced by the spanning cell's content,
// which continues across the line.
func (rn *renderer) borderLine(r int) string {
	var sb strings.Builder
	c := 0
	crossing := false
	for c < rn.cols {
		pos := Position{r, c}
		if r < rn.rows {
			root := rn.sg.Owner(pos)
			if root.Row < r {
				if root.Col != c {
					c++
					continue
				}
				if rn.bm.hasVertical(c) {
					sb.WriteString(rn.paintBorder(string(rn.bm.verticalGlyph(r, c)), pos))
				}
				sb.WriteString(rn.cellLines(root)[rn.crossIndex(root, r)])
				c += rn.sg.ColSpan(root)
				crossing = c >= rn.cols
				continue
			}
		}
		crossing = false
		if rn.bm.hasVertical(c) {
			sb.WriteString(rn.paintBorder(string(rn.bm.intersectionGlyph(r, c)), rn.clampPos(r, c)))
		}
		glyph := rn.bm.horizontalGlyph(r, c)
		sb.WriteString(rn.paintBorder(repeatRune(glyph, rn.widths[c]), rn.clampPos(r, c)))
		c++
	}
	if rn.bm.hasVertical(rn.cols) {
		pos := rn.clampPos(r, rn.cols-1)
		if crossing {
			sb.WriteString(rn.paintBorder(string(rn.bm.verticalGlyph(r, rn.cols)), pos))
		} else {
			sb.WriteString(rn.paintBorder(string(rn.bm.intersectionGlyph(r, rn.cols)), pos))
		}
	}
	return sb.String()
}

// clampPos maps a border-line coordinate to the nearest real cell, used
// for color resolution along the grid's outer edges.
func (rn *renderer) clampPos(r, c int) Position {
	if r >= rn.rows {
		r = rn.rows - 1
	}
	if c >= rn.cols {
		c = rn.cols - 1
	}
	return Position{r, c}
}

// paintBorder wraps a border segment with the resolved border color.
func (rn *renderer) paintBorder(s string, p Position) string {
	if s == "" {
		return s
	}
	col := rn.cfg.BorderColor(p)
	if col.IsZero() {
		return s
	}
	return col.Prefix + s + col.Suffix
}

// cellLines returns the cell's display lines: exactly displayHeight
// lines, each exactly displayWidth visual columns, with padding,
// alignment, trims, and text color applied.
func (rn *renderer) cellLines(root Position) []string {
	if lines, ok := rn.cells[root]; ok {
		return lines
	}
	lines := rn.buildCellLines(root)
	rn.cells[root] = lines
	return lines
}

func (rn *renderer) buildCellLines(root Position) []string {
	w := rn.displayWidth(root)
	h := rn.displayHeight(root)
	pad := rn.cfg.Padding(root)
	format := rn.cfg.Formatting(root)

	padL, padR := pad.Left.Size, pad.Right.Size
	if padL+padR > w {
		padR = max(0, w-padL)
		padL = min(padL, w)
	}
	innerW := w - padL - padR

	padT, padB := pad.Top.Size, pad.Bottom.Size
	if padT+padB > h {
		padB = max(0, h-padT)
		padT = min(padT, h)
	}
	innerH := h - padT - padB

	lines := SplitLines(ReplaceTabs(rn.rec.Get(root.Row, root.Col), rn.cfg.TabWidth()))
	if format.VerticalTrim {
		lines = trimBlankEdges(lines)
	}
	if format.HorizontalTrim {
		lines = trimHorizontal(lines, format.AllowLinesAlignment)
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	topGap := verticalGap(innerH-len(lines), rn.cfg.AlignmentVertical(root))
	blockW := 0
	for _, line := range lines {
		if lw := LineWidth(line); lw > blockW {
			blockW = lw
		}
	}
	if blockW > innerW {
		blockW = innerW
	}

	alignment := rn.cfg.AlignmentHorizontal(root)
	color := rn.cfg.TextColor(root)

	leftPad := repeatRune(pad.Left.Fill, padL)
	rightPad := repeatRune(pad.Right.Fill, padR)

	out := make([]string, 0, h)
	for i := 0; i < h; i++ {
		var body string
		switch {
		case i < padT:
			body = fillOrSpaces(pad.Top.Fill, innerW)
		case i >= padT+innerH:
			body = fillOrSpaces(pad.Bottom.Fill, innerW)
		default:
			j := i - padT - topGap
			if j < 0 || j >= len(lines) {
				body = spaces(innerW)
			} else {
				body = rn.alignLine(lines[j], innerW, blockW, alignment, format.AllowLinesAlignment, color)
			}
		}
		out = append(out, fitWidth(leftPad+body+rightPad, w))
	}
	return out
}

// alignLine places one content line within innerW columns. With per-line
// alignment each line is positioned by its own width; otherwise the
// content block is positioned as a whole and lines stay flush inside it.
func (rn *renderer) alignLine(line string, innerW, blockW int, a AlignmentHorizontal, perLine bool, color Color) string {
	if lw := LineWidth(line); lw > innerW {
		line = CutWidth(line, innerW)
	}
	lw := LineWidth(line)

	var gapL int
	if perLine {
		gapL = horizontalGap(innerW-lw, a)
	} else {
		gapL = horizontalGap(innerW-blockW, a)
	}
	gapR := innerW - gapL - lw
	if gapR < 0 {
		gapR = 0
	}

	if !color.IsZero() && line != "" {
		line = color.Prefix + line + color.Suffix
	}
	return spaces(gapL) + line + spaces(gapR)
}

// applyMargin wraps the rendered lines with the configured margin.
func (rn *renderer) applyMargin(lines []string) []string {
	m := rn.cfg.Margin()
	if m.Left.Size == 0 && m.Right.Size == 0 && m.Top.Size == 0 && m.Bottom.Size == 0 {
		return lines
	}

	gridW := TotalWidth(rn.rec, rn.cfg, rn.widths)
	total := m.Left.Size + gridW + m.Right.Size
	color := rn.cfg.MarginColor()

	paint := func(s string) string {
		if s == "" || color.IsZero() {
			return s
		}
		return color.Prefix + s + color.Suffix
	}

	out := make([]string, 0, len(lines)+m.Top.Size+m.Bottom.Size)
	for i := 0; i < m.Top.Size; i++ {
		out = append(out, paint(fillOrSpaces(m.Top.Fill, total)))
	}
	left := paint(repeatRune(m.Left.Fill, m.Left.Size))
	right := paint(repeatRune(m.Right.Fill, m.Right.Size))
	for _, line := range lines {
		out = append(out, left+line+right)
	}
	for i := 0; i < m.Bottom.Size; i++ {
		out = append(out, paint(fillOrSpaces(m.Bottom.Fill, total)))
	}
	return out
}

// trimHorizontal strips horizontal whitespace: per line when lines align
// independently, otherwise uniformly so the block keeps its inner shape.
func trimHorizontal(lines []string, perLine bool) []string {
	out := make([]string, len(lines))
	if perLine {
		for i, line := range lines {
			out[i] = strings.TrimSpace(line)
		}
		return out
	}
	indent := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		indent = 0
	}
	for i, line := range lines {
		if len(line) >= indent {
			line = line[indent:]
		}
		out[i] = strings.TrimRight(line, " ")
	}
	return out
}

func horizontalGap(extra int, a AlignmentHorizontal) int {
	if extra <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return extra / 2
	case AlignRight:
		return extra
	default:
		return 0
	}
}

func verticalGap(extra int, a AlignmentVertical) int {
	if extra <= 0 {
		return 0
	}
	switch a {
	case AlignMiddle:
		return extra / 2
	case AlignBottom:
		return extra
	default:
		return 0
	}
}

// fillOrSpaces builds a fill run, defaulting to spaces for the zero rune.
func fillOrSpaces(fill rune, n int) string {
	if fill == 0 {
		return spaces(n)
	}
	return repeatRune(fill, n)
}

// fitWidth clamps a rendered line to exactly w visual columns.
func fitWidth(s string, w int) string {
	lw := LineWidth(s)
	switch {
	case lw == w:
		return s
	case lw > w:
		return CutWidth(s, w)
	default:
		return s + spaces(w-lw)
	}
}
