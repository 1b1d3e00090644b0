package table

import (
	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// Alignment positions cell content. As a table option it applies
// globally; through Modify it applies to the targeted cells.
type Alignment struct {
	horizontal *grid.AlignmentHorizontal
	vertical   *grid.AlignmentVertical
}

// AlignLeft flushes content left.
func AlignLeft() Alignment { return horizontalAlignment(grid.AlignLeft) }

// AlignCenter centers content horizontally.
func AlignCenter() Alignment { return horizontalAlignment(grid.AlignCenter) }

// AlignRight flushes content right.
func AlignRight() Alignment { return horizontalAlignment(grid.AlignRight) }

// AlignTop flushes content to the top of the cell.
func AlignTop() Alignment { return verticalAlignment(grid.AlignTop) }

// AlignMiddle centers content vertically.
func AlignMiddle() Alignment { return verticalAlignment(grid.AlignMiddle) }

// AlignBottom flushes content to the bottom of the cell.
func AlignBottom() Alignment { return verticalAlignment(grid.AlignBottom) }

func horizontalAlignment(a grid.AlignmentHorizontal) Alignment {
	return Alignment{horizontal: &a}
}

func verticalAlignment(a grid.AlignmentVertical) Alignment {
	return Alignment{vertical: &a}
}

// ApplyTable implements Option.
func (a Alignment) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	a.ApplyCell(rec, cfg, grid.Global())
}

// ApplyCell implements CellOption.
func (a Alignment) ApplyCell(_ *records.Vec, cfg *grid.Config, target grid.Entity) {
	if a.horizontal != nil {
		cfg.SetAlignmentHorizontal(target, *a.horizontal)
	}
	if a.vertical != nil {
		cfg.SetAlignmentVertical(target, *a.vertical)
	}
}

// Padding is the inner indent of a cell on each side.
type Padding struct {
	sides grid.Sides[grid.Indent]
}

// NewPadding builds a space-filled padding setting.
func NewPadding(left, right, top, bottom int) Padding {
	return Padding{sides: grid.Sides[grid.Indent]{
		Left:   grid.Spaced(left),
		Right:  grid.Spaced(right),
		Top:    grid.Spaced(top),
		Bottom: grid.Spaced(bottom),
	}}
}

// Fill sets a custom fill character per side.
func (p Padding) Fill(left, right, top, bottom rune) Padding {
	p.sides.Left.Fill = left
	p.sides.Right.Fill = right
	p.sides.Top.Fill = top
	p.sides.Bottom.Fill = bottom
	return p
}

// ApplyTable implements Option.
func (p Padding) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	p.ApplyCell(rec, cfg, grid.Global())
}

// ApplyCell implements CellOption.
func (p Padding) ApplyCell(_ *records.Vec, cfg *grid.Config, target grid.Entity) {
	cfg.SetPadding(target, p.sides)
}

// Margin is the outer indent wrapped around the whole rendered table.
type Margin struct {
	sides grid.Sides[grid.Indent]
}

// NewMargin builds a space-filled margin setting.
func NewMargin(left, right, top, bottom int) Margin {
	return Margin{sides: grid.Sides[grid.Indent]{
		Left:   grid.Spaced(left),
		Right:  grid.Spaced(right),
		Top:    grid.Spaced(top),
		Bottom: grid.Spaced(bottom),
	}}
}

// Fill sets a custom fill character per side.
func (m Margin) Fill(left, right, top, bottom rune) Margin {
	m.sides.Left.Fill = left
	m.sides.Right.Fill = right
	m.sides.Top.Fill = top
	m.sides.Bottom.Fill = bottom
	return m
}

// ApplyTable implements Option.
func (m Margin) ApplyTable(_ *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetMargin(m.sides)
}

// Span claims extra grid positions for the targeted cells. A span larger
// than the remaining columns or rows is clamped at layout time; a span
// whose root is already covered is dropped.
type Span struct {
	columns int
	rows    int
}

// SpanColumn makes each targeted cell cover size columns.
func SpanColumn(size int) Span { return Span{columns: size} }

// SpanRow makes each targeted cell cover size rows.
func SpanRow(size int) Span { return Span{rows: size} }

// ApplyCell implements CellOption.
func (s Span) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		if s.columns != 0 {
			cfg.SetColumnSpan(pos, s.columns)
		}
		if s.rows != 0 {
			cfg.SetRowSpan(pos, s.rows)
		}
	}
}

// Format rewrites the content of the targeted cells.
type Format func(content string) string

// ApplyCell implements CellOption.
func (f Format) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		rec.Set(pos.Row, pos.Col, f(rec.Get(pos.Row, pos.Col)))
	}
}

// FormatPositioned rewrites cell content with access to the position.
type FormatPositioned func(content string, pos grid.Position) string

// ApplyCell implements CellOption.
func (f FormatPositioned) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		rec.Set(pos.Row, pos.Col, f(rec.Get(pos.Row, pos.Col), pos))
	}
}

// TabSize sets the width a tab character expands to. Tabs are replaced
// by spaces in the output; zero removes them.
type TabSize int

// ApplyTable implements Option.
func (n TabSize) ApplyTable(_ *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetTabWidth(int(n))
}

// TrimStrategy controls whether alignment may strip surrounding blanks.
type TrimStrategy int

const (
	// TrimNone forbids trimming.
	TrimNone TrimStrategy = iota
	// TrimHorizontal strips horizontal whitespace before alignment.
	TrimHorizontal
	// TrimVertical strips blank edge lines before alignment.
	TrimVertical
	// TrimBoth combines TrimHorizontal and TrimVertical.
	TrimBoth
)

// ApplyCell implements CellOption.
func (t TrimStrategy) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		f := cfg.Formatting(pos)
		f.HorizontalTrim = t == TrimHorizontal || t == TrimBoth
		f.VerticalTrim = t == TrimVertical || t == TrimBoth
		cfg.SetFormatting(grid.Cell(pos.Row, pos.Col), f)
	}
}

// AlignmentStrategy controls whether multi-line content aligns line by
// line or as one block.
type AlignmentStrategy int

const (
	// AlignPerCell aligns the content block as a whole.
	AlignPerCell AlignmentStrategy = iota
	// AlignPerLine aligns every line independently.
	AlignPerLine
)

// ApplyCell implements CellOption.
func (a AlignmentStrategy) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		f := cfg.Formatting(pos)
		f.AllowLinesAlignment = a == AlignPerLine
		cfg.SetFormatting(grid.Cell(pos.Row, pos.Col), f)
	}
}

// TextColor wraps the content of the targeted cells with an opaque
// prefix/suffix pair. It never affects width or height.
type TextColor grid.Color

// ApplyTable implements Option.
func (c TextColor) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetTextColor(grid.Global(), grid.Color(c))
}

// ApplyCell implements CellOption.
func (c TextColor) ApplyCell(_ *records.Vec, cfg *grid.Config, target grid.Entity) {
	cfg.SetTextColor(target, grid.Color(c))
}

// BorderColor wraps the border glyphs adjacent to the targeted cells.
type BorderColor grid.Color

// ApplyTable implements Option.
func (c BorderColor) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetBorderColor(grid.Global(), grid.Color(c))
}

// ApplyCell implements CellOption.
func (c BorderColor) ApplyCell(_ *records.Vec, cfg *grid.Config, target grid.Entity) {
	cfg.SetBorderColor(target, grid.Color(c))
}

// MarginColor wraps the margin fill.
type MarginColor grid.Color

// ApplyTable implements Option.
func (c MarginColor) ApplyTable(_ *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetMarginColor(grid.Color(c))
}

// CellBorder overrides the border segments around the targeted cells.
type CellBorder grid.Border

// ApplyCell implements CellOption.
func (b CellBorder) ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity) {
	for pos := range target.Positions(rec.CountRows(), rec.CountColumns()) {
		cfg.SetBorder(pos, grid.Border(b))
	}
}
