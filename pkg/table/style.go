package table

import (
	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// A Style is a named border glyph set applied to the whole grid.
type Style struct {
	borders grid.Borders
}

// ApplyTable implements Option.
func (s Style) ApplyTable(_ *records.Vec, cfg *grid.Config, _ *Dimension) {
	cfg.SetBorders(s.borders)
}

// Borders exposes the style's glyph set.
func (s Style) Borders() grid.Borders { return s.borders }

// StyleASCII is the default '+', '-', '|' frame.
func StyleASCII() Style {
	return Style{borders: grid.ASCIIBorders()}
}

// StyleModern uses light box-drawing characters.
func StyleModern() Style {
	return Style{borders: grid.Borders{
		Top: '─', TopLeft: '┌', TopRight: '┐', TopIntersection: '┬',
		Bottom: '─', BottomLeft: '└', BottomRight: '┘', BottomIntersection: '┴',
		Left: '│', Right: '│',
		LeftIntersection: '├', RightIntersection: '┤',
		Horizontal: '─', Vertical: '│', Intersection: '┼',
	}}
}

// StyleRounded is StyleModern with rounded corners.
func StyleRounded() Style {
	s := StyleModern()
	s.borders.TopLeft = '╭'
	s.borders.TopRight = '╮'
	s.borders.BottomLeft = '╰'
	s.borders.BottomRight = '╯'
	return s
}

// StyleMarkdown keeps the vertical pipes and outer columns of a markdown
// table and draws no horizontal lines. The header divider, which
// markdown places under the first row only, can be added per cell with
// CellBorder.
func StyleMarkdown() Style {
	return Style{borders: grid.Borders{
		Left: '|', Right: '|', Vertical: '|',
	}}
}

// StylePsql separates columns with pipes only, without any outer frame
// or horizontal lines.
func StylePsql() Style {
	return Style{borders: grid.Borders{Vertical: '|'}}
}

// StyleBlank separates columns with a blank vertical line and draws
// nothing else.
func StyleBlank() Style {
	return Style{borders: grid.Borders{Vertical: ' '}}
}

// StyleEmpty draws no borders at all. Columns remain separated by their
// padding; absent lines claim no width.
func StyleEmpty() Style {
	return Style{borders: grid.Borders{}}
}
