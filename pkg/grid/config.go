// Package grid implements the table layout engine: configuration,
// entity resolution, dimension estimation, and border-decorated
// rendering of a grid of strings.
package grid

// AlignmentHorizontal positions cell content within its column width.
type AlignmentHorizontal int

const (
	// AlignLeft flushes content to the left edge of the cell.
	AlignLeft AlignmentHorizontal = iota
	// AlignCenter centers content within the cell.
	AlignCenter
	// AlignRight flushes content to the right edge of the cell.
	AlignRight
)

// AlignmentVertical positions cell content within its row height.
type AlignmentVertical int

const (
	// AlignTop flushes content to the top of the cell.
	AlignTop AlignmentVertical = iota
	// AlignMiddle centers content vertically.
	AlignMiddle
	// AlignBottom flushes content to the bottom of the cell.
	AlignBottom
)

// An Indent is a run of a fill character, used for padding and margins.
type Indent struct {
	Size int
	Fill rune
}

// Spaced builds an Indent of n spaces.
func Spaced(n int) Indent { return Indent{Size: n, Fill: ' '} }

// Sides groups a per-side value for the four sides of a box.
type Sides[T any] struct {
	Left   T
	Right  T
	Top    T
	Bottom T
}

// Formatting controls how alignment interacts with multi-line content.
type Formatting struct {
	// HorizontalTrim strips leading/trailing blanks from lines before
	// alignment.
	HorizontalTrim bool
	// VerticalTrim strips leading/trailing blank lines before alignment.
	VerticalTrim bool
	// AllowLinesAlignment aligns each line independently instead of the
	// content block as a whole.
	AllowLinesAlignment bool
}

// A Color is an opaque wrapper emitted around rendered text or border
// glyphs. It carries no layout weight: prefixes and suffixes never count
// toward width or height.
type Color struct {
	Prefix string
	Suffix string
}

// IsZero reports whether the color has no effect.
func (c Color) IsZero() bool { return c.Prefix == "" && c.Suffix == "" }

// Borders is the full set of glyphs used to frame the grid: four edges,
// four corners, the edge intersections, and the two internal lines.
// A zero rune means the corresponding line is absent: it is not drawn
// and claims no width or height.
type Borders struct {
	Top             rune
	TopLeft         rune
	TopRight        rune
	TopIntersection rune

	Bottom             rune
	BottomLeft         rune
	BottomRight        rune
	BottomIntersection rune

	Left  rune
	Right rune

	LeftIntersection  rune
	RightIntersection rune

	Horizontal   rune
	Vertical     rune
	Intersection rune
}

// HasLeft reports whether the left edge line exists.
func (b *Borders) HasLeft() bool {
	return b.Left != 0 || b.TopLeft != 0 || b.BottomLeft != 0 || b.LeftIntersection != 0
}

// HasRight reports whether the right edge line exists.
func (b *Borders) HasRight() bool {
	return b.Right != 0 || b.TopRight != 0 || b.BottomRight != 0 || b.RightIntersection != 0
}

// HasVertical reports whether internal vertical lines exist.
func (b *Borders) HasVertical() bool {
	return b.Vertical != 0 || b.TopIntersection != 0 || b.BottomIntersection != 0 || b.Intersection != 0
}

// HasTop reports whether the top edge line exists.
func (b *Borders) HasTop() bool {
	return b.Top != 0 || b.TopLeft != 0 || b.TopRight != 0 || b.TopIntersection != 0
}

// HasBottom reports whether the bottom edge line exists.
func (b *Borders) HasBottom() bool {
	return b.Bottom != 0 || b.BottomLeft != 0 || b.BottomRight != 0 || b.BottomIntersection != 0
}

// HasHorizontal reports whether internal horizontal lines exist.
func (b *Borders) HasHorizontal() bool {
	return b.Horizontal != 0 || b.LeftIntersection != 0 || b.RightIntersection != 0 || b.Intersection != 0
}

// A Border is a per-cell override of the eight segments framing one cell.
// Zero runes leave the corresponding global glyph in effect.
type Border struct {
	Top    rune
	Bottom rune
	Left   rune
	Right  rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// DefaultTabWidth is the number of spaces a tab character expands to
// unless configured otherwise.
const DefaultTabWidth = 4

// Config holds the full layout configuration of a grid: borders, spans,
// padding, margins, alignment, formatting, and colors. It is pure data;
// the estimator and renderer read it, the settings pipeline mutates it.
type Config struct {
	borders     Borders
	cellBorders map[Position]Border

	margin Sides[Indent]

	padding    entityMap[Sides[Indent]]
	alignmentH entityMap[AlignmentHorizontal]
	alignmentV entityMap[AlignmentVertical]
	formatting entityMap[Formatting]

	columnSpans map[Position]int
	rowSpans    map[Position]int

	textColors   entityMap[Color]
	borderColors entityMap[Color]
	marginColor  Color

	tabWidth int
}

// NewConfig returns a Config with the default layout: ASCII borders,
// one space of left/right padding, left/top alignment, tab width 4.
func NewConfig() *Config {
	cfg := &Config{
		borders:  ASCIIBorders(),
		tabWidth: DefaultTabWidth,
	}
	cfg.padding.set(Global(), Sides[Indent]{
		Left:  Spaced(1),
		Right: Spaced(1),
	})
	return cfg
}

// ASCIIBorders is the default '+', '-', '|' frame.
func ASCIIBorders() Borders {
	return Borders{
		Top: '-', TopLeft: '+', TopRight: '+', TopIntersection: '+',
		Bottom: '-', BottomLeft: '+', BottomRight: '+', BottomIntersection: '+',
		Left: '|', Right: '|',
		LeftIntersection: '+', RightIntersection: '+',
		Horizontal: '-', Vertical: '|', Intersection: '+',
	}
}

// Borders returns the global border glyph set.
func (c *Config) Borders() Borders { return c.borders }

// SetBorders replaces the global border glyph set.
func (c *Config) SetBorders(b Borders) { c.borders = b }

// SetBorder overrides the border segments of a single cell.
func (c *Config) SetBorder(p Position, b Border) {
	if c.cellBorders == nil {
		c.cellBorders = map[Position]Border{}
	}
	c.cellBorders[p] = b
}

// Margin returns the outer indent wrapped around the rendered grid.
func (c *Config) Margin() Sides[Indent] { return c.margin }

// SetMargin sets the outer indent wrapped around the rendered grid.
func (c *Config) SetMargin(m Sides[Indent]) { c.margin = m }

// Padding resolves the padding of the cell at p.
func (c *Config) Padding(p Position) Sides[Indent] {
	return c.padding.lookup(p, Sides[Indent]{})
}

// SetPadding sets padding for every cell the entity covers.
func (c *Config) SetPadding(e Entity, s Sides[Indent]) { c.padding.set(e, s) }

// AlignmentHorizontal resolves the horizontal alignment of the cell at p.
func (c *Config) AlignmentHorizontal(p Position) AlignmentHorizontal {
	return c.alignmentH.lookup(p, AlignLeft)
}

// SetAlignmentHorizontal sets horizontal alignment for the entity.
func (c *Config) SetAlignmentHorizontal(e Entity, a AlignmentHorizontal) {
	c.alignmentH.set(e, a)
}

// AlignmentVertical resolves the vertical alignment of the cell at p.
func (c *Config) AlignmentVertical(p Position) AlignmentVertical {
	return c.alignmentV.lookup(p, AlignTop)
}

// SetAlignmentVertical sets vertical alignment for the entity.
func (c *Config) SetAlignmentVertical(e Entity, a AlignmentVertical) {
	c.alignmentV.set(e, a)
}

// Formatting resolves the formatting flags of the cell at p.
func (c *Config) Formatting(p Position) Formatting {
	return c.formatting.lookup(p, Formatting{})
}

// SetFormatting sets formatting flags for the entity.
func (c *Config) SetFormatting(e Entity, f Formatting) { c.formatting.set(e, f) }

// SetColumnSpan claims size columns starting at p. Sizes below 2 clear
// the span. Spans wider than the grid are clamped when the grid is laid
// out, not here.
func (c *Config) SetColumnSpan(p Position, size int) {
	if size < 2 {
		delete(c.columnSpans, p)
		return
	}
	if c.columnSpans == nil {
		c.columnSpans = map[Position]int{}
	}
	c.columnSpans[p] = size
}

// SetRowSpan claims size rows starting at p.
func (c *Config) SetRowSpan(p Position, size int) {
	if size < 2 {
		delete(c.rowSpans, p)
		return
	}
	if c.rowSpans == nil {
		c.rowSpans = map[Position]int{}
	}
	c.rowSpans[p] = size
}

// ColumnSpan returns the column span rooted at p, or 1.
func (c *Config) ColumnSpan(p Position) int {
	if s, ok := c.columnSpans[p]; ok {
		return s
	}
	return 1
}

// RowSpan returns the row span rooted at p, or 1.
func (c *Config) RowSpan(p Position) int {
	if s, ok := c.rowSpans[p]; ok {
		return s
	}
	return 1
}

// HasSpans reports whether any cell claims more than one position.
func (c *Config) HasSpans() bool {
	return len(c.columnSpans) > 0 || len(c.rowSpans) > 0
}

// TextColor resolves the content color wrapper of the cell at p.
func (c *Config) TextColor(p Position) Color {
	return c.textColors.lookup(p, Color{})
}

// SetTextColor sets the content color wrapper for the entity.
func (c *Config) SetTextColor(e Entity, col Color) { c.textColors.set(e, col) }

// BorderColor resolves the border color wrapper of the cell at p.
func (c *Config) BorderColor(p Position) Color {
	return c.borderColors.lookup(p, Color{})
}

// SetBorderColor sets the border color wrapper for the entity.
func (c *Config) SetBorderColor(e Entity, col Color) { c.borderColors.set(e, col) }

// MarginColor returns the color wrapper applied to margin fill.
func (c *Config) MarginColor() Color { return c.marginColor }

// SetMarginColor sets the color wrapper applied to margin fill.
func (c *Config) SetMarginColor(col Color) { c.marginColor = col }

// TabWidth returns the configured tab expansion width.
func (c *Config) TabWidth() int { return c.tabWidth }

// SetTabWidth sets the tab expansion width. Zero removes tabs entirely.
func (c *Config) SetTabWidth(n int) {
	if n < 0 {
		n = 0
	}
	c.tabWidth = n
}

// cellBorder returns the per-cell border override for p, if any.
func (c *Config) cellBorder(p Position) (Border, bool) {
	b, ok := c.cellBorders[p]
	return b, ok
}
