package grid

// borderMap answers, for one render, which of the grid's border lines
// exist and which glyph every segment resolves to. Presence is decided
// by the global border set plus any per-cell overrides touching the
// line; glyph resolution checks the adjacent cells' overrides first and
// falls back to the positional global glyph.
type borderMap struct {
	cfg        *Config
	rows, cols int

	verticals   []bool // cols+1 lines
	horizontals []bool // rows+1 lines
}

func newBorderMap(cfg *Config, rows, cols int) *borderMap {
	bm := &borderMap{
		cfg:         cfg,
		rows:        rows,
		cols:        cols,
		verticals:   make([]bool, cols+1),
		horizontals: make([]bool, rows+1),
	}
	b := cfg.Borders()

	bm.verticals[0] = b.HasLeft()
	bm.verticals[cols] = b.HasRight()
	for c := 1; c < cols; c++ {
		bm.verticals[c] = b.HasVertical()
	}
	bm.horizontals[0] = b.HasTop()
	bm.horizontals[rows] = b.HasBottom()
	for r := 1; r < rows; r++ {
		bm.horizontals[r] = b.HasHorizontal()
	}

	for p, ov := range cfg.cellBorders {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			continue
		}
		if ov.Left != 0 || ov.TopLeft != 0 || ov.BottomLeft != 0 {
			bm.verticals[p.Col] = true
		}
		if ov.Right != 0 || ov.TopRight != 0 || ov.BottomRight != 0 {
			bm.verticals[p.Col+1] = true
		}
		if ov.Top != 0 || ov.TopLeft != 0 || ov.TopRight != 0 {
			bm.horizontals[p.Row] = true
		}
		if ov.Bottom != 0 || ov.BottomLeft != 0 || ov.BottomRight != 0 {
			bm.horizontals[p.Row+1] = true
		}
	}
	return bm
}

func (bm *borderMap) hasVertical(c int) bool {
	if c < 0 || c >= len(bm.verticals) {
		return false
	}
	return bm.verticals[c]
}

func (bm *borderMap) hasHorizontal(r int) bool {
	if r < 0 || r >= len(bm.horizontals) {
		return false
	}
	return bm.horizontals[r]
}

// countVerticals reports how many vertical lines exist strictly between
// columns lo and hi (the lines interior to a box spanning [lo, hi)).
func (bm *borderMap) countVerticals(lo, hi int) int {
	n := 0
	for c := lo + 1; c < hi; c++ {
		if bm.hasVertical(c) {
			n++
		}
	}
	return n
}

// countHorizontals reports how many horizontal lines exist strictly
// between rows lo and hi.
func (bm *borderMap) countHorizontals(lo, hi int) int {
	n := 0
	for r := lo + 1; r < hi; r++ {
		if bm.hasHorizontal(r) {
			n++
		}
	}
	return n
}

// verticalGlyph resolves the glyph of vertical line c alongside row r.
func (bm *borderMap) verticalGlyph(r, c int) rune {
	if ov, ok := bm.cfg.cellBorder(Position{r, c}); ok && ov.Left != 0 {
		return ov.Left
	}
	if ov, ok := bm.cfg.cellBorder(Position{r, c - 1}); ok && ov.Right != 0 {
		return ov.Right
	}
	b := bm.cfg.Borders()
	switch {
	case c == 0:
		return fallback(b.Left, b.Vertical)
	case c == bm.cols:
		return fallback(b.Right, b.Vertical)
	default:
		return b.Vertical
	}
}

// horizontalGlyph resolves the glyph of horizontal line r above column c.
func (bm *borderMap) horizontalGlyph(r, c int) rune {
	if ov, ok := bm.cfg.cellBorder(Position{r, c}); ok && ov.Top != 0 {
		return ov.Top
	}
	if ov, ok := bm.cfg.cellBorder(Position{r - 1, c}); ok && ov.Bottom != 0 {
		return ov.Bottom
	}
	b := bm.cfg.Borders()
	switch {
	case r == 0:
		return fallback(b.Top, b.Horizontal)
	case r == bm.rows:
		return fallback(b.Bottom, b.Horizontal)
	default:
		return b.Horizontal
	}
}

// intersectionGlyph resolves the glyph where horizontal line r crosses
// vertical line c.
func (bm *borderMap) intersectionGlyph(r, c int) rune {
	if g := bm.cornerOverride(r, c); g != 0 {
		return g
	}
	b := bm.cfg.Borders()
	switch {
	case r == 0 && c == 0:
		return fallback(b.TopLeft, b.Intersection)
	case r == 0 && c == bm.cols:
		return fallback(b.TopRight, b.Intersection)
	case r == bm.rows && c == 0:
		return fallback(b.BottomLeft, b.Intersection)
	case r == bm.rows && c == bm.cols:
		return fallback(b.BottomRight, b.Intersection)
	case r == 0:
		return fallback(b.TopIntersection, b.Intersection)
	case r == bm.rows:
		return fallback(b.BottomIntersection, b.Intersection)
	case c == 0:
		return fallback(b.LeftIntersection, b.Intersection)
	case c == bm.cols:
		return fallback(b.RightIntersection, b.Intersection)
	default:
		return b.Intersection
	}
}

// cornerOverride checks the four cells meeting at (r, c) for a corner
// override, most-recently-laid-out cell first (bottom right wins).
func (bm *borderMap) cornerOverride(r, c int) rune {
	if ov, ok := bm.cfg.cellBorder(Position{r, c}); ok && ov.TopLeft != 0 {
		return ov.TopLeft
	}
	if ov, ok := bm.cfg.cellBorder(Position{r, c - 1}); ok && ov.TopRight != 0 {
		return ov.TopRight
	}
	if ov, ok := bm.cfg.cellBorder(Position{r - 1, c}); ok && ov.BottomLeft != 0 {
		return ov.BottomLeft
	}
	if ov, ok := bm.cfg.cellBorder(Position{r - 1, c - 1}); ok && ov.BottomRight != 0 {
		return ov.BottomRight
	}
	return 0
}

func fallback(glyph, alt rune) rune {
	if glyph != 0 {
		return glyph
	}
	return alt
}
