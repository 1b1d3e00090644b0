package grid

// spanGrid is the resolved span layout for one render: every position
// either owns its box or delegates to the top-left position of the span
// covering it.
type spanGrid struct {
	rows, cols int
	owner      map[Position]Position
	colSpan    map[Position]int
	rowSpan    map[Position]int
}

// resolveSpans clamps the configured spans to the grid bounds and builds
// the ownership map. Spans are claimed in row-major order; a span whose
// root is already covered, or which would overlap an earlier claim, is
// dropped rather than reported as an error.
func resolveSpans(cfg *Config, rows, cols int) *spanGrid {
	sg := &spanGrid{rows: rows, cols: cols}
	if !cfg.HasSpans() {
		return sg
	}
	sg.owner = map[Position]Position{}
	sg.colSpan = map[Position]int{}
	sg.rowSpan = map[Position]int{}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			root := Position{r, c}
			if _, covered := sg.owner[root]; covered {
				continue
			}
			cs := cfg.ColumnSpan(root)
			rs := cfg.RowSpan(root)
			if cs <= 1 && rs <= 1 {
				continue
			}
			if cs > cols-c {
				cs = cols - c
			}
			if rs > rows-r {
				rs = rows - r
			}
			if overlaps(sg, root, cs, rs) {
				continue
			}
			for i := r; i < r+rs; i++ {
				for j := c; j < c+cs; j++ {
					if i == r && j == c {
						continue
					}
					sg.owner[Position{i, j}] = root
				}
			}
			sg.colSpan[root] = cs
			sg.rowSpan[root] = rs
		}
	}
	return sg
}

func overlaps(sg *spanGrid, root Position, cs, rs int) bool {
	for i := root.Row; i < root.Row+rs; i++ {
		for j := root.Col; j < root.Col+cs; j++ {
			if _, covered := sg.owner[Position{i, j}]; covered {
				return true
			}
		}
	}
	return false
}

// Owner returns the position owning the box at p: p itself unless p is
// covered by a span rooted elsewhere.
func (sg *spanGrid) Owner(p Position) Position {
	if o, ok := sg.owner[p]; ok {
		return o
	}
	return p
}

// IsVisible reports whether p owns its box.
func (sg *spanGrid) IsVisible(p Position) bool {
	_, covered := sg.owner[p]
	return !covered
}

// ColSpan returns the number of columns the box rooted at p covers.
func (sg *spanGrid) ColSpan(p Position) int {
	if s, ok := sg.colSpan[p]; ok {
		return s
	}
	return 1
}

// RowSpan returns the number of rows the box rooted at p covers.
func (sg *spanGrid) RowSpan(p Position) int {
	if s, ok := sg.rowSpan[p]; ok {
		return s
	}
	return 1
}
