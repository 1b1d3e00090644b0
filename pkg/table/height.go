package table

import (
	"strings"

	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// RowHeight pins every row to the same fixed height. Rows taller than
// the budget have their content cut at render time; shorter rows are
// blank-filled by vertical alignment.
type RowHeight int

// ApplyTable implements Option.
func (n RowHeight) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	heights := make([]int, rec.CountRows())
	for r := range heights {
		heights[r] = max(int(n), 0)
	}
	dims.Heights = heights
}

// TruncateHeight shrinks the table to a total line budget (borders
// included), cutting content lines from the rows it shrinks. Rows never
// shrink below their vertical padding floor.
type TruncateHeightOption struct {
	height int
	peaker Peaker
}

// TruncateHeight builds a height adjuster targeting the given total line
// count.
func TruncateHeight(height int) *TruncateHeightOption {
	return &TruncateHeightOption{height: height}
}

// Priority selects the row shrink order.
func (t *TruncateHeightOption) Priority(p Peaker) *TruncateHeightOption {
	t.peaker = p
	return t
}

// ApplyTable implements Option.
func (t *TruncateHeightOption) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	heights := grid.EstimateHeights(rec, cfg)
	total := grid.TotalHeight(rec, cfg, heights)
	if total <= t.height {
		return
	}
	mins := verticalPaddingFloor(rec, cfg)
	peaker := resolvePeaker(t.peaker)
	for total > t.height {
		row, ok := peaker.Peak(mins, heights)
		if !ok {
			break
		}
		heights[row]--
		total--
	}
	dims.Heights = heights

	// Cut cell content down to the lines that still fit, so later
	// estimates agree with what renders.
	grid.EachVisible(rec, cfg, func(pos grid.Position, _, rowSpan int) {
		avail := grid.InteriorHorizontals(rec, cfg, pos.Row, pos.Row+rowSpan)
		for r := pos.Row; r < pos.Row+rowSpan && r < len(heights); r++ {
			avail += heights[r]
		}
		pad := cfg.Padding(pos)
		avail -= pad.Top.Size + pad.Bottom.Size
		if avail < 0 {
			avail = 0
		}
		lines := grid.SplitLines(rec.Get(pos.Row, pos.Col))
		if len(lines) > avail {
			rec.Set(pos.Row, pos.Col, strings.Join(lines[:avail], "\n"))
		}
	})
}

// MinHeightOption grows the table to reach a total line budget.
type MinHeightOption struct {
	height int
	peaker Peaker
}

// MinHeight builds a growth adjuster targeting the given total line
// count (borders included).
func MinHeight(height int) *MinHeightOption {
	return &MinHeightOption{height: height}
}

// Priority selects the row growth order.
func (m *MinHeightOption) Priority(p Peaker) *MinHeightOption {
	m.peaker = p
	return m
}

// ApplyTable implements Option.
func (m *MinHeightOption) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	if rec.CountRows() == 0 || rec.CountColumns() == 0 {
		return
	}
	heights := grid.EstimateHeights(rec, cfg)
	total := grid.TotalHeight(rec, cfg, heights)
	peaker := resolvePeaker(m.peaker)
	for total < m.height {
		row, ok := peaker.Peak(nil, heights)
		if !ok {
			break
		}
		heights[row]++
		total++
	}
	dims.Heights = heights
}

// verticalPaddingFloor is the minimum height of every row: the tallest
// vertical padding of any cell in it. Truncation cannot go below it.
func verticalPaddingFloor(rec records.Records, cfg *grid.Config) []int {
	rows := rec.CountRows()
	mins := make([]int, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < rec.CountColumns(); c++ {
			pad := cfg.Padding(grid.Position{Row: r, Col: c})
			if p := pad.Top.Size + pad.Bottom.Size; p > mins[r] {
				mins[r] = p
			}
		}
	}
	return mins
}
