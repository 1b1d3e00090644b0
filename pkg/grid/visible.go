package grid

import "github.com/jondot/tabled/pkg/records"

// EachVisible calls fn for every cell that owns its box, in row-major
// order, with the cell's resolved (clamped) column and row span.
// Positions covered by another cell's span are skipped.
func EachVisible(rec records.Records, cfg *Config, fn func(p Position, colSpan, rowSpan int)) {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return
	}
	sg := resolveSpans(cfg, rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Position{r, c}
			if !sg.IsVisible(pos) {
				continue
			}
			fn(pos, sg.ColSpan(pos), sg.RowSpan(pos))
		}
	}
}

// InteriorVerticals reports how many vertical border lines exist
// strictly between columns lo and hi, as seen by a box spanning them.
func InteriorVerticals(rec records.Records, cfg *Config, lo, hi int) int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return 0
	}
	return newBorderMap(cfg, rows, cols).countVerticals(lo, hi)
}

// InteriorHorizontals reports how many horizontal border lines exist
// strictly between rows lo and hi.
func InteriorHorizontals(rec records.Records, cfg *Config, lo, hi int) int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return 0
	}
	return newBorderMap(cfg, rows, cols).countHorizontals(lo, hi)
}

// TotalHeight reports the full line count of the rendered grid body: the
// sum of the row heights plus one line per drawn horizontal line.
func TotalHeight(rec records.Records, cfg *Config, heights []int) int {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if rows == 0 || cols == 0 {
		return 0
	}
	bm := newBorderMap(cfg, rows, cols)
	total := 0
	for r := 0; r < rows && r < len(heights); r++ {
		total += heights[r]
	}
	for r := 0; r <= rows; r++ {
		if bm.hasHorizontal(r) {
			total++
		}
	}
	return total
}
