package table

import (
	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// Panel inserts a full-width spanned row carrying a single text at the
// given row index. Apply panels before row-targeted settings: entity
// maps and spans keyed by row index are not re-homed by the insertion.
type Panel struct {
	text string
	row  int
}

// NewPanel builds a panel at the given row. Indexes past the end append
// at the bottom.
func NewPanel(text string, row int) Panel {
	return Panel{text: text, row: row}
}

// Header is a panel above the first row.
func Header(text string) Panel { return NewPanel(text, 0) }

// ApplyTable implements Option.
func (p Panel) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	row := p.row
	if row < 0 {
		row = 0
	}
	if row > rec.CountRows() {
		row = rec.CountRows()
	}
	if err := rec.InsertRow(row); err != nil {
		return
	}
	rec.Set(row, 0, p.text)
	if cols := rec.CountColumns(); cols > 1 {
		cfg.SetColumnSpan(grid.Position{Row: row, Col: 0}, cols)
	}
}

// Footer inserts a panel below the last row. It is its own type because
// the target row is known only at apply time.
type Footer string

// ApplyTable implements Option.
func (f Footer) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	NewPanel(string(f), rec.CountRows()).ApplyTable(rec, cfg, dims)
}

// Concat glues another table's records onto this one. Vertical
// concatenation stacks rows; horizontal appends columns. Size mismatches
// are padded with empty cells.
type Concat struct {
	other    records.Records
	vertical bool
}

// ConcatVertical stacks other's rows under the table.
func ConcatVertical(other *Table) Concat {
	return Concat{other: other.Records(), vertical: true}
}

// ConcatHorizontal appends other's columns to the right of the table.
func ConcatHorizontal(other *Table) Concat {
	return Concat{other: other.Records()}
}

// ApplyTable implements Option.
func (c Concat) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	if c.vertical {
		rec.ConcatVertical(c.other)
	} else {
		rec.ConcatHorizontal(c.other)
	}
}

// Rotate turns the whole grid. Like Panel, apply rotations before
// position-targeted settings.
type Rotate records.Rotation

// ApplyTable implements Option.
func (r Rotate) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rec.Rotate(records.Rotation(r))
}

// MergeDuplicates collapses runs of adjacent equal cells into one
// spanned cell.
type MergeDuplicates struct {
	vertical bool
}

// MergeVertical spans runs of equal cells down each column.
func MergeVertical() MergeDuplicates { return MergeDuplicates{vertical: true} }

// MergeHorizontal spans runs of equal cells across each row.
func MergeHorizontal() MergeDuplicates { return MergeDuplicates{} }

// ApplyTable implements Option.
func (m MergeDuplicates) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rows, cols := rec.CountRows(), rec.CountColumns()
	if m.vertical {
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; {
				run := 1
				for r+run < rows && rec.Get(r+run, c) == rec.Get(r, c) {
					run++
				}
				if run > 1 {
					cfg.SetRowSpan(grid.Position{Row: r, Col: c}, run)
				}
				r += run
			}
		}
		return
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; {
			run := 1
			for c+run < cols && rec.Get(r, c+run) == rec.Get(r, c) {
				run++
			}
			if run > 1 {
				cfg.SetColumnSpan(grid.Position{Row: r, Col: c}, run)
			}
			c += run
		}
	}
}

// LimitRows keeps only the first n rows; zero empties the table.
type LimitRows int

// ApplyTable implements Option.
func (n LimitRows) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rec.LimitRows(int(n))
}

// LimitColumns keeps only the first n columns; zero empties the table.
type LimitColumns int

// ApplyTable implements Option.
func (n LimitColumns) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rec.LimitColumns(int(n))
}

// DisableRow removes one row from the record source. Out-of-range
// indexes are ignored.
type DisableRow int

// ApplyTable implements Option.
func (n DisableRow) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rec.RemoveRow(int(n))
}

// DisableColumn removes one column from the record source.
type DisableColumn int

// ApplyTable implements Option.
func (n DisableColumn) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	rec.RemoveColumn(int(n))
}
