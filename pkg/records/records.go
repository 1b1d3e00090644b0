// Package records defines the record source abstraction consumed by the
// grid layout engine: a rectangular grid of strings addressable by
// (row, column).
package records

import (
	"errors"
	"fmt"
)

var (
	// ErrRowOutOfRange indicates that an invalid row index was referenced.
	ErrRowOutOfRange = errors.New("row index out of range")
	// ErrColumnOutOfRange indicates that an invalid column index was referenced.
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// Records is a read-only view over a grid of strings.
//
// Implementations must be stable: repeated calls with the same arguments
// return the same values for the duration of one render, unless the caller
// mutates the source between calls.
type Records interface {
	// CountRows reports the number of rows in the grid.
	CountRows() int
	// CountColumns reports the number of columns in the grid.
	CountColumns() int
	// Get returns the text of the cell at (row, col).
	// Out-of-range positions yield the empty string.
	Get(row, col int) string
}

// Vec is a row-major, in-memory implementation of Records that also
// supports the structural mutations used by the settings pipeline.
type Vec struct {
	cells [][]string
	cols  int
}

var _ Records = (*Vec)(nil)

// NewVec builds a Vec from row-major data. Ragged input is normalized:
// every row is padded with empty cells up to the widest row.
func NewVec(data [][]string) *Vec {
	cols := 0
	for _, row := range data {
		if len(row) > cols {
			cols = len(row)
		}
	}
	cells := make([][]string, len(data))
	for i, row := range data {
		cells[i] = make([]string, cols)
		copy(cells[i], row)
	}
	return &Vec{cells: cells, cols: cols}
}

// CountRows implements Records.
func (v *Vec) CountRows() int { return len(v.cells) }

// CountColumns implements Records.
func (v *Vec) CountColumns() int {
	if len(v.cells) == 0 {
		return 0
	}
	return v.cols
}

// Get implements Records.
func (v *Vec) Get(row, col int) string {
	if row < 0 || row >= len(v.cells) || col < 0 || col >= v.cols {
		return ""
	}
	return v.cells[row][col]
}

// Set overwrites the text of the cell at (row, col).
func (v *Vec) Set(row, col int, text string) error {
	if row < 0 || row >= len(v.cells) {
		return fmt.Errorf("%w: %d (have %d rows)", ErrRowOutOfRange, row, len(v.cells))
	}
	if col < 0 || col >= v.cols {
		return fmt.Errorf("%w: %d (have %d columns)", ErrColumnOutOfRange, col, v.cols)
	}
	v.cells[row][col] = text
	return nil
}

// InsertRow inserts a row of empty cells before index row.
// row may equal CountRows to append at the bottom.
func (v *Vec) InsertRow(row int) error {
	if row < 0 || row > len(v.cells) {
		return fmt.Errorf("%w: %d (have %d rows)", ErrRowOutOfRange, row, len(v.cells))
	}
	fresh := make([]string, v.cols)
	v.cells = append(v.cells, nil)
	copy(v.cells[row+1:], v.cells[row:])
	v.cells[row] = fresh
	return nil
}

// RemoveRow deletes the row at the given index.
func (v *Vec) RemoveRow(row int) error {
	if row < 0 || row >= len(v.cells) {
		return fmt.Errorf("%w: %d (have %d rows)", ErrRowOutOfRange, row, len(v.cells))
	}
	v.cells = append(v.cells[:row], v.cells[row+1:]...)
	return nil
}

// RemoveColumn deletes the column at the given index from every row.
func (v *Vec) RemoveColumn(col int) error {
	if col < 0 || col >= v.cols {
		return fmt.Errorf("%w: %d (have %d columns)", ErrColumnOutOfRange, col, v.cols)
	}
	for i := range v.cells {
		v.cells[i] = append(v.cells[i][:col], v.cells[i][col+1:]...)
	}
	v.cols--
	return nil
}

// LimitRows keeps only the first n rows. n larger than the row count is a
// no-op; n of zero empties the grid.
func (v *Vec) LimitRows(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(v.cells) {
		v.cells = v.cells[:n]
	}
}

// LimitColumns keeps only the first n columns.
func (v *Vec) LimitColumns(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.cols {
		return
	}
	for i := range v.cells {
		v.cells[i] = v.cells[i][:n]
	}
	v.cols = n
}

// ConcatVertical appends other's rows below v. When column counts differ
// the narrower side is padded with empty cells.
func (v *Vec) ConcatVertical(other Records) {
	cols := other.CountColumns()
	if cols > v.cols {
		v.growColumns(cols)
	}
	for i := 0; i < other.CountRows(); i++ {
		row := make([]string, v.cols)
		for j := 0; j < cols; j++ {
			row[j] = other.Get(i, j)
		}
		v.cells = append(v.cells, row)
	}
}

// ConcatHorizontal appends other's columns to the right of v. When row
// counts differ the shorter side is padded with empty cells.
func (v *Vec) ConcatHorizontal(other Records) {
	rows := other.CountRows()
	for len(v.cells) < rows {
		v.cells = append(v.cells, make([]string, v.cols))
	}
	otherCols := other.CountColumns()
	for i := range v.cells {
		ext := make([]string, otherCols)
		if i < rows {
			for j := 0; j < otherCols; j++ {
				ext[j] = other.Get(i, j)
			}
		}
		v.cells[i] = append(v.cells[i], ext...)
	}
	v.cols += otherCols
}

// growColumns pads every row with empty cells up to n columns.
func (v *Vec) growColumns(n int) {
	for i := range v.cells {
		for len(v.cells[i]) < n {
			v.cells[i] = append(v.cells[i], "")
		}
	}
	v.cols = n
}
