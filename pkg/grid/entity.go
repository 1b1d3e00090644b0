package grid

import "iter"

// Position addresses a single cell of the grid, zero-indexed.
type Position struct {
	Row int
	Col int
}

type entityKind int

const (
	kindGlobal entityKind = iota
	kindColumn
	kindRow
	kindCell
)

// An Entity is a configuration target: the whole grid, one column, one
// row, or a single cell. An Entity referencing a row or column outside
// the grid is valid; it simply matches no positions.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

// Global targets every cell of the grid.
func Global() Entity { return Entity{kind: kindGlobal} }

// Rows targets every cell of row i.
func Rows(i int) Entity { return Entity{kind: kindRow, row: i} }

// Cols targets every cell of column i.
func Cols(i int) Entity { return Entity{kind: kindColumn, col: i} }

// Cell targets the single cell at (row, col).
func Cell(row, col int) Entity { return Entity{kind: kindCell, row: row, col: col} }

// Covers reports whether the entity applies to the given position.
func (e Entity) Covers(p Position) bool {
	switch e.kind {
	case kindGlobal:
		return true
	case kindColumn:
		return p.Col == e.col
	case kindRow:
		return p.Row == e.row
	default:
		return p.Row == e.row && p.Col == e.col
	}
}

// Positions enumerates every position of a rows-by-cols grid the entity
// covers, in row-major order.
func (e Entity) Positions(rows, cols int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		switch e.kind {
		case kindGlobal:
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if !yield(Position{r, c}) {
						return
					}
				}
			}
		case kindColumn:
			if e.col < 0 || e.col >= cols {
				return
			}
			for r := 0; r < rows; r++ {
				if !yield(Position{r, e.col}) {
					return
				}
			}
		case kindRow:
			if e.row < 0 || e.row >= rows {
				return
			}
			for c := 0; c < cols; c++ {
				if !yield(Position{e.row, c}) {
					return
				}
			}
		case kindCell:
			if e.row < 0 || e.row >= rows || e.col < 0 || e.col >= cols {
				return
			}
			yield(Position{e.row, e.col})
		}
	}
}

// entityMap holds a value per configuration target with the lookup
// precedence cell > row > column > global > zero value.
type entityMap[T any] struct {
	cells  map[Position]T
	rows   map[int]T
	cols   map[int]T
	global *T
}

func (m *entityMap[T]) set(e Entity, v T) {
	switch e.kind {
	case kindGlobal:
		m.global = &v
	case kindColumn:
		if m.cols == nil {
			m.cols = map[int]T{}
		}
		m.cols[e.col] = v
	case kindRow:
		if m.rows == nil {
			m.rows = map[int]T{}
		}
		m.rows[e.row] = v
	case kindCell:
		if m.cells == nil {
			m.cells = map[Position]T{}
		}
		m.cells[Position{e.row, e.col}] = v
	}
}

// lookup resolves the most specific configured value for a position,
// falling back to def when nothing is set.
func (m *entityMap[T]) lookup(p Position, def T) T {
	if v, ok := m.cells[p]; ok {
		return v
	}
	if v, ok := m.rows[p.Row]; ok {
		return v
	}
	if v, ok := m.cols[p.Col]; ok {
		return v
	}
	if m.global != nil {
		return *m.global
	}
	return def
}
