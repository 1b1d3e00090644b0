package records

// A Rotation is a quarter or half turn applied to the whole grid.
type Rotation int

const (
	// RotateLeft turns the grid a quarter turn counter-clockwise.
	RotateLeft Rotation = iota
	// RotateRight turns the grid a quarter turn clockwise.
	RotateRight
	// RotateTop flips the grid upside down (half turn of the rows).
	RotateTop
	// RotateBottom is the same transform as RotateTop.
	RotateBottom
)

// Rotate applies the rotation in place. Four quarter turns in the same
// direction restore the original grid, as does a left turn after a right
// turn or a double row flip.
func (v *Vec) Rotate(r Rotation) {
	switch r {
	case RotateLeft:
		v.cells = transpose(v.cells, v.cols)
		reverseRows(v.cells)
		v.cols = colsOf(v.cells)
	case RotateRight:
		reverseRows(v.cells)
		v.cells = transpose(v.cells, v.cols)
		v.cols = colsOf(v.cells)
	case RotateTop, RotateBottom:
		reverseRows(v.cells)
	}
}

func transpose(cells [][]string, cols int) [][]string {
	out := make([][]string, cols)
	for j := range out {
		out[j] = make([]string, len(cells))
		for i := range cells {
			out[j][i] = cells[i][j]
		}
	}
	return out
}

func reverseRows(cells [][]string) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

func colsOf(cells [][]string) int {
	if len(cells) == 0 {
		return 0
	}
	return len(cells[0])
}
