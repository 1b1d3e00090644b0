package records

import "iter"

// FromSeq drains a row sequence into a Vec. Rows are normalized to the
// widest row seen, so ragged producers are safe.
func FromSeq(rows iter.Seq[[]string]) *Vec {
	var data [][]string
	for row := range rows {
		data = append(data, row)
	}
	return NewVec(data)
}

// Rows enumerates the records row by row. Each yielded slice is freshly
// allocated and safe to retain.
func Rows(rec Records) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		rows, cols := rec.CountRows(), rec.CountColumns()
		for r := 0; r < rows; r++ {
			row := make([]string, cols)
			for c := 0; c < cols; c++ {
				row[c] = rec.Get(r, c)
			}
			if !yield(row) {
				return
			}
		}
	}
}
