package records

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func grid(v *Vec) [][]string {
	out := make([][]string, v.CountRows())
	for i := range out {
		out[i] = make([]string, v.CountColumns())
		for j := range out[i] {
			out[i][j] = v.Get(i, j)
		}
	}
	return out
}

func TestNewVecNormalizesRaggedInput(t *testing.T) {
	v := NewVec([][]string{
		{"a", "b", "c"},
		{"d"},
	})
	if got, want := v.CountRows(), 2; got != want {
		t.Errorf("CountRows() = %d, want %d", got, want)
	}
	if got, want := v.CountColumns(), 3; got != want {
		t.Errorf("CountColumns() = %d, want %d", got, want)
	}
	want := [][]string{
		{"a", "b", "c"},
		{"d", "", ""},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%v", diff)
	}
}

func TestGetOutOfRange(t *testing.T) {
	v := NewVec([][]string{{"a"}})
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if got := v.Get(pos[0], pos[1]); got != "" {
			t.Errorf("Get(%d, %d) = %q, want empty", pos[0], pos[1], got)
		}
	}
}

func TestSetOutOfRange(t *testing.T) {
	v := NewVec([][]string{{"a"}})
	if err := v.Set(1, 0, "x"); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("Set(1, 0) = %v, want ErrRowOutOfRange", err)
	}
	if err := v.Set(0, 1, "x"); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("Set(0, 1) = %v, want ErrColumnOutOfRange", err)
	}
	if err := v.Set(0, 0, "x"); err != nil {
		t.Errorf("Set(0, 0) = %v", err)
	}
	if got := v.Get(0, 0); got != "x" {
		t.Errorf("Get(0, 0) = %q, want %q", got, "x")
	}
}

func TestInsertAndRemove(t *testing.T) {
	v := NewVec([][]string{
		{"a", "b"},
		{"c", "d"},
	})
	if err := v.InsertRow(1); err != nil {
		t.Fatalf("InsertRow(1) = %v", err)
	}
	want := [][]string{
		{"a", "b"},
		{"", ""},
		{"c", "d"},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Fatalf("after InsertRow (-want +got):\n%v", diff)
	}

	if err := v.RemoveRow(1); err != nil {
		t.Fatalf("RemoveRow(1) = %v", err)
	}
	if err := v.RemoveColumn(0); err != nil {
		t.Fatalf("RemoveColumn(0) = %v", err)
	}
	want = [][]string{
		{"b"},
		{"d"},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("after removals (-want +got):\n%v", diff)
	}
}

func TestLimit(t *testing.T) {
	v := NewVec([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	v.LimitRows(2)
	v.LimitColumns(1)
	want := [][]string{{"a"}, {"d"}}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("after limits (-want +got):\n%v", diff)
	}

	v.LimitRows(0)
	if got := v.CountRows(); got != 0 {
		t.Errorf("CountRows() = %d, want 0", got)
	}
	if got := v.CountColumns(); got != 0 {
		t.Errorf("CountColumns() = %d, want 0", got)
	}
}

func TestConcat(t *testing.T) {
	v := NewVec([][]string{{"a", "b"}})
	v.ConcatVertical(NewVec([][]string{{"c"}}))
	want := [][]string{
		{"a", "b"},
		{"c", ""},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Fatalf("after ConcatVertical (-want +got):\n%v", diff)
	}

	v.ConcatHorizontal(NewVec([][]string{{"x"}, {"y"}, {"z"}}))
	want = [][]string{
		{"a", "b", "x"},
		{"c", "", "y"},
		{"", "", "z"},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("after ConcatHorizontal (-want +got):\n%v", diff)
	}
}

func TestRotateComposition(t *testing.T) {
	data := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
	}
	for _, tc := range []struct {
		name  string
		turns []Rotation
	}{
		{"four_lefts", []Rotation{RotateLeft, RotateLeft, RotateLeft, RotateLeft}},
		{"four_rights", []Rotation{RotateRight, RotateRight, RotateRight, RotateRight}},
		{"left_then_right", []Rotation{RotateLeft, RotateRight}},
		{"right_then_left", []Rotation{RotateRight, RotateLeft}},
		{"double_flip", []Rotation{RotateTop, RotateBottom}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVec(data)
			for _, r := range tc.turns {
				v.Rotate(r)
			}
			if diff := cmp.Diff(data, grid(v)); diff != "" {
				t.Errorf("rotations did not compose to identity (-want +got):\n%v", diff)
			}
		})
	}
}

func TestFromSeq(t *testing.T) {
	v := FromSeq(func(yield func([]string) bool) {
		for _, row := range [][]string{{"a", "b"}, {"c"}} {
			if !yield(row) {
				return
			}
		}
	})
	want := [][]string{
		{"a", "b"},
		{"c", ""},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("FromSeq grid mismatch (-want +got):\n%v", diff)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	src := NewVec([][]string{
		{"a", "b"},
		{"c", "d"},
	})
	cp := FromSeq(Rows(src))
	if diff := cmp.Diff(grid(src), grid(cp)); diff != "" {
		t.Errorf("round trip mismatch (-src +copy):\n%v", diff)
	}
}

func TestRowsEarlyStop(t *testing.T) {
	src := NewVec([][]string{{"a"}, {"b"}, {"c"}})
	n := 0
	for range Rows(src) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d rows, want 1", n)
	}
}

func TestRotateLeft(t *testing.T) {
	v := NewVec([][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
	})
	v.Rotate(RotateLeft)
	want := [][]string{
		{"3", "6"},
		{"2", "5"},
		{"1", "4"},
	}
	if diff := cmp.Diff(want, grid(v)); diff != "" {
		t.Errorf("RotateLeft (-want +got):\n%v", diff)
	}
}
