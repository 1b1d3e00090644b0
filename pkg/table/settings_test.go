package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jondot/tabled/pkg/grid"
)

func TestTrimVertical(t *testing.T) {
	rows := [][]string{{"\n\nHello\n\n", "x"}}

	t.Run("none", func(t *testing.T) {
		want := strings.Join([]string{
			"+-------+---+",
			"|       | x |",
			"|       |   |",
			"| Hello |   |",
			"|       |   |",
			"|       |   |",
			"+-------+---+",
		}, "\n")
		got := New(rows).String()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%v", diff)
		}
	})

	t.Run("trimmed", func(t *testing.T) {
		want := strings.Join([]string{
			"+-------+---+",
			"| Hello | x |",
			"+-------+---+",
		}, "\n")
		got := New(rows).
			With(Modify(grid.Cell(0, 0), TrimVertical)).
			String()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%v", diff)
		}
	})
}

// Horizontal trim without per-line alignment strips only the common
// indent, so the lines keep their relative offsets. The column keeps
// the width of the untrimmed content.
func TestTrimHorizontalBlockIndent(t *testing.T) {
	want := strings.Join([]string{
		"+-----------+---+",
		"|   line1   | x |",
		"| line2     |   |",
		"+-----------+---+",
	}, "\n")
	got := New([][]string{{"    line1\n  line2", "x"}}).
		With(Modify(grid.Cell(0, 0), TrimHorizontal)).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTrimHorizontalPerLine(t *testing.T) {
	want := strings.Join([]string{
		"+-----------+---+",
		"| line1     | x |",
		"| line2     |   |",
		"+-----------+---+",
	}, "\n")
	got := New([][]string{{"    line1\n  line2", "x"}}).
		With(Modify(grid.Cell(0, 0), TrimHorizontal, AlignPerLine)).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTrimBoth(t *testing.T) {
	want := strings.Join([]string{
		"+-----------+---+",
		"| Hello     | x |",
		"+-----------+---+",
	}, "\n")
	got := New([][]string{{"  \n  Hello  \n ", "x"}}).
		With(Modify(grid.Cell(0, 0), TrimBoth)).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestAlignmentStrategy(t *testing.T) {
	rows := [][]string{
		{"one\nthree five"},
		{"0123456789012"},
	}

	t.Run("per_cell", func(t *testing.T) {
		want := strings.Join([]string{
			"+---------------+",
			"|  one          |",
			"|  three five   |",
			"+---------------+",
			"| 0123456789012 |",
			"+---------------+",
		}, "\n")
		got := New(rows).
			With(Modify(grid.Cell(0, 0), AlignCenter())).
			String()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%v", diff)
		}
	})

	t.Run("per_line", func(t *testing.T) {
		want := strings.Join([]string{
			"+---------------+",
			"|      one      |",
			"|  three five   |",
			"+---------------+",
			"| 0123456789012 |",
			"+---------------+",
		}, "\n")
		got := New(rows).
			With(Modify(grid.Cell(0, 0), AlignCenter(), AlignPerLine)).
			String()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%v", diff)
		}
	})
}
