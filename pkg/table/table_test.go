package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

var playerRows = [][]string{
	{"20", "Lebron James", "MVP"},
	{"33", "Larry Bird", "Legend"},
}

func TestTableDefault(t *testing.T) {
	want := strings.Join([]string{
		"+----+--------------+--------+",
		"| 20 | Lebron James | MVP    |",
		"+----+--------------+--------+",
		"| 33 | Larry Bird   | Legend |",
		"+----+--------------+--------+",
	}, "\n")
	got := New(playerRows).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := New(nil).String(); got != "" {
		t.Errorf("String() = %q, want empty string", got)
	}
	if got := New([][]string{{}, {}}).String(); got != "" {
		t.Errorf("String() = %q, want empty string", got)
	}
}

func TestTableColumnWidth(t *testing.T) {
	want := strings.Join([]string{
		"+----+----+----+",
		"| 20 | Le | MV |",
		"+----+----+----+",
		"| 33 | La | Le |",
		"+----+----+----+",
	}, "\n")
	got := New(playerRows).With(ColumnWidth(4)).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

// Width zero keeps the frame: columns bottom out at their padding.
func TestTableColumnWidthZero(t *testing.T) {
	want := strings.Join([]string{
		"+--+--+--+",
		"|  |  |  |",
		"+--+--+--+",
		"|  |  |  |",
		"+--+--+--+",
	}, "\n")
	got := New(playerRows).With(ColumnWidth(0)).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableLimitToNothing(t *testing.T) {
	if got := New(playerRows).With(LimitRows(0)).String(); got != "" {
		t.Errorf("LimitRows(0) String() = %q, want empty string", got)
	}
	if got := New(playerRows).With(LimitColumns(0)).String(); got != "" {
		t.Errorf("LimitColumns(0) String() = %q, want empty string", got)
	}
}

func TestTableLimits(t *testing.T) {
	want := strings.Join([]string{
		"+----+--------------+",
		"| 20 | Lebron James |",
		"+----+--------------+",
	}, "\n")
	got := New(playerRows).With(LimitRows(1), LimitColumns(2)).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableRowHeight(t *testing.T) {
	want := strings.Join([]string{
		"+----+--------------+--------+",
		"| 20 | Lebron James | MVP    |",
		"|    |              |        |",
		"+----+--------------+--------+",
		"| 33 | Larry Bird   | Legend |",
		"|    |              |        |",
		"+----+--------------+--------+",
	}, "\n")
	got := New(playerRows).With(RowHeight(2)).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableModifyAlignment(t *testing.T) {
	want := strings.Join([]string{
		"+----+--------------+--------+",
		"| 20 | Lebron James |    MVP |",
		"+----+--------------+--------+",
		"| 33 | Larry Bird   | Legend |",
		"+----+--------------+--------+",
	}, "\n")
	got := New(playerRows).
		With(Modify(grid.Cell(0, 2), AlignRight())).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableModifySpan(t *testing.T) {
	want := strings.Join([]string{
		"+---+---+---+",
		"| one       |",
		"+---+---+---+",
		"| 1 | 2 | 3 |",
		"+---+---+---+",
	}, "\n")
	got := New([][]string{
		{"one", "two", "three"},
		{"1", "2", "3"},
	}).
		With(Modify(grid.Cell(0, 0), SpanColumn(3))).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableModifyFormat(t *testing.T) {
	want := strings.Join([]string{
		"+-----+---+",
		"| ABC | D |",
		"+-----+---+",
		"| e   | f |",
		"+-----+---+",
	}, "\n")
	got := New([][]string{
		{"abc", "d"},
		{"e", "f"},
	}).
		With(Modify(grid.Rows(0), Format(strings.ToUpper))).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTablePaddingSetting(t *testing.T) {
	want := strings.Join([]string{
		"+----+----+",
		"|  a |  b |",
		"+----+----+",
	}, "\n")
	got := New([][]string{{"a", "b"}}).
		With(NewPadding(2, 1, 0, 0)).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableMargin(t *testing.T) {
	want := strings.Join([]string{
		"**********",
		"*+---+---+",
		"*| a | b |",
		"*+---+---+",
	}, "\n")
	got := New([][]string{{"a", "b"}}).
		With(NewMargin(1, 0, 1, 0).Fill('*', '*', '*', '*')).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableString_Rerenders(t *testing.T) {
	tbl := New([][]string{{"a"}})
	first := tbl.String()
	tbl.With(Modify(grid.Cell(0, 0), Format(func(string) string { return "bbb" })))
	second := tbl.String()
	if first == second {
		t.Error("String() did not reflect a mutation applied after the first render")
	}
	if !strings.Contains(second, "bbb") {
		t.Errorf("second render missing new content:\n%v", second)
	}
}

func TestTableOptionFunc(t *testing.T) {
	want := strings.Join([]string{
		"+----+--------------+--------+",
		"| 20 | Lebron James |    MVP |",
		"+----+--------------+--------+",
		"| 33 |   Larry Bird | Legend |",
		"+----+--------------+--------+",
	}, "\n")
	got := New(playerRows).
		With(OptionFunc(func(_ *records.Vec, cfg *grid.Config, _ *Dimension) {
			cfg.SetAlignmentHorizontal(grid.Global(), grid.AlignRight)
		})).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}

func TestTableFromRecords(t *testing.T) {
	src := New(playerRows)
	cp := FromRecords(src.Records())
	if diff := cmp.Diff(src.String(), cp.String()); diff != "" {
		t.Errorf("copy renders differently (-src +copy):\n%v", diff)
	}
}
