package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jondot/tabled/pkg/grid"
)

func TestStyles(t *testing.T) {
	data := [][]string{
		{"a", "b"},
		{"c", "d"},
	}
	for _, tc := range []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "ascii",
			style: StyleASCII(),
			want: strings.Join([]string{
				"+---+---+",
				"| a | b |",
				"+---+---+",
				"| c | d |",
				"+---+---+",
			}, "\n"),
		},
		{
			name:  "modern",
			style: StyleModern(),
			want: strings.Join([]string{
				"┌───┬───┐",
				"│ a │ b │",
				"├───┼───┤",
				"│ c │ d │",
				"└───┴───┘",
			}, "\n"),
		},
		{
			name:  "rounded",
			style: StyleRounded(),
			want: strings.Join([]string{
				"╭───┬───╮",
				"│ a │ b │",
				"├───┼───┤",
				"│ c │ d │",
				"╰───┴───╯",
			}, "\n"),
		},
		{
			name:  "markdown",
			style: StyleMarkdown(),
			want: strings.Join([]string{
				"| a | b |",
				"| c | d |",
			}, "\n"),
		},
		{
			name:  "psql",
			style: StylePsql(),
			want: strings.Join([]string{
				" a | b ",
				" c | d ",
			}, "\n"),
		},
		{
			name:  "blank",
			style: StyleBlank(),
			want: strings.Join([]string{
				" a   b ",
				" c   d ",
			}, "\n"),
		},
		{
			name:  "empty",
			style: StyleEmpty(),
			want: strings.Join([]string{
				" a  b ",
				" c  d ",
			}, "\n"),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := New(data).With(tc.style).String()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%v", diff)
			}
		})
	}
}

// A markdown header divider is drawn with per-cell border overrides under
// the first row.
func TestStyleMarkdownHeaderDivider(t *testing.T) {
	want := strings.Join([]string{
		"| a | b |",
		"|---|---|",
		"| c | d |",
	}, "\n")
	got := New([][]string{
		{"a", "b"},
		{"c", "d"},
	}).
		With(
			StyleMarkdown(),
			Modify(grid.Rows(0), CellBorder{Bottom: '-', BottomLeft: '|', BottomRight: '|'}),
		).
		String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%v", diff)
	}
}
