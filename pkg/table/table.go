// Package table is the high-level surface of the layout engine: a Table
// owns a mutable record source and a grid configuration, and applies an
// ordered pipeline of settings before estimating dimensions and
// rendering.
package table

import (
	"github.com/jondot/tabled/pkg/grid"
	"github.com/jondot/tabled/pkg/records"
)

// Dimension carries width/height overrides produced by adjusters. Nil
// slices mean "estimate from content at render time".
type Dimension struct {
	Widths  []int
	Heights []int
}

// An Option is one step of the settings pipeline. It may mutate the
// record source, the configuration, and the dimension overrides, and
// must fully apply before the next step runs.
type Option interface {
	ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension)
}

// A CellOption is a setting applied to the cells a target entity covers.
type CellOption interface {
	ApplyCell(rec *records.Vec, cfg *grid.Config, target grid.Entity)
}

// Table combines a record source with a configuration and renders them.
type Table struct {
	rec  *records.Vec
	cfg  *grid.Config
	dims Dimension
}

// New builds a Table over row-major string data with the default
// configuration: ASCII borders, one space of horizontal padding, left
// and top alignment.
func New(data [][]string) *Table {
	return &Table{
		rec: records.NewVec(data),
		cfg: grid.NewConfig(),
	}
}

// FromRecords builds a Table by copying an arbitrary record source.
func FromRecords(src records.Records) *Table {
	rows, cols := src.CountRows(), src.CountColumns()
	data := make([][]string, rows)
	for i := 0; i < rows; i++ {
		data[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			data[i][j] = src.Get(i, j)
		}
	}
	return New(data)
}

// With applies the options strictly in the order given and returns the
// table for chaining.
func (t *Table) With(opts ...Option) *Table {
	for _, opt := range opts {
		opt.ApplyTable(t.rec, t.cfg, &t.dims)
	}
	return t
}

// Records exposes the table's record source.
func (t *Table) Records() records.Records { return t.rec }

// Config exposes the table's grid configuration.
func (t *Table) Config() *grid.Config { return t.cfg }

// String renders the table. Dimensions not pinned by an adjuster are
// estimated fresh on every call, so String reflects all mutations made
// since the last render. An empty grid renders as the empty string.
func (t *Table) String() string {
	if t.rec.CountRows() == 0 || t.rec.CountColumns() == 0 {
		return ""
	}
	widths := t.dims.Widths
	if widths == nil {
		widths = grid.EstimateWidths(t.rec, t.cfg)
	}
	heights := t.dims.Heights
	if heights == nil {
		heights = grid.EstimateHeights(t.rec, t.cfg)
	}
	return grid.Render(t.rec, t.cfg, widths, heights)
}

// Modify targets cell options at an entity: the whole grid, a row, a
// column, or a single cell.
func Modify(target grid.Entity, opts ...CellOption) Option {
	return modify{target: target, opts: opts}
}

type modify struct {
	target grid.Entity
	opts   []CellOption
}

func (m modify) ApplyTable(rec *records.Vec, cfg *grid.Config, _ *Dimension) {
	for _, opt := range m.opts {
		opt.ApplyCell(rec, cfg, m.target)
	}
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(rec *records.Vec, cfg *grid.Config, dims *Dimension)

// ApplyTable implements Option.
func (f OptionFunc) ApplyTable(rec *records.Vec, cfg *grid.Config, dims *Dimension) {
	f(rec, cfg, dims)
}
