package grid

import "iter"

// CellGeometry is the absolute placement of one visible cell
// Derived on every pass, never stored by the engine
type CellGeometry struct {
	Row    int
	Column int
	Top    float64
	Left   float64
	Height float64
	Width  float64
}

// Bottom returns the exclusive lower edge
func (c CellGeometry) Bottom() float64 {
	return c.Top + c.Height
}

// Right returns the exclusive right edge
func (c CellGeometry) Right() float64 {
	return c.Left + c.Width
}

// Rendered pairs a cell with the content produced for it
type Rendered struct {
	CellGeometry
	Content any
}

// span is the placement of one index along an axis
type span struct {
	index  int
	offset float64
	size   float64
}

// spans resolves offsets for a visible range
// The first offset is a full prefix sum, later ones accumulate within this pass only
func spans(s Sizing, count int, r Range) []span {
	r = r.clip(count)
	if r.Empty() {
		return nil
	}
	out := make([]span, 0, r.Len())
	offset := s.Offset(r.First)
	for i := r.First; i <= r.Last; i++ {
		size := s.Size(i)
		out = append(out, span{index: i, offset: offset, size: size})
		offset += size
	}
	return out
}

// Cells yields geometry of every visible cell, rows outer and columns inner, both ascending
func Cells(cfg Config, st RangeState) iter.Seq[CellGeometry] {
	return func(yield func(CellGeometry) bool) {
		cols := spans(cfg.ColumnWidth, cfg.Columns, st.Columns)
		if len(cols) == 0 {
			return
		}
		for _, row := range spans(cfg.RowHeight, cfg.Rows, st.Rows) {
			for _, col := range cols {
				c := CellGeometry{
					Row:    row.index,
					Column: col.index,
					Top:    row.offset,
					Left:   col.offset,
					Height: row.size,
					Width:  col.size,
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Geometry returns the placement of a single cell regardless of visibility
func Geometry(cfg Config, row, column int) CellGeometry {
	return CellGeometry{
		Row:    row,
		Column: column,
		Top:    cfg.RowHeight.Offset(row),
		Left:   cfg.ColumnWidth.Offset(column),
		Height: cfg.RowHeight.Size(row),
		Width:  cfg.ColumnWidth.Size(column),
	}
}

// Render invokes the content callback for every visible cell in enumeration order
// Cells whose callback returns nil are omitted, other values pass through untouched
func Render(cfg Config, st RangeState) []Rendered {
	content := cfg.Content
	if content == nil {
		return nil
	}
	var out []Rendered
	for c := range Cells(cfg, st) {
		if v := content(c); v != nil {
			out = append(out, Rendered{CellGeometry: c, Content: v})
		}
	}
	return out
}
