package source

import (
	"context"
	"strconv"

	"github.com/lixenwraith/vgrid/grid"
)

// Coords is a synthetic source labelling every cell with its "row:column" coordinates
type Coords struct {
	rows, cols int
	width      float64
}

// NewCoords creates a coordinate source, non-positive width defaults to 12
func NewCoords(rows, cols int, width float64) *Coords {
	if !(width > 0) {
		width = 12
	}
	return &Coords{rows: max(rows, 0), cols: max(cols, 0), width: width}
}

func (c *Coords) Rows() int    { return c.rows }
func (c *Coords) Columns() int { return c.cols }

// Header returns the spreadsheet-style column name
func (c *Coords) Header(col int) string {
	return ColumnName(col)
}

func (c *Coords) ColumnWidth(int) float64 { return c.width }

// Cell returns the coordinate label, nil outside the grid
func (c *Coords) Cell(row, col int) any {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return nil
	}
	return strconv.Itoa(row) + ":" + strconv.Itoa(col)
}

// Load is a no-op, labels are computed on demand
func (c *Coords) Load(context.Context, grid.Range, grid.Range) error { return nil }

func (c *Coords) Close() error { return nil }

// ColumnName returns A..Z, AA..AZ, BA.. for zero-based col, "" for negative col
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}
