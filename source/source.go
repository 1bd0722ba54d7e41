package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/status"
)

var (
	// ErrUnknownKind is returned by Open for an unsupported source kind
	ErrUnknownKind = errors.New("unknown source kind")
	// ErrNoTable is returned when the requested table does not exist or the database has none
	ErrNoTable = errors.New("no such table")
)

// Source supplies grid shape, column metadata and cell content
// Cell returns nil for cells outside the grid or not loaded yet
type Source interface {
	Rows() int
	Columns() int
	Header(col int) string
	ColumnWidth(col int) float64
	Cell(row, col int) any
	// Load makes the cells of the given ranges available to Cell
	Load(ctx context.Context, rows, cols grid.Range) error
	Close() error
}

// Kinds accepted by Open
const (
	KindCoords = "coords"
	KindSQLite = "sqlite"
)

// Spec selects and configures a source
type Spec struct {
	Kind  string // "coords" (default) or "sqlite"
	Path  string // sqlite database file
	Table string // sqlite table, "" picks the first table by name

	PageSize int              // sqlite rows per query
	Metrics  *status.Registry // sqlite page cache metrics, may be nil

	// Coords shape
	Rows        int
	Columns     int
	ColumnWidth float64
}

// Open creates the source named by spec.Kind
func Open(ctx context.Context, spec Spec, logger *slog.Logger) (Source, error) {
	switch spec.Kind {
	case "", KindCoords:
		return NewCoords(spec.Rows, spec.Columns, spec.ColumnWidth), nil
	case KindSQLite:
		s, err := OpenSQLite(ctx, SQLiteConfig{
			Path:     spec.Path,
			Table:    spec.Table,
			PageSize: spec.PageSize,
			Metrics:  spec.Metrics,
		}, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

// Content adapts a source to the engine's content callback
func Content(src Source) grid.ContentFunc {
	return func(c grid.CellGeometry) any {
		return src.Cell(c.Row, c.Column)
	}
}

// Options builds engine options from the source shape with one-cell rows
// Column widths become a PerIndex rule; container sizes are left to the host
func Options(src Source, policy grid.PerIndexPolicy) grid.Options {
	return grid.Options{
		NumRows:     src.Rows(),
		NumColumns:  src.Columns(),
		RowHeight:   1,
		ColumnWidth: grid.SizeFunc(src.ColumnWidth),
		Children:    Content(src),
		PerIndex:    policy,
	}
}
