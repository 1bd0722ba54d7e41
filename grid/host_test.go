package grid

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWindowScrollAndUpdate(t *testing.T) {
	opts := Options{
		NumRows:         100,
		NumColumns:      1,
		RowHeight:       20,
		ColumnWidth:     100,
		ContainerHeight: 100,
		ContainerWidth:  100,
		Children:        ContentFunc(func(c CellGeometry) any { return c.Row }),
	}
	w := NewWindow(opts, nil)

	if diff := cmp.Diff(Range{0, 4}, w.State().Rows); diff != "" {
		t.Fatalf("initial rows (-want +got):\n%s", diff)
	}
	if !w.ScrollTo(ScrollPosition{Top: 40}) {
		t.Fatal("Expected scroll to change the range")
	}
	if w.ScrollTo(ScrollPosition{Top: 41}) {
		t.Error("Expected sub-row scroll to keep the range")
	}

	// Taller viewport keeps the scroll position
	opts.ContainerHeight = 200
	w.Update(opts)
	if diff := cmp.Diff(Range{2, 12}, w.State().Rows); diff != "" {
		t.Errorf("rows after resize (-want +got):\n%s", diff)
	}

	out := w.Render()
	if len(out) != 11 {
		t.Fatalf("Expected 11 rendered rows, got %d", len(out))
	}
	if out[0].Content != 2 {
		t.Errorf("Expected first content 2, got %v", out[0].Content)
	}

	width, height := w.Extent()
	if width != 100 || height != 2000 {
		t.Errorf("Expected extent 100x2000, got %vx%v", width, height)
	}
}

func TestWindowLogsFallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewWindow(Options{NumRows: "lots", NumColumns: 2, RowHeight: 1, ColumnWidth: 1,
		ContainerHeight: 1, ContainerWidth: 1, Children: emptyContent}, logger)

	logs := buf.String()
	if !strings.Contains(logs, "option fallback") || !strings.Contains(logs, "option=numRows") {
		t.Errorf("Expected numRows fallback in log, got:\n%s", logs)
	}
	if !strings.Contains(logs, "grid recomputed") {
		t.Errorf("Expected recompute entry, got:\n%s", logs)
	}
}

func TestWindowVisibleCellsCount(t *testing.T) {
	w := NewWindow(Options{
		NumRows:         1_000_000,
		NumColumns:      1_000,
		RowHeight:       1,
		ColumnWidth:     10,
		ContainerHeight: 40,
		ContainerWidth:  120,
	}, nil)
	w.ScrollTo(ScrollPosition{Top: 500_000, Left: 4_000})

	n := 0
	for range w.VisibleCells() {
		n++
	}
	if n != w.State().Cells() {
		t.Errorf("Expected %d cells, got %d", w.State().Cells(), n)
	}
	if n > 41*13 {
		t.Errorf("Expected viewport-sized output, got %d cells", n)
	}
}
