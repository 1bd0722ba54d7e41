package grid

import (
	"math"
	"testing"
)

func TestNormalizeNumbers(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		want     int
		fallback bool
	}{
		{"int", 42, 42, false},
		{"int64", int64(7), 7, false},
		{"uint8", uint8(3), 3, false},
		{"float truncates", 9.9, 9, false},
		{"float32", float32(2), 2, false},
		{"zero", 0, 0, false},
		{"negative", -4, 0, true},
		{"string", "100", 0, true},
		{"nil", nil, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"Inf", math.Inf(1), 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Normalize(Options{NumRows: tt.value, NumColumns: 1, RowHeight: 1, ColumnWidth: 1,
				ContainerHeight: 1, ContainerWidth: 1, Children: emptyContent})
			if cfg.Rows != tt.want {
				t.Errorf("Expected rows %d, got %d", tt.want, cfg.Rows)
			}
			gotFallback := len(cfg.Fallbacks) == 1 && cfg.Fallbacks[0].Option == "numRows"
			if gotFallback != tt.fallback {
				t.Errorf("Expected fallback %v, got %+v", tt.fallback, cfg.Fallbacks)
			}
		})
	}
}

func TestNormalizeSizingShapes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  SizingKind
		size5 float64
	}{
		{"number", 12, SizingUniform, 12},
		{"float", 1.5, SizingUniform, 1.5},
		{"negative", -5, SizingUniform, 0},
		{"typed SizeFunc", SizeFunc(func(i int) float64 { return float64(i) }), SizingPerIndex, 5},
		{"plain float func", func(i int) float64 { return 2 * float64(i) }, SizingPerIndex, 10},
		{"int func", func(i int) int { return i + 1 }, SizingPerIndex, 6},
		{"Sizing value", PerIndex(func(int) float64 { return 4 }), SizingPerIndex, 4},
		{"string", "wide", SizingUniform, 0},
		{"nil", nil, SizingUniform, 0},
		{"nil func", SizeFunc(nil), SizingUniform, 0},
		{"wrong func", func(string) float64 { return 1 }, SizingUniform, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Normalize(Options{RowHeight: tt.value})
			if cfg.RowHeight.Kind() != tt.kind {
				t.Errorf("Expected %v sizing, got %v", tt.kind, cfg.RowHeight.Kind())
			}
			if got := cfg.RowHeight.Size(5); got != tt.size5 {
				t.Errorf("Expected size %v at index 5, got %v", tt.size5, got)
			}
		})
	}
}

func TestNormalizeNegativeSizeFallsBack(t *testing.T) {
	cfg := Normalize(Options{NumRows: 10, NumColumns: 10, RowHeight: -5, ColumnWidth: 3,
		ContainerHeight: 20, ContainerWidth: 20, Children: emptyContent})

	if len(cfg.Fallbacks) != 1 || cfg.Fallbacks[0].Option != "rowHeight" {
		t.Errorf("Expected rowHeight fallback, got %+v", cfg.Fallbacks)
	}
	if w, h := cfg.Extent(); w != 30 || h != 0 {
		t.Errorf("Expected extent 30x0, got %vx%v", w, h)
	}
	if st := Recompute(cfg); !st.Rows.Empty() || st.Cells() != 0 {
		t.Errorf("Expected no visible rows, got %+v", st.Rows)
	}
}

func TestNormalizeMalformedRendersNothing(t *testing.T) {
	cases := []Options{
		{NumRows: "a", NumColumns: 10, RowHeight: 1, ColumnWidth: 1, ContainerHeight: 10, ContainerWidth: 10},
		{NumRows: 10, NumColumns: []int{1}, RowHeight: 1, ColumnWidth: 1, ContainerHeight: 10, ContainerWidth: 10},
		{NumRows: 10, NumColumns: 10, RowHeight: 1, ColumnWidth: 1, ContainerHeight: "tall", ContainerWidth: 10},
		{NumRows: 10, NumColumns: 10, RowHeight: 1, ColumnWidth: 1, ContainerHeight: 10, ContainerWidth: struct{}{}},
		{NumRows: 10, NumColumns: 10, RowHeight: map[string]int{}, ColumnWidth: 1, ContainerHeight: 10, ContainerWidth: 10},
	}

	for i, opts := range cases {
		opts.Children = ContentFunc(func(CellGeometry) any { return "cell" })
		cfg := Normalize(opts)
		st := Scroll(cfg, Recompute(cfg), ScrollPosition{Top: 3, Left: 3})
		if out := Render(cfg, st); len(out) != 0 {
			t.Errorf("case %d: expected zero cells, got %d", i, len(out))
		}
		if len(cfg.Fallbacks) == 0 {
			t.Errorf("case %d: expected a recorded fallback", i)
		}
	}
}

func TestNormalizeZeroOptions(t *testing.T) {
	cfg := Normalize(Options{})
	if cfg.Rows != 0 || cfg.Columns != 0 {
		t.Errorf("Expected empty grid, got %dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.Content == nil {
		t.Fatal("Expected no-op content function")
	}
	if v := cfg.Content(CellGeometry{}); v != nil {
		t.Errorf("Expected nil content, got %v", v)
	}
	if len(cfg.Fallbacks) != 7 {
		t.Errorf("Expected 7 fallbacks, got %d", len(cfg.Fallbacks))
	}
}

func TestParsePerIndexPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want PerIndexPolicy
		ok   bool
	}{
		{"", PerIndexFrozen, true},
		{"frozen", PerIndexFrozen, true},
		{"search", PerIndexSearch, true},
		{"binary", PerIndexFrozen, false},
	}
	for _, tt := range tests {
		got, ok := ParsePerIndexPolicy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePerIndexPolicy(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
