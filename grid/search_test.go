package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bruteRange scans every index and keeps those overlapping the window
func bruteRange(s Sizing, count int, viewport, offset float64) Range {
	r := emptyRange
	found := false
	for i := 0; i < count; i++ {
		top := s.Offset(i)
		size := s.Size(i)
		if size <= 0 {
			continue
		}
		if top+size > offset && top < offset+viewport {
			if !found {
				r.First = i
				found = true
			}
			r.Last = i
		}
	}
	return r
}

func TestSearchRange(t *testing.T) {
	sizes := []float64{10, 20, 30, 40}
	s := PerIndex(func(i int) float64 { return sizes[i] })

	tests := []struct {
		name     string
		offset   float64
		viewport float64
		want     Range
	}{
		{"Top", 0, 25, Range{0, 1}},
		{"Middle", 15, 30, Range{1, 2}},
		{"Boundary start", 30, 10, Range{2, 2}},
		{"Boundary end", 0, 30, Range{0, 1}},
		{"Bottom", 60, 40, Range{3, 3}},
		{"Whole axis", 0, 1000, Range{0, 3}},
		{"Past end", 100, 10, emptyRange},
		{"Zero viewport", 0, 0, emptyRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchRange(s, len(sizes), tt.viewport, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("range mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchRangeMatchesBruteForce(t *testing.T) {
	s := PerIndex(func(i int) float64 { return float64((i*7)%5 + 1) })
	const count = 300
	extent := s.Extent(count)

	for _, viewport := range []float64{1, 4, 17, 50} {
		for offset := 0.0; offset+viewport <= extent; offset += 3.5 {
			got := searchRange(s, count, viewport, offset)
			want := bruteRange(s, count, viewport, offset)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("viewport %v offset %v (-want +got):\n%s", viewport, offset, diff)
			}
		}
	}
}

func TestSearchRangeSkipsZeroSizes(t *testing.T) {
	sizes := []float64{0, 0, 5, 0, 5}
	s := PerIndex(func(i int) float64 { return sizes[i] })

	got := searchRange(s, len(sizes), 5, 0)
	if diff := cmp.Diff(Range{2, 2}, got); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchPolicyFollowsScroll(t *testing.T) {
	rowH := func(i int) float64 {
		if i%10 == 0 {
			return 3
		}
		return 1
	}
	cfg := Normalize(Options{
		NumRows:         1000,
		NumColumns:      20,
		RowHeight:       rowH,
		ColumnWidth:     8,
		ContainerHeight: 10,
		ContainerWidth:  40,
		PerIndex:        PerIndexSearch,
	})

	st := Recompute(cfg)
	if diff := cmp.Diff(Range{0, 7}, st.Rows); diff != "" {
		t.Fatalf("initial rows (-want +got):\n%s", diff)
	}

	// Rows 0..9 span 12 units, row 10 starts at 12
	st = Scroll(cfg, st, ScrollPosition{Top: 12, Left: 16})
	if diff := cmp.Diff(Range{10, 17}, st.Rows); diff != "" {
		t.Errorf("rows after scroll (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Range{2, 7}, st.Columns); diff != "" {
		t.Errorf("uniform columns still follow scroll (-want +got):\n%s", diff)
	}
}

func TestSearchPolicyFirstNotBeyondLast(t *testing.T) {
	cfg := Normalize(Options{
		NumRows:         500,
		NumColumns:      1,
		RowHeight:       SizeFunc(func(i int) float64 { return float64(1 + i%3) }),
		ColumnWidth:     1,
		ContainerHeight: 9,
		ContainerWidth:  1,
		PerIndex:        PerIndexSearch,
	})
	_, height := cfg.Extent()
	st := Recompute(cfg)
	for top := 0.0; top <= height-9; top += 1.5 {
		st = Scroll(cfg, st, ScrollPosition{Top: top})
		if st.Rows.Empty() || st.Rows.Last >= 500 {
			t.Fatalf("top %v: bad range %+v", top, st.Rows)
		}
	}
}

func TestIndexAt(t *testing.T) {
	per := PerIndex(func(i int) float64 { return float64(i + 1) })
	tests := []struct {
		name     string
		sizing   Sizing
		position float64
		want     int
	}{
		{"Uniform start", Uniform(10), 0, 0},
		{"Uniform inside", Uniform(10), 35, 3},
		{"Uniform past end", Uniform(10), 100, -1},
		{"Uniform zero size", Uniform(0), 5, -1},
		{"PerIndex start", per, 0, 0},
		{"PerIndex edge", per, 1, 1},
		{"PerIndex inside", per, 7, 3},
		{"PerIndex past end", per, 55, -1},
		{"Negative", per, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sizing.IndexAt(10, tt.position); got != tt.want {
				t.Errorf("Expected index %d, got %d", tt.want, got)
			}
		})
	}
}
