package grid

import "math"

// ContentFunc produces content for one visible cell, nil means an empty cell
type ContentFunc func(c CellGeometry) any

// PerIndexPolicy selects how visible ranges are found on PerIndex axes
type PerIndexPolicy uint8

const (
	// PerIndexFrozen estimates the range from the size of index 0 and ignores scrolling
	// while any axis is PerIndex
	PerIndexFrozen PerIndexPolicy = iota
	// PerIndexSearch walks the prefix sum to find the indices intersecting the viewport
	PerIndexSearch
)

func (p PerIndexPolicy) String() string {
	switch p {
	case PerIndexFrozen:
		return "frozen"
	case PerIndexSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ParsePerIndexPolicy maps a config string to a policy, unknown names yield PerIndexFrozen
func ParsePerIndexPolicy(s string) (PerIndexPolicy, bool) {
	switch s {
	case "frozen", "":
		return PerIndexFrozen, true
	case "search":
		return PerIndexSearch, true
	default:
		return PerIndexFrozen, false
	}
}

// Options is the loosely typed configuration surface
// Fields accept whatever the caller has (decoded config values, typed numbers, functions)
// and are coerced by Normalize
type Options struct {
	NumRows         any // non-negative number
	NumColumns      any // non-negative number
	RowHeight       any // number -> Uniform, func(int) number -> PerIndex, Sizing as is
	ColumnWidth     any // same shapes as RowHeight
	ContainerHeight any // viewport height
	ContainerWidth  any // viewport width
	Children        any // ContentFunc or func(CellGeometry) any
	PerIndex        PerIndexPolicy
}

// Viewport is the visible window onto the grid
type Viewport struct {
	Width  float64
	Height float64
}

// Fallback records an option that was replaced by its safe default
type Fallback struct {
	Option string
	Value  any
}

// Config is the normalized form of Options, every field is valid
type Config struct {
	Rows        int
	Columns     int
	RowHeight   Sizing
	ColumnWidth Sizing
	Viewport    Viewport
	Content     ContentFunc
	PerIndex    PerIndexPolicy

	// Fallbacks lists options that did not have a usable shape
	Fallbacks []Fallback
}

// Normalize coerces Options into a Config, it never fails
func Normalize(opts Options) Config {
	n := normalizer{}
	cfg := Config{
		Rows:        n.count("numRows", opts.NumRows),
		Columns:     n.count("numColumns", opts.NumColumns),
		RowHeight:   n.sizing("rowHeight", opts.RowHeight),
		ColumnWidth: n.sizing("columnWidth", opts.ColumnWidth),
		Viewport: Viewport{
			Width:  n.extent("containerWidth", opts.ContainerWidth),
			Height: n.extent("containerHeight", opts.ContainerHeight),
		},
		Content:  n.content("children", opts.Children),
		PerIndex: opts.PerIndex,
	}
	cfg.Fallbacks = n.fallbacks
	return cfg
}

// HasPerIndex reports whether either axis uses PerIndex sizing
func (c Config) HasPerIndex() bool {
	return !c.RowHeight.IsUniform() || !c.ColumnWidth.IsUniform()
}

// Extent returns the total scrollable width and height
func (c Config) Extent() (width, height float64) {
	return c.ColumnWidth.Extent(c.Columns), c.RowHeight.Extent(c.Rows)
}

type normalizer struct {
	fallbacks []Fallback
}

func (n *normalizer) fallback(option string, v any) {
	n.fallbacks = append(n.fallbacks, Fallback{Option: option, Value: v})
}

func (n *normalizer) count(option string, v any) int {
	f, ok := toNumber(v)
	if !ok || f < 0 {
		n.fallback(option, v)
		return 0
	}
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

func (n *normalizer) extent(option string, v any) float64 {
	f, ok := toNumber(v)
	if !ok || f < 0 {
		n.fallback(option, v)
		return 0
	}
	return f
}

func (n *normalizer) sizing(option string, v any) Sizing {
	switch s := v.(type) {
	case Sizing:
		return s
	case SizeFunc:
		if s != nil {
			return PerIndex(s)
		}
	case func(int) float64:
		if s != nil {
			return PerIndex(s)
		}
	case func(int) int:
		if s != nil {
			return PerIndex(func(i int) float64 { return float64(s(i)) })
		}
	default:
		if f, ok := toNumber(v); ok && f >= 0 {
			return Uniform(f)
		}
	}
	n.fallback(option, v)
	return Uniform(0)
}

func (n *normalizer) content(option string, v any) ContentFunc {
	switch f := v.(type) {
	case ContentFunc:
		if f != nil {
			return f
		}
	case func(CellGeometry) any:
		if f != nil {
			return f
		}
	}
	n.fallback(option, v)
	return emptyContent
}

func emptyContent(CellGeometry) any { return nil }

// toNumber accepts Go numeric kinds, NaN and infinities are rejected
func toNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
