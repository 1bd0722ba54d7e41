package grid

// SizeFunc returns the extent of the row or column at index
type SizeFunc func(index int) float64

// SizingKind identifies the active variant of a Sizing rule
type SizingKind uint8

const (
	SizingUniform  SizingKind = iota // every index has the same extent
	SizingPerIndex                   // extent looked up per index
)

func (k SizingKind) String() string {
	switch k {
	case SizingUniform:
		return "uniform"
	case SizingPerIndex:
		return "per-index"
	default:
		return "unknown"
	}
}

// Sizing is the per-axis sizing rule, either Uniform or PerIndex
// The zero value is Uniform(0)
type Sizing struct {
	kind   SizingKind
	size   float64
	sizeOf SizeFunc
}

// Uniform returns a rule where every index has the given extent
func Uniform(size float64) Sizing {
	return Sizing{kind: SizingUniform, size: size}
}

// PerIndex returns a rule that queries sizeOf for every index
// A nil function degrades to Uniform(0)
func PerIndex(sizeOf SizeFunc) Sizing {
	if sizeOf == nil {
		return Uniform(0)
	}
	return Sizing{kind: SizingPerIndex, sizeOf: sizeOf}
}

// Kind returns the active variant
func (s Sizing) Kind() SizingKind {
	return s.kind
}

// IsUniform reports whether every index shares one extent
func (s Sizing) IsUniform() bool {
	return s.kind == SizingUniform
}

// UniformSize returns the shared extent, 0 for PerIndex rules
func (s Sizing) UniformSize() float64 {
	if s.kind != SizingUniform {
		return 0
	}
	return s.uniform()
}

// --- Extent resolution ---

// Extent returns the total size of count indices
// PerIndex sums sizeOf over [0, count) on every call
func (s Sizing) Extent(count int) float64 {
	if count <= 0 {
		return 0
	}
	if s.kind == SizingUniform {
		return float64(count) * s.uniform()
	}
	var total float64
	for k := 0; k < count; k++ {
		total += s.sizeOf(k)
	}
	return total
}

// Offset returns the start position of index i
// PerIndex sums sizeOf over [0, i) on every call
func (s Sizing) Offset(i int) float64 {
	if i <= 0 {
		return 0
	}
	if s.kind == SizingUniform {
		return float64(i) * s.uniform()
	}
	var offset float64
	for k := 0; k < i; k++ {
		offset += s.sizeOf(k)
	}
	return offset
}

// uniform returns the shared extent, a non-positive or NaN size counts as 0
func (s Sizing) uniform() float64 {
	if !(s.size > 0) {
		return 0
	}
	return s.size
}

// Size returns the extent of index i
func (s Sizing) Size(i int) float64 {
	if s.kind == SizingUniform {
		return s.uniform()
	}
	return s.sizeOf(i)
}

// Representative returns the scalar used by the closed-form range formula
// PerIndex rules use the size of index 0, or 0 for an empty axis
func (s Sizing) Representative(count int) float64 {
	if s.kind == SizingUniform {
		return s.uniform()
	}
	if count <= 0 {
		return 0
	}
	return s.sizeOf(0)
}
