package grid

// searchRange walks the prefix sum from index 0 and returns the indices intersecting
// [offset, offset+viewport)
// Cost is linear in the last visible index, nothing is cached between calls
func searchRange(s Sizing, count int, viewport, offset float64) Range {
	if count <= 0 || !(viewport > 0) {
		return emptyRange
	}

	end := offset + viewport
	first, last := -1, -1
	var pos float64
	for i := 0; i < count; i++ {
		if pos >= end {
			break
		}
		size := s.Size(i)
		if !(size > 0) {
			size = 0
		}
		next := pos + size
		if first < 0 && next > offset {
			first = i
		}
		if first >= 0 {
			last = i
		}
		pos = next
	}

	// Offset lies past the end of the axis
	if first < 0 {
		return emptyRange
	}
	return Range{First: first, Last: last}
}

// IndexAt returns the index whose span contains position along the axis, -1 if none
func (s Sizing) IndexAt(count int, position float64) int {
	if count <= 0 || position < 0 {
		return -1
	}
	if s.kind == SizingUniform {
		if !(s.size > 0) {
			return -1
		}
		i := int(position / s.size)
		if i >= count {
			return -1
		}
		return i
	}
	r := searchRange(s, count, 1, position)
	if r.Empty() {
		return -1
	}
	return r.First
}
