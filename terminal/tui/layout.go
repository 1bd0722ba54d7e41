package tui

// Splits cut a fixed number of cells off one side of a region
// The size is clamped to the region, the remainder may be empty

// SplitHFixed cuts leftW columns off the left
func SplitHFixed(r Region, leftW int) (left, right Region) {
	leftW = clampSize(leftW, r.W)
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}

// SplitHFixedRight cuts rightW columns off the right
func SplitHFixedRight(r Region, rightW int) (left, right Region) {
	return SplitHFixed(r, r.W-clampSize(rightW, r.W))
}

// SplitVFixed cuts topH rows off the top
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	topH = clampSize(topH, r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}

// SplitVFixedBottom cuts bottomH rows off the bottom
func SplitVFixedBottom(r Region, bottomH int) (top, bottom Region) {
	return SplitVFixed(r, r.H-clampSize(bottomH, r.H))
}

func clampSize(n, limit int) int {
	return max(0, min(n, limit))
}
