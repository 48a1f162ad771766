package math

// CeilInt returns ceil(a/b) for positive b
func CeilInt(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}

// MinInt returns the smaller of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampInt restricts v into [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
