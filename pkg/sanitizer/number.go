package sanitizer

// Clamp constrains n to [min, max]. Callers are expected to pass min <= max.
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
