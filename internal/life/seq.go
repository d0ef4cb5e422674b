package life

// Fill returns a slice of n copies of v.
func Fill[T any](n int, v T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Generate returns a slice of n values produced by fn(0) .. fn(n-1).
func Generate[T any](n int, fn func(i int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}
