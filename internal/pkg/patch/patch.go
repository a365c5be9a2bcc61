package patch

// NonZero returns v unless it is the zero value, in which case fallback is returned.
func NonZero[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
