package vars

// FirstNonZero returns the first non-zero value, so a flag listed before a config lookup
// takes precedence over it.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
