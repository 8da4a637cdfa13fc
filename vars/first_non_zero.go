package vars

// FirstNonZero picks the first set layer, in flag, config, default order as
// the providers pass them.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// FirstNonZeroFunc is FirstNonZero over layers computed on demand. Layers
// after the first non-zero one are not evaluated.
func FirstNonZeroFunc[T comparable](layers ...func() T) T {
	var zero T
	for _, layer := range layers {
		if value := layer(); value != zero {
			return value
		}
	}
	return zero
}
