package patch

// Coalesce returns *p, or fallback when p is nil. Used for optional request fields.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// Default returns fallback when v is the zero value.
func Default[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
