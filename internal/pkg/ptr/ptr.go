package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for blank strings so optional CMS fields round-trip as null.
func NonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
