package ptr

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for the zero value so that optional text columns stay NULL.
func NonEmpty(s string) *string {
	if s == "" {
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
