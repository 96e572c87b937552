package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps current unless next is set. Used for optional fields that
// a patch may replace but never clear.
func CoalescePtr[T any](next, current *T) *T {
	if next != nil {
		return next
	}
	return current
}
