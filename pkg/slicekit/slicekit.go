package slicekit

// Of builds a new slice from the given values, keeping their order.
//
// The returned slice never shares its backing array with the caller,
// even when an existing slice is passed with the `vs...` syntax.
// Called without arguments, it returns an empty, non-nil slice.
func Of[T any](vs ...T) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any](s []I, fn func(I) O) []O {
	if s == nil {
		return nil
	}
	out := make([]O, len(s))
	for index, v := range s {
		out[index] = fn(v)
	}
	return out
}
