package observable

// Change is the payload of BeforeChange and AfterChange.
type Change[T any] struct {
	Old T
	New T
}

// Optional is a value that may be absent. It is the value type of a
// ChainProxy, whose path may lead nowhere.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OK reports whether a value is present.
func (o Optional[T]) OK() bool {
	return o.ok
}

// OrElse returns the held value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}
