package model

// Optional is a value that may be absent. The zero value is absent.
//
// Payload fields use Optional where the wire format tells "key omitted"
// apart from "key present with an empty value".
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the value if present, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}
