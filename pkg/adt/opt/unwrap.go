package opt

import "github.com/ib-77/adt/pkg/adt"

// Unwrap returns the value or panics with an *adt.UnwrapError of kind
// adt.ErrNone.
func Unwrap[T any](o adt.Option[T]) T {
	return Expect(o, "")
}

func UnwrapOr[T any](o adt.Option[T], defaultValue T) T {
	return GetOrElse(o, defaultValue)
}

// Expect is Unwrap with a caller-supplied panic message.
func Expect[T any](o adt.Option[T], message string) T {
	v, ok := o.Get()
	if !ok {
		panic(&adt.UnwrapError{Kind: adt.ErrNone, Message: message})
	}
	return v
}
