package res

import "github.com/ib-77/adt/pkg/adt"

// Unwrap returns the Ok value or panics with an *adt.UnwrapError of kind
// adt.ErrNotOk whose Cause is the error payload.
func Unwrap[T, E any](r adt.Result[T, E]) T {
	return Expect(r, "")
}

func UnwrapOr[T, E any](r adt.Result[T, E], defaultValue T) T {
	return GetOrElse(r, defaultValue)
}

func Expect[T, E any](r adt.Result[T, E], message string) T {
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.Err()
	panic(&adt.UnwrapError{Kind: adt.ErrNotOk, Message: message, Cause: e})
}

// UnwrapErr returns the error payload or panics when r is Ok.
func UnwrapErr[T, E any](r adt.Result[T, E]) E {
	if e, failed := r.Err(); failed {
		return e
	}
	v, _ := r.Get()
	panic(&adt.UnwrapError{Kind: adt.ErrOk, Cause: v})
}
