package res

import "github.com/ib-77/adt/pkg/adt"

// Try calls fn and converts its (T, error) pair into a Result.
func Try[T any](fn func() (T, error)) adt.Result[T, error] {
	return FromPair(fn())
}

// FromPair treats a non-nil err as failure regardless of value.
func FromPair[T any](value T, err error) adt.Result[T, error] {
	if err != nil {
		return adt.Err[T](err)
	}
	return adt.Ok[T, error](value)
}

// ToPair is the inverse of FromPair. A nil error payload is reported as
// adt.ErrNotOk so that an Err never reads as success.
func ToPair[T any, E error](r adt.Result[T, E]) (T, error) {
	v, ok := r.Get()
	if ok {
		return v, nil
	}
	e, _ := r.Err()
	if adt.IsNil(e) {
		return v, adt.ErrNotOk
	}
	return v, e
}
