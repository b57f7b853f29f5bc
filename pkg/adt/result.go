package adt

import "fmt"

// Result is either Ok(value) or Err(error). The zero value is Err carrying
// the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// Get returns the success value and true, or the zero value and false.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Err returns the error payload and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func IsOk[T, E any](r Result[T, E]) bool {
	return r.ok
}

func IsErr[T, E any](r Result[T, E]) bool {
	return !r.ok
}
