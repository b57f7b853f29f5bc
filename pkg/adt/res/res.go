package res

import (
	"errors"

	"github.com/ib-77/adt/pkg/adt"
)

func Map[In, Out, E any](r adt.Result[In, E], onOk func(In) Out) adt.Result[Out, E] {
	if v, ok := r.Get(); ok {
		return adt.Ok[Out, E](onOk(v))
	}
	e, _ := r.Err()
	return adt.Err[Out](e)
}

func MapErr[T, In, Out any](r adt.Result[T, In], onErr func(In) Out) adt.Result[T, Out] {
	if e, failed := r.Err(); failed {
		return adt.Err[T](onErr(e))
	}
	v, _ := r.Get()
	return adt.Ok[T, Out](v)
}

// BiMap maps whichever track r is on.
func BiMap[T, U, E, F any](r adt.Result[T, E], onOk func(T) U, onErr func(E) F) adt.Result[U, F] {
	if v, ok := r.Get(); ok {
		return adt.Ok[U, F](onOk(v))
	}
	e, _ := r.Err()
	return adt.Err[U](onErr(e))
}

func FlatMap[In, Out, E any](r adt.Result[In, E], onOk func(In) adt.Result[Out, E]) adt.Result[Out, E] {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.Err()
	return adt.Err[Out](e)
}

func GetOrElse[T, E any](r adt.Result[T, E], defaultValue T) T {
	if v, ok := r.Get(); ok {
		return v
	}
	return defaultValue
}

// GetOrElseFunc derives the fallback from the error payload.
func GetOrElseFunc[T, E any](r adt.Result[T, E], onErr func(E) T) T {
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.Err()
	return onErr(e)
}

func OrElse[T, E any](r adt.Result[T, E], alternative adt.Result[T, E]) adt.Result[T, E] {
	if r.IsOk() {
		return r
	}
	return alternative
}

func Match[T, E, Out any](r adt.Result[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.Err()
	return onErr(e)
}

// Tap calls onOk or onErr for side effects and returns r unchanged. Either
// handler may be nil.
func Tap[T, E any](r adt.Result[T, E], onOk func(T), onErr func(E)) adt.Result[T, E] {
	if v, ok := r.Get(); ok {
		if onOk != nil {
			onOk(v)
		}
		return r
	}

	if onErr != nil {
		e, _ := r.Err()
		onErr(e)
	}
	return r
}

func Inspect[T, E any](r adt.Result[T, E], onOk func(T)) adt.Result[T, E] {
	return Tap(r, onOk, nil)
}

// Ensure turns an Ok into Err(err) when predicate rejects its value.
func Ensure[T, E any](r adt.Result[T, E], predicate func(T) bool, err E) adt.Result[T, E] {
	if v, ok := r.Get(); ok && !predicate(v) {
		return adt.Err[T](err)
	}
	return r
}

// EnsureAll runs every check against an Ok value. Failing checks are joined
// into one error; with breakOnError the first failure stops the run.
func EnsureAll[T any](r adt.Result[T, error], breakOnError bool,
	checks ...func(T) error) adt.Result[T, error] {

	v, ok := r.Get()
	if !ok {
		return r
	}

	var errs []error
	for _, check := range checks {
		if err := check(v); err != nil {
			errs = append(errs, err)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return r
	}
	return adt.Err[T](errors.Join(errs...))
}

func ToOption[T, E any](r adt.Result[T, E]) adt.Option[T] {
	if v, ok := r.Get(); ok {
		return adt.Some(v)
	}
	return adt.None[T]()
}

// ErrOption returns the error payload as an Option.
func ErrOption[T, E any](r adt.Result[T, E]) adt.Option[E] {
	if e, failed := r.Err(); failed {
		return adt.Some(e)
	}
	return adt.None[E]()
}

// Collect returns the values of rs, or the first Err in order.
func Collect[T, E any](rs []adt.Result[T, E]) adt.Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		v, ok := r.Get()
		if !ok {
			e, _ := r.Err()
			return adt.Err[[]T](e)
		}
		values = append(values, v)
	}
	return adt.Ok[[]T, E](values)
}
