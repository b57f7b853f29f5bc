package catch

import (
	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/adtlog"
	"go.uber.org/zap"
)

func swallowed(op string, err error) {
	adtlog.L().Debug("fault converted to None", zap.String("op", op), zap.Error(err))
}

// Catch calls fn and returns Some of its result, or None when fn panics.
func Catch[T any](fn func() T) (out adt.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			swallowed("catch", adt.Recovered(r))
			out = adt.None[T]()
		}
	}()
	return adt.Some(fn())
}

// CatchErr is Catch for functions returning (T, error); a non-nil error is
// treated like a panic.
func CatchErr[T any](fn func() (T, error)) (out adt.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			swallowed("catch_err", adt.Recovered(r))
			out = adt.None[T]()
		}
	}()

	v, err := fn()
	if err != nil {
		swallowed("catch_err", err)
		return adt.None[T]()
	}
	return adt.Some(v)
}

// Try calls fn and returns Ok of its result, or Err(*adt.PanicError) when fn
// panics.
func Try[T any](fn func() T) (out adt.Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			out = adt.Err[T](adt.Recovered(r))
		}
	}()
	return adt.Ok[T, error](fn())
}

// ToOptional lifts predicate into a constructor: the returned function yields
// Some(arg) when predicate accepts arg and None when it rejects or panics.
func ToOptional[T any](predicate func(T) bool) func(T) adt.Option[T] {
	return func(arg T) (out adt.Option[T]) {
		defer func() {
			if r := recover(); r != nil {
				swallowed("to_optional", adt.Recovered(r))
				out = adt.None[T]()
			}
		}()

		if predicate(arg) {
			return adt.Some(arg)
		}
		return adt.None[T]()
	}
}

// Defined returns None for nil and nil-able values that are nil.
func Defined[T any](arg T) adt.Option[T] {
	return ToOptional(func(v T) bool { return !adt.IsNil(v) })(arg)
}
