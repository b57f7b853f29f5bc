package opt

import (
	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/future"
)

func Map[In, Out any](o adt.Option[In], f func(In) Out) adt.Option[Out] {
	if v, ok := o.Get(); ok {
		return adt.Some(f(v))
	}
	return adt.None[Out]()
}

func FlatMap[In, Out any](o adt.Option[In], f func(In) adt.Option[Out]) adt.Option[Out] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return adt.None[Out]()
}

// Flatten removes one level of nesting.
func Flatten[T any](o adt.Option[adt.Option[T]]) adt.Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return adt.None[T]()
}

func GetOrElse[T any](o adt.Option[T], defaultValue T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return defaultValue
}

// GetOrElseFunc calls defaultValue only when o is None.
func GetOrElseFunc[T any](o adt.Option[T], defaultValue func() T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return defaultValue()
}

func OrElse[T any](o adt.Option[T], defaultOption adt.Option[T]) adt.Option[T] {
	if o.IsSome() {
		return o
	}
	return defaultOption
}

// OrElseFunc calls defaultOption only when o is None.
func OrElseFunc[T any](o adt.Option[T], defaultOption func() adt.Option[T]) adt.Option[T] {
	if o.IsSome() {
		return o
	}
	return defaultOption()
}

func Filter[T any](o adt.Option[T], predicate func(T) bool) adt.Option[T] {
	if v, ok := o.Get(); ok && predicate(v) {
		return o
	}
	return adt.None[T]()
}

// Exists reports whether o holds a value satisfying predicate.
func Exists[T any](o adt.Option[T], predicate func(T) bool) bool {
	if v, ok := o.Get(); ok {
		return predicate(v)
	}
	return false
}

func ForEach[T any](o adt.Option[T], f func(T)) {
	if v, ok := o.Get(); ok {
		f(v)
	}
}

// Match runs exactly one of onSome and onNone and returns its result.
func Match[T, U any](o adt.Option[T], onSome func(T) U, onNone func() U) U {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

func ToList[T any](o adt.Option[T]) []T {
	if v, ok := o.Get(); ok {
		return []T{v}
	}
	return []T{}
}

// ToNullable returns a pointer to a copy of the value, or nil.
func ToNullable[T any](o adt.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// ToUndefined is the comma-ok form of o.
func ToUndefined[T any](o adt.Option[T]) (T, bool) {
	return o.Get()
}

func ToResult[T, E any](o adt.Option[T], err E) adt.Result[T, E] {
	if v, ok := o.Get(); ok {
		return adt.Ok[T, E](v)
	}
	return adt.Err[T](err)
}

// ToFuture returns a future resolved with the value, or rejected with
// future.ErrRejected on None.
func ToFuture[T any](o adt.Option[T]) *future.Future[T] {
	if v, ok := o.Get(); ok {
		return future.Resolved(v)
	}
	return future.Rejected[T](nil)
}
