package opt

import (
	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/future"
)

// Converter turns an Option into its final representation.
type Converter[T, R any] func(adt.Option[T]) R

// Convert applies conv to o.
func Convert[T, R any](o adt.Option[T], conv Converter[T, R]) R {
	return conv(o)
}

// Gate filters o by predicate and converts what is left.
func Gate[T, R any](o adt.Option[T], predicate func(T) bool, conv Converter[T, R]) R {
	return conv(Filter(o, predicate))
}

func AsOption[T any]() Converter[T, adt.Option[T]] {
	return func(o adt.Option[T]) adt.Option[T] { return o }
}

func AsNullable[T any]() Converter[T, *T] {
	return ToNullable[T]
}

func AsList[T any]() Converter[T, []T] {
	return ToList[T]
}

func AsResult[T, E any](err E) Converter[T, adt.Result[T, E]] {
	return func(o adt.Option[T]) adt.Result[T, E] {
		return ToResult(o, err)
	}
}

func AsFuture[T any]() Converter[T, *future.Future[T]] {
	return ToFuture[T]
}

func OrValue[T any](defaultValue T) Converter[T, T] {
	return func(o adt.Option[T]) T {
		return GetOrElse(o, defaultValue)
	}
}

func OrFunc[T any](defaultValue func() T) Converter[T, T] {
	return func(o adt.Option[T]) T {
		return GetOrElseFunc(o, defaultValue)
	}
}

func OrOption[T any](defaultOption adt.Option[T]) Converter[T, adt.Option[T]] {
	return func(o adt.Option[T]) adt.Option[T] {
		return OrElse(o, defaultOption)
	}
}

func OrOptionFunc[T any](defaultOption func() adt.Option[T]) Converter[T, adt.Option[T]] {
	return func(o adt.Option[T]) adt.Option[T] {
		return OrElseFunc(o, defaultOption)
	}
}
