package opt

import "github.com/ib-77/adt/pkg/adt"

func FromNullable[T any](value *T) adt.Option[T] {
	if value == nil {
		return adt.None[T]()
	}
	return adt.Some(*value)
}

// FromUndefined builds an Option from a comma-ok pair such as a map lookup
// or a type assertion.
func FromUndefined[T any](value T, ok bool) adt.Option[T] {
	if !ok {
		return adt.None[T]()
	}
	return adt.Some(value)
}

// FromNil returns None for nil and for nil pointers, maps, slices, funcs,
// chans and interfaces.
func FromNil[T any](value T) adt.Option[T] {
	if adt.IsNil(value) {
		return adt.None[T]()
	}
	return adt.Some(value)
}

func FromResult[T, E any](r adt.Result[T, E]) adt.Option[T] {
	return FromGetter[T](r)
}

func FromGetter[T any](g adt.Getter[T]) adt.Option[T] {
	return FromUndefined[T](g.Get())
}

func FromPredicate[T any](value T, predicate func(T) bool) adt.Option[T] {
	if predicate(value) {
		return adt.Some(value)
	}
	return adt.None[T]()
}
