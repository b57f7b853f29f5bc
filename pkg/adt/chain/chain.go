package chain

import (
	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/future"
	"github.com/ib-77/adt/pkg/adt/opt"
)

// Chain wraps an adt.Option to enable fluent chaining
type Chain[T any] struct {
	option adt.Option[T]
}

// Start creates a new chain from an adt.Option
func Start[T any](o adt.Option[T]) Chain[T] {
	return Chain[T]{option: o}
}

// FromValue creates a new chain holding value
func FromValue[T any](value T) Chain[T] {
	return Start(adt.Some(value))
}

func Empty[T any]() Chain[T] {
	return Start(adt.None[T]())
}

// Option returns the underlying adt.Option
func (c Chain[T]) Option() adt.Option[T] {
	return c.option
}

func (c Chain[T]) IsSome() bool {
	return c.option.IsSome()
}

func (c Chain[T]) Filter(predicate func(T) bool) Chain[T] {
	return Start(opt.Filter(c.option, predicate))
}

// Map transforms the value without changing its type; see MapTo otherwise
func (c Chain[T]) Map(f func(T) T) Chain[T] {
	return Start(opt.Map(c.option, f))
}

// Ensure runs a side effect on the value without changing the chain
func (c Chain[T]) Ensure(f func(T)) Chain[T] {
	opt.ForEach(c.option, f)
	return c
}

// Or returns the first chain, c included, that holds a value.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.option.IsSome() {
		return c
	}
	for _, alt := range alternatives {
		if alt.option.IsSome() {
			return alt
		}
	}
	return c
}

// And returns required when both chains hold a value, otherwise an empty chain.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.option.IsNone() {
		return c
	}
	return required
}

func (c Chain[T]) OrElse(defaultValue T) Chain[T] {
	return Start(opt.OrElse(c.option, adt.Some(defaultValue)))
}

func (c Chain[T]) GetOrElse(defaultValue T) T {
	return opt.GetOrElse(c.option, defaultValue)
}

func (c Chain[T]) ToNullable() *T {
	return opt.ToNullable(c.option)
}

func (c Chain[T]) ToList() []T {
	return opt.ToList(c.option)
}

// Then chains a function that returns adt.Option[U]
func Then[T, U any](c Chain[T], f func(T) adt.Option[U]) Chain[U] {
	return Start(opt.FlatMap(c.option, f))
}

// MapTo chains a pure transformation to another type
func MapTo[T, U any](c Chain[T], f func(T) U) Chain[U] {
	return Start(opt.Map(c.option, f))
}

func ToResult[T, E any](c Chain[T], err E) adt.Result[T, E] {
	return opt.ToResult(c.option, err)
}

func ToFuture[T any](c Chain[T]) *future.Future[T] {
	return opt.ToFuture(c.option)
}

// Convert collapses the chain with any opt converter
func Convert[T, R any](c Chain[T], conv opt.Converter[T, R]) R {
	return opt.Convert(c.option, conv)
}

// Finally collapses the chain into a final value using opt.Match
func Finally[T, U any](c Chain[T], onSome func(T) U, onNone func() U) U {
	return opt.Match(c.option, onSome, onNone)
}
