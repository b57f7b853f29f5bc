// Package adt defines the two closed sum types of the library, Option[T] and
// Result[T, E], together with their tag predicates and the fault kinds raised
// by strict unwrapping.
//
// Combinators live in sub-packages:
// - opt: map, flatMap, filter, conversions and constructors for Option[T]
// - res: map, mapErr, flatMap, ensure, try and collect for Result[T, E]
// - chain: a fluent Chain[T] over Option[T] for filter-then-convert pipelines
// - catch: boundary adapters turning panics, errors and rejections into None
// - future: a settle-once Future[T], the target of Option-to-promise conversion
// - adtlog: zap fields for Option and Result and the library logger hook
package adt
