// Package opt contains the combinators of adt.Option[T]. Every function is
// synchronous, evaluates its input once and calls a supplied function at most
// once. Panics raised by supplied functions are not recovered here; see
// package catch for the recovering constructors.
//
// Highlights:
// - Map/FlatMap/Filter/ForEach/Match: transform or destructure an Option
// - GetOrElse/OrElse and their Func variants: supply defaults
// - ToList/ToNullable/ToUndefined/ToResult/ToFuture: convert out of Option
// - FromNullable/FromUndefined/FromNil/FromResult/FromPredicate: construct
// - Gate/Convert with the As*/Or* converters: filter then convert in one call
// - Unwrap/Expect: strict extraction that panics on None
package opt
