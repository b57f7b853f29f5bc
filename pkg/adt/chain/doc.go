// Package chain provides a fluent wrapper around adt.Option[T] for building
// filter-then-convert pipelines out of opt primitives.
//
// Key operations:
// - Start/FromValue/Empty: begin a chain from an Option, a value or nothing
// - Filter/Map/Ensure: stay on the same type
// - Or/And/OrElse: choose between chains
// - Then/MapTo: move to a chain of another type
// - GetOrElse/ToNullable/ToResult/ToFuture/Convert/Finally: leave the chain
package chain
