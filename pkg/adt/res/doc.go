// Package res contains single-value, synchronous combinators over
// adt.Result[T, E]. They are the building blocks for error-aware pipelines:
// the Ok track carries values forward, the Err track is passed through
// untouched.
//
// Highlights:
// - Map/MapErr/BiMap/FlatMap: move along or between tracks
// - Ensure/EnsureAll: turn Ok into Err when a check fails
// - Try/FromPair/ToPair: bridge Go's (T, error) returns
// - Tap/Inspect: side-effect helpers
// - Match: reduce to a concrete value via ok/err handlers
// - Collect: gather many results into one
package res
