// Package future provides Future[T], a value that settles exactly once as
// either resolved (with a T) or rejected (with an error). It is the Go
// counterpart of an asynchronous completion value: Option conversions produce
// already settled futures, and producers that own their own goroutines settle
// pending ones through the functions returned by New.
//
// Key operations:
// - Resolved/Rejected: construct a settled future
// - New: construct a pending future with its resolve and reject functions
// - Await/Poll/Done: consume a future, blocking or not
// - All: await several futures and collect their values in order
package future
