package adt

// Getter is implemented by every container that may hold a value of type T.
type Getter[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
}

// Outcome extends Getter with the failure side of a Result
type Outcome[T, E any] interface {
	Getter[T]
	// Err returns the error payload and whether the outcome failed
	Err() (E, bool)
	// IsOk returns true if the outcome succeeded
	IsOk() bool
}

var (
	_ Getter[int]         = Option[int]{}
	_ Outcome[int, error] = Result[int, error]{}
)
