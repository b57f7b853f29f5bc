package adt

import (
	"errors"
	"fmt"
)

var (
	// ErrNone is the kind of fault raised when a None is unwrapped.
	ErrNone = errors.New("unwrap on None")
	// ErrNotOk is the kind of fault raised when an Err is unwrapped.
	ErrNotOk = errors.New("unwrap on Err")
	// ErrOk is the kind of fault raised when the error of an Ok is unwrapped.
	ErrOk = errors.New("unwrap error on Ok")
)

// UnwrapError is the panic value of the strict unwrap family. Kind is one of
// ErrNone, ErrNotOk or ErrOk; Message is the caller-supplied text of Expect, or empty.
type UnwrapError struct {
	Kind    error
	Message string
	Cause   any
}

func (e *UnwrapError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *UnwrapError) Unwrap() []error {
	errs := []error{e.Kind}
	if cause, ok := e.Cause.(error); ok {
		errs = append(errs, cause)
	}
	return errs
}

// PanicError carries a value recovered from a panicking function.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recovered wraps r as an error unless it already is a *PanicError.
func Recovered(r any) error {
	var pe *PanicError
	if err, ok := r.(error); ok && errors.As(err, &pe) {
		return err
	}
	return &PanicError{Value: r}
}
