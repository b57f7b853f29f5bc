package future

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrRejected is the reason of a future rejected without one.
var ErrRejected = errors.New("future: rejected")

type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func pending[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// New returns a pending future and the functions settling it. Only the first
// call to either function has an effect.
func New[T any]() (f *Future[T], resolve func(T), reject func(error)) {
	f = pending[T]()
	return f, f.resolve, f.reject
}

func Resolved[T any](value T) *Future[T] {
	f := pending[T]()
	f.resolve(value)
	return f
}

// Rejected returns a future rejected with err, or with ErrRejected when err
// is nil.
func Rejected[T any](err error) *Future[T] {
	f := pending[T]()
	f.reject(err)
	return f
}

func (f *Future[T]) resolve(value T) {
	f.once.Do(func() {
		f.value = value
		close(f.done)
	})
}

func (f *Future[T]) reject(err error) {
	if err == nil {
		err = ErrRejected
	}
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if value, settled, err := f.Poll(); settled {
		return value, err
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll reports the outcome without blocking; settled is false while pending.
func (f *Future[T]) Poll() (value T, settled bool, err error) {
	select {
	case <-f.done:
		return f.value, true, f.err
	default:
		var zero T
		return zero, false, nil
	}
}

// All awaits every future and returns their values in order. The first
// rejection, or the end of ctx, is returned as the error.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
