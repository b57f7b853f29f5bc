package catch

import (
	"context"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/future"
)

// Resolve waits for f. A rejection, or the end of ctx, yields None.
func Resolve[T any](ctx context.Context, f *future.Future[T]) adt.Option[T] {
	v, err := f.Await(ctx)
	if err != nil {
		swallowed("resolve", err)
		return adt.None[T]()
	}
	return adt.Some(v)
}

// ResolveAsync is Resolve as a future that never rejects.
func ResolveAsync[T any](ctx context.Context, f *future.Future[T]) *future.Future[adt.Option[T]] {
	if _, settled, _ := f.Poll(); settled {
		return future.Resolved(Resolve(ctx, f))
	}

	out, resolve, _ := future.New[adt.Option[T]]()
	go func() {
		resolve(Resolve(ctx, f))
	}()
	return out
}
