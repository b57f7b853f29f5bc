package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved(t *testing.T) {
	t.Parallel()

	f := Resolved(5)
	v, settled, err := f.Poll()
	assert.True(t, settled)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestRejected(t *testing.T) {
	t.Parallel()

	_, err := Rejected[int](nil).Await(context.Background())
	assert.ErrorIs(t, err, ErrRejected)

	cause := errors.New("cause")
	_, err = Rejected[int](cause).Await(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestNew_SettlesOnce(t *testing.T) {
	t.Parallel()

	f, resolve, reject := New[string]()

	_, settled, _ := f.Poll()
	assert.False(t, settled)

	resolve("first")
	resolve("second")
	reject(errors.New("late"))

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestNew_ConcurrentSettle(t *testing.T) {
	t.Parallel()

	f, resolve, reject := New[int]()

	wg := &sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				resolve(i)
			} else {
				reject(errors.New("odd"))
			}
		}()
	}
	wg.Wait()

	select {
	case <-f.Done():
	default:
		t.Fatalf("future must be settled")
	}
}

func TestAwait_ContextEnds(t *testing.T) {
	t.Parallel()

	f, _, _ := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	late, resolve, _ := New[int]()
	go func() {
		time.Sleep(5 * time.Millisecond)
		resolve(3)
	}()

	values, err := All(ctx, Resolved(1), Resolved(2), late)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)

	values, err = All[int](ctx)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestAll_FirstRejection(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	pending, _, _ := New[int]()

	values, err := All(context.Background(), Resolved(1), Rejected[int](cause), pending)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, values)
}
