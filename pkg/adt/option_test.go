package adt_test

import (
	"testing"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/stretchr/testify/assert"
)

func TestOption_Tags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		option adt.Option[int]
		some   bool
	}{
		{"some", adt.Some(4), true},
		{"some zero", adt.Some(0), true},
		{"none", adt.None[int](), false},
		{"zero value", adt.Option[int]{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.some, tt.option.IsSome())
			assert.Equal(t, !tt.some, tt.option.IsNone())
			assert.Equal(t, tt.some, adt.IsSome(tt.option))
			assert.Equal(t, !tt.some, adt.IsNone(tt.option))
		})
	}
}

func TestOption_Get(t *testing.T) {
	t.Parallel()

	v, ok := adt.Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = adt.None[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestOption_StructuralEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, adt.Some(3) == adt.Some(3))
	assert.False(t, adt.Some(3) == adt.Some(4))
	assert.True(t, adt.None[int]() == adt.Option[int]{})
	assert.False(t, adt.Some(0) == adt.None[int]())
}

func TestOption_SomeNil(t *testing.T) {
	t.Parallel()

	o := adt.Some[*int](nil)
	assert.True(t, o.IsSome())
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(4)", adt.Some(4).String())
	assert.Equal(t, "None", adt.None[int]().String())
}
