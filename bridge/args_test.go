package bridge

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	var (
		s string
		n int64
		f float64
		p *counter
	)

	require.NoError(t, Bind([]any{"a", 3, int32(2), nil}, &s, &n, &f, &p))
	assert.Equal(t, "a", s)
	assert.Equal(t, int64(3), n)
	assert.InDelta(t, 2.0, f, 1e-9)
	assert.Nil(t, p)
}

func TestBind_Errors(t *testing.T) {
	var (
		s string
		n int64
	)

	err := Bind([]any{"a"}, &s, &n)
	require.EqualError(t, err, "bridge: expected 2 arguments, got 1")

	err = Bind([]any{"a", "b"}, &s, &n)

	var argErr *ArgError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, argErr.Index)
	assert.Equal(t, "bridge: argument 1: expected int64, got string", err.Error())

	err = Bind([]any{nil, 1}, &s, &n)
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 0, argErr.Index)
}

func TestAssign_Lossless(t *testing.T) {
	var (
		i64 int64
		f32 float32
		u   uint
	)

	require.NoError(t, Assign(&i64, 3.0))
	assert.Equal(t, int64(3), i64)

	require.NoError(t, Assign(&f32, 0.1))
	assert.InDelta(t, 0.1, float64(f32), 1e-6)

	require.NoError(t, Assign(&u, int64(7)))
	assert.Equal(t, uint(7), u)
}

func TestAssign_Lossy(t *testing.T) {
	tests := []struct {
		name  string
		check func() error
	}{
		{"fraction", func() error { var v int64; return Assign(&v, 3.9) }},
		{"overflow", func() error { var v int8; return Assign(&v, 300) }},
		{"sign", func() error { var v uint; return Assign(&v, -1) }},
		{"unsigned to signed", func() error { var v int64; return Assign(&v, uint64(math.MaxUint64)) }},
		{"float overflow", func() error { var v float32; return Assign(&v, math.MaxFloat64) }},
		{"nan", func() error { var v int; return Assign(&v, math.NaN()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var argErr *ArgError
			require.ErrorAs(t, tt.check(), &argErr)
		})
	}
}

func TestAssign_LossyKeepsTarget(t *testing.T) {
	v := int8(5)

	err := Assign(&v, 300)
	require.EqualError(t, err, "bridge: argument 0: expected int8, got int")
	assert.Equal(t, int8(5), v)
}

func TestSelf(t *testing.T) {
	c := &counter{}

	got, err := Self[counter](c)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = Self[counter](counter{})
	require.Error(t, err)

	_, err = Self[counter]((*counter)(nil))
	require.Error(t, err)
}

func TestAccessor(t *testing.T) {
	field := Accessor("label", func(c *counter) *string { return &c.Label })
	c := &counter{Label: "a"}

	v, err := field.Get(c)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, field.Set(c, "b"))
	assert.Equal(t, "b", c.Label)

	require.Error(t, field.Set(c, 1))

	_, err = field.Get("not a counter")
	require.Error(t, err)
}
