package ordantic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorSequence_Empty(t *testing.T) {
	seq := NewValidatorSequence(nil)

	assert.Same(t, seq, seq.Iter())
	assert.True(t, seq.Exhausted())

	v, ok := seq.Next()
	assert.False(t, ok)
	assert.Nil(t, v)

	count := 0
	for range seq.All() {
		count++
	}

	assert.Zero(t, count)
}

func TestValidatorSequence_SinglePass(t *testing.T) {
	reject := errors.New("rejected")
	seq := NewValidatorSequence([]Validator{
		ValidatorFunc(func(any) error { return nil }),
		ValidatorFunc(func(any) error { return reject }),
	})

	require.Equal(t, 2, seq.Remaining())

	first, ok := seq.Next()
	require.True(t, ok)
	require.NoError(t, first.Validate("x"))
	assert.Equal(t, 1, seq.Remaining())

	var rest []Validator
	for v := range seq.All() {
		rest = append(rest, v)
	}

	require.Len(t, rest, 1)
	require.ErrorIs(t, rest[0].Validate("x"), reject)

	assert.True(t, seq.Exhausted())

	_, ok = seq.Next()
	assert.False(t, ok)
}
