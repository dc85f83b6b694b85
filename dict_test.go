package ordantic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int
	Y int
}

func (p *point) ModelDict() (any, error) {
	return map[string]any{"x": p.X, "y": p.Y}, nil
}

type broken struct{}

func (*broken) ModelDict() (any, error) {
	return nil, errors.New("broken")
}

func TestToModelDict_Passthrough(t *testing.T) {
	for _, v := range []any{"foo", int64(3), 1.5, true, []int{1, 2}, map[string]int{"a": 1}} {
		got, err := ToModelDict(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ToModelDict(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestToModelDict_Models(t *testing.T) {
	want := map[string]any{"x": 1, "y": 2}

	got, err := ToModelDict(&point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Value-typed models are converted through a pointer to a copy.
	got, err = ToModelDict(point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ToModelDict((*point)(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestToModelDict_Containers(t *testing.T) {
	got, err := ToModelDict([]point{{X: 1}, {Y: 2}})
	require.NoError(t, err)

	want := []any{
		map[string]any{"x": 1, "y": 0},
		map[string]any{"x": 0, "y": 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slice mismatch (-want +got):\n%s", diff)
	}

	got, err = ToModelDict(map[string]*point{"origin": {}, "none": nil})
	require.NoError(t, err)

	wantMap := map[string]any{
		"origin": map[string]any{"x": 0, "y": 0},
		"none":   nil,
	}
	if diff := cmp.Diff(wantMap, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}

	got, err = ToModelDict([2]point{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestToModelDict_Error(t *testing.T) {
	_, err := ToModelDict([]*broken{{}})
	require.EqualError(t, err, "broken")
}
