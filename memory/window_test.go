package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64WindowReadWrite(t *testing.T) {
	m, err := New(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.WriteFloat64s(8, []float64{1, 2, 3, 4}))

	w, err := m.Float64Window(8, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, 8, w.Ptr())
	assert.True(t, w.Valid())

	v, err := w.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	require.NoError(t, w.Set(0, -9))
	all, err := w.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{-9, 2, 3, 4}, all)

	dst := make([]float64, 2)
	n, err := w.CopyTo(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{-9, 2}, dst)

	_, err = w.At(4)
	require.ErrorIs(t, err, ErrRange)
	require.ErrorIs(t, w.Set(-1, 0), ErrRange)
}

func TestFloat64WindowBounds(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	_, err = m.Float64Window(PageSize-8, 2)
	require.ErrorIs(t, err, ErrRange)
	_, err = m.Float64Window(0, -1)
	require.ErrorIs(t, err, ErrRange)

	w, err := m.Float64Window(PageSize-8, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Len())
}

func TestFloat64WindowStaleAfterGrow(t *testing.T) {
	m, err := New(1, 2)
	require.NoError(t, err)

	w, err := m.Float64Window(0, 2)
	require.NoError(t, err)

	_, err = m.Grow(1)
	require.NoError(t, err)
	assert.False(t, w.Valid())

	_, err = w.At(0)
	require.ErrorIs(t, err, ErrStaleWindow)
	require.ErrorIs(t, w.Set(0, 1), ErrStaleWindow)
	_, err = w.Float64s()
	require.ErrorIs(t, err, ErrStaleWindow)
	_, err = w.CopyTo(make([]float64, 2))
	require.ErrorIs(t, err, ErrStaleWindow)

	fresh, err := m.Float64Window(0, 2)
	require.NoError(t, err)
	require.NoError(t, fresh.Set(1, 5))
	v, err := fresh.At(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestFloat64WindowStaleAfterClose(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	w, err := m.Float64Window(0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = w.At(0)
	require.ErrorIs(t, err, ErrStaleWindow)
}
