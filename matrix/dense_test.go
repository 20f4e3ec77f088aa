package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/matrix"
)

func TestNewDense_Validation(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err = matrix.NewDense(3, -1)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err = matrix.NewDense(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

func TestDense_SetAtRow(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 0.75))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "cells initialize to zero")

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0.75}, row)

	// Row returns a copy, not a view.
	row[0] = 99
	v, _ = m.At(1, 0)
	assert.Equal(t, 0.0, v)
}

func TestDense_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3.5))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 7.0))

	orig, _ := m.At(0, 1)
	assert.Equal(t, 3.5, orig, "clone must not alias the original")
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.5))
	assert.Equal(t, "[1.5, 0]\n", m.String())
}
