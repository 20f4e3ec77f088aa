// Package matrix provides the dense float64 matrix underlying the
// expected-utility computation: rows are histories, columns are players.
// Dense is row-major, storing elements in a flat slice for cache
// friendliness.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row as a slice of length Cols.
// Complexity: O(c) time and memory.
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}

	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
