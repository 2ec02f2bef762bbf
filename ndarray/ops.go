package ndarray

import (
	"fmt"

	"github.com/evilsocket/fastmath/backend"
)

// Add returns a new array with the shape of lhs holding the element-wise
// sum of the operands in flattened order. Only the number of elements of
// the operands is required to match.
func Add(lhs, rhs *NDArray) (*NDArray, error) {
	if lhs.length != rhs.length {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, lhs.length, rhs.length)
	}
	res := lhs.sameShape()
	backend.Add(res.data, lhs.data, rhs.data)
	return res, nil
}

// Sub is like Add but computes the element-wise difference lhs - rhs.
func Sub(lhs, rhs *NDArray) (*NDArray, error) {
	if lhs.length != rhs.length {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, lhs.length, rhs.length)
	}
	res := lhs.sameShape()
	backend.Sub(res.data, lhs.data, rhs.data)
	return res, nil
}

// lhsMatrix returns rows and columns of a as the left operand of a product,
// a rank 1 array being a single row.
func lhsMatrix(a *NDArray) (rows, cols int) {
	if a.rank == 2 {
		return a.dims[1], a.dims[0]
	}
	return 1, a.dims[0]
}

// rhsMatrix returns rows and columns of a as the right operand of a product,
// a rank 1 array being a single column.
func rhsMatrix(a *NDArray) (rows, cols int) {
	if a.rank == 2 {
		return a.dims[1], a.dims[0]
	}
	return a.dims[0], 1
}

// MatMul returns the matrix product of lhs and rhs. For rank 2 operands dims[0]
// is the number of columns and dims[1] the number of rows, the result has
// rank 2 with dims [rhs columns, lhs rows].
func MatMul(lhs, rhs *NDArray) (*NDArray, error) {
	if lhs.rank > 2 || rhs.rank > 2 {
		return nil, fmt.Errorf("%w: matrix product needs rank 1 or 2 operands, got %d and %d", ErrRank, lhs.rank, rhs.rank)
	}

	rows, inner := lhsMatrix(lhs)
	rhsRows, cols := rhsMatrix(rhs)
	if inner != rhsRows {
		return nil, fmt.Errorf("%w: dimension mismatch, %d columns vs %d rows", ErrShape, inner, rhsRows)
	}

	res := alloc(2, [MaxDims]int{cols, rows}, rows*cols)
	backend.MatMul(res.data, lhs.data, rhs.data, rows, inner, cols)
	return res, nil
}
