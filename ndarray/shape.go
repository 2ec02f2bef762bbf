package ndarray

import (
	"fmt"
	"math"
)

// MaxDims is the maximum number of axes an array can have.
const MaxDims = 3

// validateShape checks the shape and returns the number of elements it describes.
func validateShape(shape []int) (int, error) {
	if n := len(shape); n == 0 {
		return 0, fmt.Errorf("%w: at least one dimension is required", ErrShape)
	} else if n > MaxDims {
		return 0, fmt.Errorf("%w: too many dimensions (%d > %d)", ErrShape, n, MaxDims)
	}

	length := 1
	for axis, dim := range shape {
		if dim <= 0 {
			return 0, fmt.Errorf("%w: dimension %d must be positive, got %d", ErrShape, axis, dim)
		} else if length > math.MaxInt32/dim {
			return 0, fmt.Errorf("%w: %v describes too many elements", ErrShape, shape)
		}
		length *= dim
	}
	return length, nil
}

// blockSizes returns, for every axis, the number of flat elements spanned by
// a unit step along that axis.
func blockSizes(rank int, dims [MaxDims]int) (blocks [MaxDims]int) {
	size := 1
	for axis := 0; axis < rank; axis++ {
		blocks[axis] = size
		size *= dims[axis]
	}
	return
}

// offset computes the flat offset of index, arity is checked first and then
// every coordinate against its axis extent.
func offset(rank int, dims [MaxDims]int, index []int) (int, error) {
	if len(index) != rank {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrIndexArity, rank, len(index))
	}

	blocks := blockSizes(rank, dims)
	off := 0
	for axis, i := range index {
		if i < 0 || i >= dims[axis] {
			return 0, fmt.Errorf("%w: index %d is %d, dimension is %d", ErrIndexRange, axis, i, dims[axis])
		}
		off += i * blocks[axis]
	}
	return off, nil
}
