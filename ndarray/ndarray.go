package ndarray

import (
	"fmt"
	"math"

	"github.com/evilsocket/fastmath/backend"
)

// NDArray is a dense array of float32 values with up to MaxDims axes.
type NDArray struct {
	rank   int
	dims   [MaxDims]int
	length int
	data   []float32
}

func alloc(rank int, dims [MaxDims]int, length int) *NDArray {
	backend.Reserve(length)
	return &NDArray{
		rank:   rank,
		dims:   dims,
		length: length,
		data:   make([]float32, length),
	}
}

// New creates a zero filled array with the given shape, shape[0] being
// the innermost axis.
func New(shape ...int) (*NDArray, error) {
	length, err := validateShape(shape)
	if err != nil {
		return nil, err
	}

	var dims [MaxDims]int
	copy(dims[:], shape)

	return alloc(len(shape), dims, length), nil
}

// FromData creates an array with the given shape and a copy of data
// as its contents.
// Both are validated before allocating.
func FromData(shape []int, data []float32) (*NDArray, error) {
	length, err := validateShape(shape)
	if err != nil {
		return nil, err
	} else if len(data) != length {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrLengthMismatch, shape, length, len(data))
	}

	var dims [MaxDims]int
	copy(dims[:], shape)

	a := alloc(len(shape), dims, length)
	copy(a.data, data)
	return a, nil
}

func (a *NDArray) sameShape() *NDArray {
	return alloc(a.rank, a.dims, a.length)
}

// Size returns the total number of elements.
func (a *NDArray) Size() int {
	return a.length
}

// Len is an alias of Size.
func (a *NDArray) Len() int {
	return a.length
}

// Rank returns the number of axes.
func (a *NDArray) Rank() int {
	return a.rank
}

// Shape returns a copy of the per axis extents.
func (a *NDArray) Shape() []int {
	shape := make([]int, a.rank)
	copy(shape, a.dims[:a.rank])
	return shape
}

// Dim returns the extent of the given axis, or 0 if the axis does not exist.
func (a *NDArray) Dim(axis int) int {
	if axis < 0 || axis >= a.rank {
		return 0
	}
	return a.dims[axis]
}

// Fill sets every element to v.
func (a *NDArray) Fill(v float32) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Set copies values in flattened order, values must have exactly Size() elements.
func (a *NDArray) Set(values []float32) error {
	if len(values) != a.length {
		return fmt.Errorf("%w: expected %d values, got %d", ErrLengthMismatch, a.length, len(values))
	}
	copy(a.data, values)
	return nil
}

// Offset returns the flat storage offset of the given coordinates.
func (a *NDArray) Offset(index []int) (int, error) {
	return offset(a.rank, a.dims, index)
}

// At returns the element at the given coordinates.
func (a *NDArray) At(index ...int) (float32, error) {
	off, err := a.Offset(index)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// Store writes v at the given coordinates and returns the stored value.
func (a *NDArray) Store(index []int, v float32) (float32, error) {
	off, err := a.Offset(index)
	if err != nil {
		return 0, err
	}
	a.data[off] = v
	return a.data[off], nil
}

// Data returns a copy of the flattened storage.
func (a *NDArray) Data() []float32 {
	data := make([]float32, a.length)
	copy(data, a.data)
	return data
}

// Clone returns a deep copy of the array.
func (a *NDArray) Clone() *NDArray {
	c := a.sameShape()
	copy(c.data, a.data)
	return c
}

// SameShape returns true if both arrays have the same rank and extents.
func (a *NDArray) SameShape(b *NDArray) bool {
	return a.rank == b.rank && a.dims == b.dims
}

// Equal returns whether the arrays have the same shape and are element-wise equal.
func (a *NDArray) Equal(b *NDArray) bool {
	return a.EqualApprox(b, 0)
}

// EqualApprox returns whether the arrays have the same shape and every pair
// of elements differs by at most epsilon.
func (a *NDArray) EqualApprox(b *NDArray, epsilon float64) bool {
	if !a.SameShape(b) {
		return false
	}
	for i, va := range a.data {
		if math.Abs(float64(va)-float64(b.data[i])) > epsilon {
			return false
		}
	}
	return true
}

func (a *NDArray) String() string {
	return fmt.Sprintf("ndarray(shape=%v, size=%d)", a.Shape(), a.length)
}
