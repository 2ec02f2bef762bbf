package ndarray

import (
	"errors"
)

var (
	// ErrShape is returned when a shape is empty, has too many axes or
	// non positive extents, or when two matrix operands do not agree on
	// their shared dimension.
	ErrShape = errors.New("invalid shape")
	// ErrLengthMismatch is returned when the number of flattened elements
	// of two operands (or of a values sequence) differs.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrRank is returned when an operand has too many axes for a matrix product.
	ErrRank = errors.New("invalid number of dimensions")
	// ErrIndexArity is returned when the number of coordinates differs from the array rank.
	ErrIndexArity = errors.New("invalid number of indices")
	// ErrIndexRange is returned when a coordinate is negative or past its axis extent.
	ErrIndexRange = errors.New("index out of range")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrShape, "ShapeError"},
	{ErrLengthMismatch, "LengthMismatchError"},
	{ErrRank, "RankError"},
	{ErrIndexArity, "IndexArityError"},
	{ErrIndexRange, "IndexRangeError"},
}

// Kind returns the name of the error class err belongs to, or an
// empty string if err was not returned by this package.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
