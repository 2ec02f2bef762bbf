/*
Package ndarray implements a small dense multi-dimensional float32 array.

Arrays have between one and three axes. The first axis is the innermost one,
so the flat offset of a coordinate vector is computed with a mixed-radix
encoding:

	offset = index[0] + index[1]*dims[0] + index[2]*dims[0]*dims[1]

Every array exclusively owns its storage, binary operations always return a
freshly allocated result and never touch their operands. The element-wise and
matrix kernels are provided by the active compute backend (see package backend).
*/
package ndarray
