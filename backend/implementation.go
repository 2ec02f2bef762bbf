package backend

// each backend must implement these methods, slices are row-major and
// already validated by the caller.
type implementation interface {
	Name() string
	Space() uint64
	// Add and Sub compute dst[i] = a[i] +/- b[i].
	Add(dst, a, b []float32)
	Sub(dst, a, b []float32)
	// MatMul computes dst[c + r*cols] = Σv a[v + r*inner] * b[c + v*cols].
	MatMul(dst, a, b []float32, rows, inner, cols int)
}
