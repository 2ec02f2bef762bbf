package backend

import (
	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Add(dst, a, b []float32) {
	for i, va := range a {
		dst[i] = va + b[i]
	}
}

func (impl naive) Sub(dst, a, b []float32) {
	for i, va := range a {
		dst[i] = va - b[i]
	}
}

func (impl naive) MatMul(dst, a, b []float32, rows, inner, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := float32(0)
			for v := 0; v < inner; v++ {
				s += a[v+r*inner] * b[c+v*cols]
			}
			dst[c+r*cols] = s
		}
	}
}
