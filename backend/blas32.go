package backend

import (
	"github.com/pbnjay/memory"
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

type blas struct {
}

func vector(data []float32) blas32.Vector {
	return blas32.Vector{
		Inc:  1,
		Data: data,
	}
}

func general(rows, cols int, data []float32) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   data,
	}
}

func (impl blas) Name() string {
	return "blas32"
}

func (impl blas) Space() uint64 {
	return memory.TotalMemory()
}

func (impl blas) Add(dst, a, b []float32) {
	copy(dst, a)
	blas32.Axpy(len(dst), 1, vector(b), vector(dst))
}

func (impl blas) Sub(dst, a, b []float32) {
	copy(dst, a)
	blas32.Axpy(len(dst), -1, vector(b), vector(dst))
}

func (impl blas) MatMul(dst, a, b []float32, rows, inner, cols int) {
	blas32.Gemm(gblas.NoTrans, gblas.NoTrans,
		1, general(rows, inner, a), general(inner, cols, b),
		0, general(rows, cols, dst))
}
