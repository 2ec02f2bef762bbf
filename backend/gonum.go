package backend

import (
	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/mat"
)

type gonum struct {
}

func widen(data []float32) []float64 {
	wide := make([]float64, len(data))
	for i, v := range data {
		wide[i] = float64(v)
	}
	return wide
}

func narrow(dst []float32, data []float64) {
	for i, v := range data {
		dst[i] = float32(v)
	}
}

func (impl gonum) Name() string {
	return "gonum"
}

func (impl gonum) Space() uint64 {
	return memory.TotalMemory()
}

func (impl gonum) Add(dst, a, b []float32) {
	n := len(dst)
	res := mat.NewVecDense(n, nil)
	res.AddVec(mat.NewVecDense(n, widen(a)), mat.NewVecDense(n, widen(b)))
	narrow(dst, res.RawVector().Data)
}

func (impl gonum) Sub(dst, a, b []float32) {
	n := len(dst)
	res := mat.NewVecDense(n, nil)
	res.SubVec(mat.NewVecDense(n, widen(a)), mat.NewVecDense(n, widen(b)))
	narrow(dst, res.RawVector().Data)
}

func (impl gonum) MatMul(dst, a, b []float32, rows, inner, cols int) {
	res := mat.NewDense(rows, cols, nil)
	res.Mul(mat.NewDense(rows, inner, widen(a)), mat.NewDense(inner, cols, widen(b)))
	narrow(dst, res.RawMatrix().Data)
}
