package wrapper

import (
	"testing"

	"github.com/evilsocket/fastmath/backend"

	. "github.com/stretchr/testify/require"
)

func TestSelfTest(t *testing.T) {
	for _, name := range backend.Available() {
		NoError(t, backend.Use(name))
		vm := newTestVM(t)
		NoError(t, SelfTest(vm, true), name)
		NoError(t, SelfTest(vm, false), name)
	}
	NoError(t, backend.Use("blas32"))
}

func TestReferenceMatchesNative(t *testing.T) {
	vm := newTestVM(t)
	NoError(t, LoadReference(vm))

	for _, code := range []string{
		"make([3, 4]).fill(1).sub(make([3, 4]).fill(0.5)).data()",
		"make([3]).set([1, 2, 3]).mul(make([3]).set([4, 5, 6])).data()",
		"make([3]).set([1, 2, 3]).mul(make([2, 3]).set([7, 8, 9, 10, 11, 12])).data()",
		"make([2, 2]).set([1, 2, 3, 4]).mul(make([1, 2]).set([5, 6])).shape",
	} {
		_, err := vm.Run("var make = fastmath.ndarray;")
		NoError(t, err)
		native := runNumbers(t, vm, code)

		_, err = vm.Run("var make = JSNDArray;")
		NoError(t, err)
		Equal(t, native, runNumbers(t, vm, code), code)
	}

	Equal(t, "RankError", runError(t, vm, "JSNDArray([2, 2, 2]).mul(JSNDArray([2]))"))
	Equal(t, "ShapeError", runError(t, vm, "JSNDArray([1, 2, 3, 4])"))
}

func TestRunBenchmarks(t *testing.T) {
	vm := newTestVM(t)
	results, err := RunBenchmarks(vm, 10)
	NoError(t, err)
	Len(t, results, len(Benchmarks))
	for i, res := range results {
		Equal(t, Benchmarks[i].Name, res.Name)
		Equal(t, 10, res.Iterations)
		Equal(t, res.Elapsed/10, res.PerOp())
	}
}

func BenchmarkScriptNDArray(b *testing.B) {
	vm := newTestVM(b)
	if err := LoadReference(vm); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vm.Run("benchArrays(JSNDArray, 1);"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNativeNDArray(b *testing.B) {
	vm := newTestVM(b)
	if err := LoadReference(vm); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vm.Run("benchArrays(fastmath.ndarray, 1);"); err != nil {
			b.Fatal(err)
		}
	}
}
