package wrapper

import (
	"testing"

	"github.com/evilsocket/fastmath/ndarray"

	. "github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	vm := newTestVM(t)
	a, err := ndarray.FromData([]int{2, 2}, []float32{1, 2, 3, 4})
	NoError(t, err)

	v, err := Wrap(vm, a)
	NoError(t, err)

	unwrapped, ok := Unwrap(v)
	True(t, ok)
	True(t, a == unwrapped)

	NoError(t, vm.Set("a", v))
	Equal(t, []float64{1, 2, 3, 4}, runNumbers(t, vm, "a.data()"))
	run(t, vm, "a.at([1, 1], 42)")

	// scripts share the native storage
	f, err := a.At(1, 1)
	NoError(t, err)
	Equal(t, float32(42), f)
}

func TestUnwrapNotAnArray(t *testing.T) {
	vm := newTestVM(t)
	for _, code := range []string{"1", "'foo'", "({})", "[1, 2]", "null", "({__ndarray__: 1})"} {
		v, err := vm.Run("(" + code + ")")
		NoError(t, err)
		_, ok := Unwrap(v)
		False(t, ok, code)
	}
}

func TestArrayFillAndAt(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, "var a = fastmath.ndarray([3, 4]).fill(1.5);")
	for _, idx := range []string{"[0, 0]", "[2, 3]", "[1, 2]"} {
		EqualValues(t, 1.5, run(t, vm, "a.at("+idx+")"))
	}
	EqualValues(t, 10, run(t, vm, "a.at([1, 2], 10)"))
	EqualValues(t, 10, run(t, vm, "a.data()[7]"))
	EqualValues(t, 3, run(t, vm, "fastmath.ndarray([4]).fill(3).at(2)"))
}

func TestArrayAtErrors(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, "var a = fastmath.ndarray([3, 4]);")
	Equal(t, "IndexArityError", runError(t, vm, "a.at([0])"))
	Equal(t, "IndexArityError", runError(t, vm, "a.at([0, 0, 0])"))
	Equal(t, "IndexRangeError", runError(t, vm, "a.at([3, 0])"))
	Equal(t, "IndexRangeError", runError(t, vm, "a.at([0, -1], 1)"))
	Equal(t, "TypeError", runError(t, vm, "a.at(['x', 0])"))
	Equal(t, "TypeError", runError(t, vm, "a.at([0, 0], 'x')"))
}

func TestArraySet(t *testing.T) {
	vm := newTestVM(t)
	Equal(t, []float64{1, 2, 3, 4, 5, 6}, runNumbers(t, vm, `
		var a = fastmath.ndarray([3, 2]).set([1, 2, 3, 4, 5, 6]);
		a.data();
	`))
	EqualValues(t, 6, run(t, vm, "a.at([2, 1])"))
}

func TestArraySetErrorsLeaveArrayUntouched(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, "var a = fastmath.ndarray([3]).fill(7);")
	Equal(t, "LengthMismatchError", runError(t, vm, "a.set([1, 2])"))
	Equal(t, "TypeError", runError(t, vm, "a.set([1, 'x', 3])"))
	Equal(t, "TypeError", runError(t, vm, "a.set(5)"))
	Equal(t, []float64{7, 7, 7}, runNumbers(t, vm, "a.data()"))
}

func TestArrayBinaryOps(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, `
		var a = fastmath.ndarray([3, 4]).fill(1);
		var b = fastmath.ndarray(a.shape).fill(2);
	`)
	Equal(t, []float64{3, 4}, runNumbers(t, vm, "a.add(b).shape"))
	EqualValues(t, 3, run(t, vm, "a.add(b).at([2, 3])"))
	EqualValues(t, -1, run(t, vm, "a.sub(b).at([0, 0])"))
	// operands are never mutated
	EqualValues(t, 1, run(t, vm, "a.at([0, 0])"))
	EqualValues(t, 2, run(t, vm, "b.at([0, 0])"))

	// only the number of elements must match
	Equal(t, []float64{2, 6}, runNumbers(t, vm, "fastmath.ndarray([2, 6]).add(fastmath.ndarray([12])).shape"))
	Equal(t, "LengthMismatchError", runError(t, vm, "a.add(fastmath.ndarray([5]))"))
	Equal(t, "TypeError", runError(t, vm, "a.sub([1, 2])"))
}

func TestArrayMul(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, `
		var l = fastmath.ndarray([4, 3]).set([1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]);
		var r = fastmath.ndarray([2, 4]).set([1, 2, 3, 4, 5, 6, 7, 8]);
		var m = l.mul(r);
	`)
	Equal(t, []float64{2, 3}, runNumbers(t, vm, "m.shape"))
	Equal(t, []float64{50, 60, 114, 140, 178, 220}, runNumbers(t, vm, "m.data()"))
	Equal(t, "ShapeError", runError(t, vm, "r.mul(r)"))
	Equal(t, "RankError", runError(t, vm, "fastmath.ndarray([2, 2, 2]).mul(l)"))
}

func TestExport(t *testing.T) {
	vm := newTestVM(t)
	Equal(t, map[string]interface{}{
		"name": "test",
		"result": map[string]interface{}{
			"shape": []int{2},
			"data":  []float32{1, 1},
		},
		"list": []interface{}{"a", true},
	}, run(t, vm, `({
		name: "test",
		result: fastmath.ndarray([2]).fill(1),
		list: ["a", true],
		skipped: function() {}
	})`))

	Nil(t, run(t, vm, "(function() {})"))
}

func TestArrayQueriesAreReadOnly(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, `var a = fastmath.ndarray([4, 3]);
		a.size = 99;
		a.ndim = 7;
		a.shape.push(5);
		a.shape[0] = 1;`)

	EqualValues(t, 12, run(t, vm, "a.size"))
	EqualValues(t, 2, run(t, vm, "a.ndim"))
	Equal(t, []float64{4, 3}, runNumbers(t, vm, "a.shape"))
	EqualValues(t, 12, run(t, vm, "a.data().length"))
	Equal(t, false, run(t, vm, "a.shape === a.shape"))
}

func TestMalformedSequences(t *testing.T) {
	vm := newTestVM(t)
	run(t, vm, "var a = fastmath.ndarray([2]);")

	for code, expected := range map[string]string{
		"fastmath.ndarray({length: -1})":                              "TypeError",
		"fastmath.ndarray({length: 'two'})":                           "TypeError",
		"fastmath.ndarray({length: 1.5})":                             "TypeError",
		"fastmath.ndarray({length: 1e12})":                            "TypeError",
		"fastmath.ndarray({length: Infinity})":                        "TypeError",
		"fastmath.ndarray({length: 2147483647})":                      "TypeError",
		"fastmath.ndarray({length: 5, 0: 1, 1: 1, 2: 1, 3: 1, 4: 1})": "ShapeError",
		"a.set({length: -5})":                                         "TypeError",
		"a.set({length: 2147483647})":                                 "LengthMismatchError",
		"a.at({length: -1})":                                          "TypeError",
		"a.at({length: 2147483647})":                                  "TypeError",
	} {
		Equal(t, expected, runError(t, vm, code), code)
	}

	// array like objects are still accepted
	Equal(t, []float64{3, 2}, runNumbers(t, vm, "fastmath.ndarray({length: 2, 0: 3, 1: 2}).shape"))
	Equal(t, []float64{7, 8}, runNumbers(t, vm, "a.set({length: 2, 0: 7, 1: 8}).data()"))
}
