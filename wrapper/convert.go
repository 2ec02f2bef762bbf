package wrapper

import (
	"fmt"
	"math"
	"strconv"

	"github.com/evilsocket/fastmath/ndarray"

	"github.com/robertkrimen/otto"
)

// handler is the signature of every native function defined in the VM.
type handler = func(call otto.FunctionCall) otto.Value

func typeError(vm *otto.Otto, format string, args ...interface{}) {
	panic(vm.MakeTypeError(fmt.Sprintf(format, args...)))
}

// throw raises err inside the VM, errors coming from the ndarray package
// are named after their class.
func throw(vm *otto.Otto, err error) {
	name := ndarray.Kind(err)
	if name == "" {
		name = "Error"
	}
	panic(vm.MakeCustomError(name, err.Error()))
}

func toValue(vm *otto.Otto, v interface{}) otto.Value {
	value, err := vm.ToValue(v)
	if err != nil {
		throw(vm, err)
	}
	return value
}

func toFloat64(vm *otto.Otto, v otto.Value) float64 {
	if !v.IsNumber() {
		typeError(vm, "expected a number, got %s", v.String())
	}
	f, err := v.ToFloat()
	if err != nil {
		throw(vm, err)
	}
	return f
}

func toFloat(vm *otto.Otto, v otto.Value) float32 {
	return float32(toFloat64(vm, v))
}

func toInt(vm *otto.Otto, v otto.Value) int {
	if !v.IsNumber() {
		typeError(vm, "expected an integer, got %s", v.String())
	}
	f, err := v.ToFloat()
	if err != nil {
		throw(vm, err)
	} else if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		typeError(vm, "expected an integer, got %s", v.String())
	} else if f < math.MinInt32 || f > math.MaxInt32 {
		typeError(vm, "integer %s out of range", v.String())
	}
	return int(f)
}

// sequenceLength returns the object and the number of elements of a JS
// array or of any object with a length property and indexed elements.
func sequenceLength(vm *otto.Otto, v otto.Value) (*otto.Object, int) {
	if !v.IsObject() {
		typeError(vm, "expected a sequence, got %s", v.String())
	}

	obj := v.Object()
	length, err := obj.Get("length")
	if err != nil {
		throw(vm, err)
	} else if !length.IsNumber() {
		typeError(vm, "expected a sequence, got %s", v.String())
	}

	n := toInt(vm, length)
	if n < 0 {
		typeError(vm, "invalid sequence length %d", n)
	}
	return obj, n
}

func elements(vm *otto.Otto, obj *otto.Object, n int) []otto.Value {
	seq := make([]otto.Value, n)
	for i := range seq {
		v, err := obj.Get(strconv.Itoa(i))
		if err != nil {
			throw(vm, err)
		}
		seq[i] = v
	}
	return seq
}

// toInts converts shapes and indexes, past MaxDims+1 elements the
// shape and index checks fail regardless of the remaining values.
func toInts(vm *otto.Otto, v otto.Value) []int {
	obj, n := sequenceLength(vm, v)
	if n > ndarray.MaxDims+1 {
		n = ndarray.MaxDims + 1
	}

	seq := elements(vm, obj, n)
	ints := make([]int, len(seq))
	for i, elem := range seq {
		ints[i] = toInt(vm, elem)
	}
	return ints
}

func toFloats(vm *otto.Otto, seq []otto.Value) []float32 {
	floats := make([]float32, len(seq))
	for i, elem := range seq {
		floats[i] = toFloat(vm, elem)
	}
	return floats
}

// defineGetter defines a read only, enumerable property of obj computed
// by get on every access.
func defineGetter(vm *otto.Otto, obj *otto.Object, name string, get handler) error {
	desc, err := vm.Object(`({enumerable: true})`)
	if err != nil {
		return err
	} else if err = desc.Set("get", get); err != nil {
		return err
	}
	_, err = vm.Call("Object.defineProperty", nil, obj, name, desc)
	return err
}

// newArray creates a JS array with the given elements.
func newArray(vm *otto.Otto, elems []interface{}) otto.Value {
	arr, err := vm.Object(`[]`)
	if err != nil {
		throw(vm, err)
	} else if len(elems) > 0 {
		if _, err = arr.Call("push", elems...); err != nil {
			throw(vm, err)
		}
	}
	return arr.Value()
}

func intsArray(vm *otto.Otto, ints []int) otto.Value {
	elems := make([]interface{}, len(ints))
	for i, v := range ints {
		elems[i] = v
	}
	return newArray(vm, elems)
}

func floatsArray(vm *otto.Otto, floats []float32) otto.Value {
	elems := make([]interface{}, len(floats))
	for i, v := range floats {
		elems[i] = float64(v)
	}
	return newArray(vm, elems)
}
