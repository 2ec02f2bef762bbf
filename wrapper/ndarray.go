package wrapper

import (
	"fmt"

	"github.com/evilsocket/fastmath/ndarray"

	"github.com/robertkrimen/otto"
)

// property holding the native array of a wrapped object
const hiddenKey = "__ndarray__"

// method is the signature of a native ndarray object method.
type method func(call otto.FunctionCall, a *ndarray.NDArray) otto.Value

// filled by init, the methods create wrapped arrays themselves
var arrayMethods map[string]method

func init() {
	arrayMethods = map[string]method{
		"fill":     arrayFill,
		"set":      arraySet,
		"at":       arrayAt,
		"add":      arrayAdd,
		"sub":      arraySub,
		"mul":      arrayMul,
		"data":     arrayData,
		"toString": arrayToString,
	}
}

// Wrap converts a native array to a script object bound to the VM.
func Wrap(vm *otto.Otto, a *ndarray.NDArray) (otto.Value, error) {
	obj, err := vm.Object(`({})`)
	if err != nil {
		return otto.UndefinedValue(), err
	}

	if err = obj.Set(hiddenKey, a); err != nil {
		return otto.UndefinedValue(), err
	}

	// read only, shape is a new array on every access
	queries := map[string]handler{
		"size": func(call otto.FunctionCall) otto.Value {
			return toValue(call.Otto, a.Size())
		},
		"ndim": func(call otto.FunctionCall) otto.Value {
			return toValue(call.Otto, a.Rank())
		},
		"shape": func(call otto.FunctionCall) otto.Value {
			return intsArray(call.Otto, a.Shape())
		},
	}
	for name, get := range queries {
		if err = defineGetter(vm, obj, name, get); err != nil {
			return otto.UndefinedValue(), err
		}
	}

	for name, m := range arrayMethods {
		m := m
		if err = obj.Set(name, func(call otto.FunctionCall) otto.Value {
			return m(call, a)
		}); err != nil {
			return otto.UndefinedValue(), err
		}
	}

	return obj.Value(), nil
}

func wrap(vm *otto.Otto, a *ndarray.NDArray) otto.Value {
	v, err := Wrap(vm, a)
	if err != nil {
		throw(vm, err)
	}
	return v
}

// Unwrap returns the native array of a script object created by Wrap.
func Unwrap(v otto.Value) (*ndarray.NDArray, bool) {
	if !v.IsObject() {
		return nil, false
	}

	hidden, err := v.Object().Get(hiddenKey)
	if err != nil || !hidden.IsObject() {
		return nil, false
	}

	exported, err := hidden.Export()
	if err != nil {
		return nil, false
	}
	a, ok := exported.(*ndarray.NDArray)
	return a, ok && a != nil
}

func arrayArg(call otto.FunctionCall, i int) *ndarray.NDArray {
	a, ok := Unwrap(call.Argument(i))
	if !ok {
		typeError(call.Otto, "argument %d is not an ndarray", i)
	}
	return a
}

func arrayFill(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	a.Fill(toFloat(call.Otto, call.Argument(0)))
	return call.This
}

// values are converted before any write so a failed conversion leaves the
// array untouched.
func arraySet(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	obj, n := sequenceLength(call.Otto, call.Argument(0))
	if n != a.Size() {
		throw(call.Otto, fmt.Errorf("%w: expected %d values, got %d", ndarray.ErrLengthMismatch, a.Size(), n))
	}
	if err := a.Set(toFloats(call.Otto, elements(call.Otto, obj, n))); err != nil {
		throw(call.Otto, err)
	}
	return call.This
}

func arrayAt(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	var index []int
	if arg := call.Argument(0); arg.IsNumber() {
		index = []int{toInt(call.Otto, arg)}
	} else {
		index = toInts(call.Otto, arg)
	}

	var v float32
	var err error
	if len(call.ArgumentList) > 1 {
		v, err = a.Store(index, toFloat(call.Otto, call.Argument(1)))
	} else {
		v, err = a.At(index...)
	}
	if err != nil {
		throw(call.Otto, err)
	}
	return toValue(call.Otto, float64(v))
}

func binary(call otto.FunctionCall, lhs, rhs *ndarray.NDArray, op func(a, b *ndarray.NDArray) (*ndarray.NDArray, error)) otto.Value {
	res, err := op(lhs, rhs)
	if err != nil {
		throw(call.Otto, err)
	}
	return wrap(call.Otto, res)
}

func arrayAdd(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	return binary(call, a, arrayArg(call, 0), ndarray.Add)
}

func arraySub(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	return binary(call, a, arrayArg(call, 0), ndarray.Sub)
}

func arrayMul(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	return binary(call, a, arrayArg(call, 0), ndarray.MatMul)
}

func arrayData(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	return floatsArray(call.Otto, a.Data())
}

func arrayToString(call otto.FunctionCall, a *ndarray.NDArray) otto.Value {
	return toValue(call.Otto, a.String())
}
