package wrapper

import (
	"github.com/evilsocket/fastmath/backend"
	"github.com/evilsocket/fastmath/ndarray"

	"github.com/robertkrimen/otto"
)

// ModuleName is the name of the global object defined by Register.
const ModuleName = "fastmath"

var moduleTable = map[string]handler{
	"ndarray": moduleNDArray,
	"add":     moduleAdd,
	"opadd":   moduleOpAdd,
	"sub":     moduleSub,
	"matmul":  moduleMatMul,
}

// Register defines the fastmath module object in the VM.
func Register(vm *otto.Otto) error {
	module, err := vm.Object(`({})`)
	if err != nil {
		return err
	}

	for name, cb := range moduleTable {
		if err = module.Set(name, cb); err != nil {
			return err
		}
	}

	// follows the active backend
	if err = defineGetter(vm, module, "backend", moduleBackend); err != nil {
		return err
	}

	return vm.Set(ModuleName, module)
}

// ndarray([d0, d1, d2]) or ndarray(d0, d1, d2)
func moduleNDArray(call otto.FunctionCall) otto.Value {
	var shape []int
	if arg := call.Argument(0); arg.IsNumber() {
		shape = make([]int, len(call.ArgumentList))
		for i, d := range call.ArgumentList {
			shape[i] = toInt(call.Otto, d)
		}
	} else {
		shape = toInts(call.Otto, arg)
	}

	a, err := ndarray.New(shape...)
	if err != nil {
		throw(call.Otto, err)
	}
	return wrap(call.Otto, a)
}

func moduleBackend(call otto.FunctionCall) otto.Value {
	return toValue(call.Otto, backend.Name())
}

func moduleAdd(call otto.FunctionCall) otto.Value {
	a := toInt(call.Otto, call.Argument(0))
	b := toInt(call.Otto, call.Argument(1))
	return toValue(call.Otto, a+b)
}

func moduleOpAdd(call otto.FunctionCall) otto.Value {
	lhs, rhs := call.Argument(0), call.Argument(1)
	if lhs.IsNumber() && rhs.IsNumber() {
		return toValue(call.Otto, toFloat64(call.Otto, lhs)+toFloat64(call.Otto, rhs))
	}
	return binary(call, arrayArg(call, 0), arrayArg(call, 1), ndarray.Add)
}

func moduleSub(call otto.FunctionCall) otto.Value {
	return binary(call, arrayArg(call, 0), arrayArg(call, 1), ndarray.Sub)
}

func moduleMatMul(call otto.FunctionCall) otto.Value {
	return binary(call, arrayArg(call, 0), arrayArg(call, 1), ndarray.MatMul)
}
