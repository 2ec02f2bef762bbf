package wrapper

import (
	"github.com/evilsocket/fastmath/storage"

	"github.com/robertkrimen/otto"
)

// ArraysName is the name of the global object defined by BindArrays.
const ArraysName = "arrays"

// BindArrays defines the arrays object in the VM, giving scripts access
// to copies of the arrays persisted in the store. Changes to the copies
// are persisted with arrays.save or arrays.update.
func BindArrays(vm *otto.Otto, store *storage.Arrays) error {
	arrays, err := vm.Object(`({})`)
	if err != nil {
		return err
	}

	open := func(call otto.FunctionCall, id uint64) otto.Value {
		a, err := store.Open(id)
		if err == storage.ErrNotFound {
			return otto.NullValue()
		} else if err != nil {
			throw(call.Otto, err)
		}
		return wrap(call.Otto, a)
	}

	methods := map[string]handler{
		"find": func(call otto.FunctionCall) otto.Value {
			id := toInt(call.Otto, call.Argument(0))
			if id < 0 {
				return otto.NullValue()
			}
			return open(call, uint64(id))
		},
		"findByName": func(call otto.FunctionCall) otto.Value {
			if array := store.FindByName(call.Argument(0).String()); array != nil {
				return open(call, array.Id)
			}
			return otto.NullValue()
		},
		"save": func(call otto.FunctionCall) otto.Value {
			name := call.Argument(0).String()
			id, err := store.Save(name, arrayArg(call, 1))
			if err != nil {
				throw(call.Otto, err)
			}
			return toValue(call.Otto, id)
		},
		"update": func(call otto.FunctionCall) otto.Value {
			id := toInt(call.Otto, call.Argument(0))
			if id < 0 {
				return otto.FalseValue()
			}
			err := store.Replace(uint64(id), arrayArg(call, 1))
			if err == storage.ErrNotFound {
				return otto.FalseValue()
			} else if err != nil {
				throw(call.Otto, err)
			}
			return otto.TrueValue()
		},
		"size": func(call otto.FunctionCall) otto.Value {
			return toValue(call.Otto, store.Size())
		},
	}

	for name, cb := range methods {
		if err = arrays.Set(name, cb); err != nil {
			return err
		}
	}

	return vm.Set(ArraysName, arrays)
}

// Bind defines the fastmath module, the arrays store and the given context
// in the VM.
func Bind(vm *otto.Otto, store *storage.Arrays, ctx *Context) error {
	if err := Register(vm); err != nil {
		return err
	} else if err = BindArrays(vm, store); err != nil {
		return err
	}
	return vm.Set("ctx", ctx)
}
