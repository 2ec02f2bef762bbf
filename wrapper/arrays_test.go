package wrapper

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/evilsocket/fastmath/ndarray"
	"github.com/evilsocket/fastmath/storage"

	"github.com/evilsocket/islazy/log"
	"github.com/robertkrimen/otto"
	. "github.com/stretchr/testify/require"
)

func init() {
	log.Level = log.ERROR
}

func setupArrays(t *testing.T) (*otto.Otto, *storage.Arrays) {
	folder, err := ioutil.TempDir("", "fastmath.wrapper.test")
	NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(folder) })

	store, err := storage.LoadArrays(folder)
	NoError(t, err)

	identity, err := ndarray.FromData([]int{2, 2}, []float32{1, 0, 0, 1})
	NoError(t, err)
	_, err = store.Save("identity", identity)
	NoError(t, err)

	vm := otto.New()
	NoError(t, Bind(vm, store, NewContext()))
	return vm, store
}

func TestArraysFind(t *testing.T) {
	vm, store := setupArrays(t)
	EqualValues(t, 1, run(t, vm, "arrays.size()"))

	id := store.FindByName("identity").Id
	NoError(t, vm.Set("id", id))
	Equal(t, map[string]interface{}{
		"shape": []int{2, 2},
		"data":  []float32{1, 0, 0, 1},
	}, run(t, vm, "arrays.find(id)"))

	Nil(t, run(t, vm, "arrays.find(id + 1000)"))
	Nil(t, run(t, vm, "arrays.find(-1)"))
	Equal(t, "TypeError", runError(t, vm, "arrays.find('foo')"))
}

func TestArraysFindReturnsACopy(t *testing.T) {
	vm, store := setupArrays(t)
	run(t, vm, "arrays.findByName('identity').fill(9)")

	a, err := store.Open(store.FindByName("identity").Id)
	NoError(t, err)
	Equal(t, []float32{1, 0, 0, 1}, a.Data())
}

func TestArraysFindByName(t *testing.T) {
	vm, _ := setupArrays(t)
	Equal(t, []float64{2, 2}, runNumbers(t, vm, "arrays.findByName('identity').shape"))
	Nil(t, run(t, vm, "arrays.findByName('nope')"))
}

func TestArraysSave(t *testing.T) {
	vm, store := setupArrays(t)
	id := run(t, vm, `
		var m = arrays.findByName('identity').mul(fastmath.ndarray([2, 2]).set([1, 2, 3, 4]));
		arrays.save('product', m);
	`)
	EqualValues(t, 2, run(t, vm, "arrays.size()"))
	Equal(t, 2, store.Size())

	saved := store.FindByName("product")
	NotNil(t, saved)
	EqualValues(t, saved.Id, id)
	Equal(t, []float32{1, 2, 3, 4}, saved.Data)

	Equal(t, "TypeError", runError(t, vm, "arrays.save('nope', [1, 2])"))
}

func TestArraysUpdate(t *testing.T) {
	vm, store := setupArrays(t)
	id := store.FindByName("identity").Id
	NoError(t, vm.Set("id", id))

	Equal(t, true, run(t, vm, "arrays.update(id, arrays.find(id).fill(3))"))
	a, err := store.Open(id)
	NoError(t, err)
	Equal(t, []float32{3, 3, 3, 3}, a.Data())
	Equal(t, "identity", store.Find(id).Name)

	// shapes can change, names are kept
	Equal(t, true, run(t, vm, "arrays.update(id, fastmath.ndarray([3]).fill(1))"))
	Equal(t, []uint32{3}, store.FindByName("identity").Shape)

	Equal(t, false, run(t, vm, "arrays.update(id + 1000, fastmath.ndarray([3]))"))
	Equal(t, false, run(t, vm, "arrays.update(-1, fastmath.ndarray([3]))"))
	Equal(t, "TypeError", runError(t, vm, "arrays.update(id, 1)"))
}
