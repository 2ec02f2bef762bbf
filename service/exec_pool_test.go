package service

import (
	"sync"
	"testing"

	"github.com/robertkrimen/otto"
	"github.com/stretchr/testify/require"
)

func TestExecutionPool(t *testing.T) {
	root := otto.New()
	_, err := root.Run("var answer = 42;")
	require.NoError(t, err)

	pool := CreateExecutionPool(root, 3)
	require.Equal(t, 3, pool.Size())

	seen := map[int]bool{}
	vms := make([]*VM, 0, 3)
	for i := 0; i < 3; i++ {
		vm := pool.Get()
		require.False(t, seen[vm.index])
		seen[vm.index] = true
		vms = append(vms, vm)

		v, err := vm.Get("answer")
		require.NoError(t, err)
		n, err := v.ToInteger()
		require.NoError(t, err)
		require.Equal(t, int64(42), n)
	}

	for _, vm := range vms {
		vm.Release()
	}
}

func TestExecutionPoolClonesAreIndependent(t *testing.T) {
	pool := CreateExecutionPool(otto.New(), 2)
	a, b := pool.Get(), pool.Get()
	defer a.Release()
	defer b.Release()

	require.NoError(t, a.Set("x", 1))
	v, err := b.Get("x")
	require.NoError(t, err)
	require.True(t, v.IsUndefined())
}

func TestExecutionPoolDefaultSize(t *testing.T) {
	require.Equal(t, DefaultPoolSize, CreateExecutionPool(otto.New(), 0).Size())
}

func TestExecutionPoolConcurrency(t *testing.T) {
	pool := CreateExecutionPool(otto.New(), 2)
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vm := pool.Get()
			defer vm.Release()
			if _, err := vm.Run("var i = 0; for (var j = 0; j < 100; j++) { i += j; }"); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, 2, pool.Available())
}
