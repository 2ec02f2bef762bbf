package service

import (
	"github.com/robertkrimen/otto"
)

// VM is a clone of the root VM borrowed from an ExecutionPool, callers
// must Release it once done.
type VM struct {
	*otto.Otto
	pool  *ExecutionPool
	index int
}

// Release returns the VM to its pool.
func (vm *VM) Release() {
	vm.pool.free <- vm.index
}

// ExecutionPool holds a fixed number of copies of a root VM, each goroutine
// evaluating a script borrows its own copy.
type ExecutionPool struct {
	vms  []*VM
	free chan int
}

// CreateExecutionPool copies root size times, DefaultPoolSize is used
// when size is not positive.
func CreateExecutionPool(root *otto.Otto, size int) *ExecutionPool {
	if size <= 0 {
		size = DefaultPoolSize
	}

	p := &ExecutionPool{
		vms:  make([]*VM, size),
		free: make(chan int, size),
	}
	for i := range p.vms {
		p.vms[i] = &VM{Otto: root.Copy(), pool: p, index: i}
		p.free <- i
	}
	return p
}

// Size returns the number of VMs in the pool.
func (p *ExecutionPool) Size() int {
	return len(p.vms)
}

// Available returns the number of VMs not currently borrowed.
func (p *ExecutionPool) Available() int {
	return len(p.free)
}

// Get blocks until a VM is available and returns it.
func (p *ExecutionPool) Get() *VM {
	return p.vms[<-p.free]
}
