package wrapper

import (
	"errors"
	"sync"
)

// Context is passed to scripts as the ctx global, a script calls
// ctx.Error(message) to make its evaluation fail.
type Context struct {
	mu  sync.RWMutex
	err error
}

// NewContext creates a new *Context object.
func NewContext() *Context {
	return &Context{}
}

// Error sets this context to an error state with the given message.
func (ctx *Context) Error(msg string) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.err = errors.New(msg)
}

// IsError returns true if an error has been set in this context.
func (ctx *Context) IsError() bool {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.err != nil
}

// Err returns the error set by the script or nil.
func (ctx *Context) Err() error {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.err
}

// Message returns the error message for this context.
func (ctx *Context) Message() string {
	if err := ctx.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Reset resets this context instance to a neutral state.
func (ctx *Context) Reset() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.err = nil
}
