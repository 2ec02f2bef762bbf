package wrapper

import (
	"testing"

	. "github.com/stretchr/testify/require"
)

const testErrorMessage = "foobar"

func TestContext(t *testing.T) {
	ctx := NewContext()
	NotNil(t, ctx)
	False(t, ctx.IsError())
	Empty(t, ctx.Message())

	ctx.Error(testErrorMessage)
	True(t, ctx.IsError())
	Equal(t, testErrorMessage, ctx.Message())
	EqualError(t, ctx.Err(), testErrorMessage)

	ctx.Reset()
	NoError(t, ctx.Err())
	False(t, ctx.IsError())
	Empty(t, ctx.Message())
}

func TestContextFromScript(t *testing.T) {
	vm := newTestVM(t)
	ctx := NewContext()
	NoError(t, vm.Set("ctx", ctx))

	_, err := vm.Run(`ctx.Error("` + testErrorMessage + `");`)
	NoError(t, err)
	True(t, ctx.IsError())
	Equal(t, testErrorMessage, ctx.Message())
}
