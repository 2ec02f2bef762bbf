package storage

import (
	"testing"

	. "github.com/stretchr/testify/require"

	"github.com/evilsocket/fastmath/ndarray"
)

func TestEncodeDecode(t *testing.T) {
	a, err := ndarray.FromData([]int{2, 1, 3}, []float32{1, 2, 3, 4, 5, 6})
	NoError(t, err)

	encoded := Encode("a", a)
	Equal(t, "a", encoded.Name)
	Equal(t, []uint32{2, 1, 3}, encoded.Shape)
	Equal(t, a.Data(), encoded.Data)

	decoded, err := Decode(encoded)
	NoError(t, err)
	True(t, a.Equal(decoded))
}

func TestCompressedText(t *testing.T) {
	text, err := ToCompressedText(newTestArray())
	NoError(t, err)
	NotEmpty(t, text)

	array, err := FromCompressedText(text)
	NoError(t, err)
	Equal(t, testArray.Id, array.Id)
	Equal(t, testArray.Name, array.Name)
	Equal(t, testArray.Shape, array.Shape)
	Equal(t, testArray.Data, array.Data)
}

func TestFromCompressedTextWithInvalidData(t *testing.T) {
	_, err := FromCompressedText("not base64 at all!")
	Error(t, err)
	_, err = FromCompressedText("aGVsbG8gd29ybGQ=")
	Error(t, err)
}
