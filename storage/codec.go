package storage

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"io/ioutil"

	"github.com/golang/protobuf/proto"

	"github.com/evilsocket/fastmath/ndarray"
	pb "github.com/evilsocket/fastmath/proto"
)

// Encode converts an array to its protobuf representation.
func Encode(name string, a *ndarray.NDArray) *pb.Array {
	shape := a.Shape()
	pbShape := make([]uint32, len(shape))
	for i, d := range shape {
		pbShape[i] = uint32(d)
	}
	return &pb.Array{
		Name:  name,
		Shape: pbShape,
		Data:  a.Data(),
	}
}

// Decode converts a protobuf array to a new ndarray.NDArray, validating
// its shape and the number of elements.
func Decode(array *pb.Array) (*ndarray.NDArray, error) {
	shape := make([]int, len(array.Shape))
	for i, d := range array.Shape {
		shape[i] = int(d)
	}
	return ndarray.FromData(shape, array.Data)
}

// ToCompressedText serializes the array and returns it as base64 encoded
// zlib compressed text.
func ToCompressedText(array *pb.Array) (str string, err error) {
	var buff bytes.Buffer
	var data []byte

	if data, err = proto.Marshal(array); err != nil {
		return
	}

	w := zlib.NewWriter(&buff)
	if _, err = w.Write(data); err != nil {
		return
	} else if err = w.Close(); err != nil {
		return
	}

	str = base64.StdEncoding.EncodeToString(buff.Bytes())
	return
}

// FromCompressedText parses a string created with ToCompressedText.
func FromCompressedText(msg string) (*pb.Array, error) {
	var array pb.Array

	data, err := base64.StdEncoding.DecodeString(msg)
	if err != nil {
		return nil, err
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if data, err = ioutil.ReadAll(r); err != nil {
		return nil, err
	} else if err = proto.Unmarshal(data, &array); err != nil {
		return nil, err
	}
	return &array, nil
}
