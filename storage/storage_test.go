package storage

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/evilsocket/islazy/log"

	pb "github.com/evilsocket/fastmath/proto"
)

const testArrays = 5

var testArray = pb.Array{
	Id:    666,
	Name:  "identity",
	Shape: []uint32{2, 2},
	Data:  []float32{1, 0, 0, 1},
}

func init() {
	log.Level = log.ERROR
}

func newTestArray() *pb.Array {
	a := testArray
	a.Shape = append([]uint32(nil), testArray.Shape...)
	a.Data = append([]float32(nil), testArray.Data...)
	return &a
}

func setupFolder(t testing.TB) string {
	folder, err := ioutil.TempDir("", "fastmath.storage.test")
	if err != nil {
		t.Fatal(err)
	}
	return folder
}

func setupArrays(t testing.TB, withValid bool, withCorrupted bool) string {
	folder := setupFolder(t)

	arrays, err := LoadArrays(folder)
	if err != nil {
		t.Fatal(err)
	}

	if withValid {
		for i := 1; i <= testArrays; i++ {
			if err := arrays.Create(newTestArray()); err != nil {
				t.Fatalf("error creating array: %s", err)
			}
		}
	}

	if withCorrupted {
		corrupted := filepath.Join(folder, "666"+DatFileExt)
		if err := ioutil.WriteFile(corrupted, []byte("i'm corrupted inside"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return folder
}

func teardown(t testing.TB, folder string) {
	if err := os.RemoveAll(folder); err != nil {
		t.Fatalf("error deleting %s: %s", folder, err)
	}
}
