package handlers

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/evilsocket/fastmath/backend"
	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/service"
	"github.com/evilsocket/fastmath/storage"
	"github.com/evilsocket/fastmath/wrapper"

	"github.com/evilsocket/islazy/log"
	. "github.com/stretchr/testify/require"
)

func init() {
	log.Level = log.ERROR
}

func setupLocal(t *testing.T) (*Local, string) {
	folder, err := ioutil.TempDir("", "fastmath.cli.test")
	NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(folder) })

	svc, err := service.New(folder, service.Config{PoolSize: 1})
	NoError(t, err)
	return NewLocal(svc), folder
}

func TestDispatchEval(t *testing.T) {
	client, _ := setupLocal(t)

	NoError(t, Dispatch("var a = fastmath.ndarray([2, 2]).fill(1)", nil, client))
	// a single VM keeps the state between commands
	res, err := eval(client, "a.add(a).data()")
	NoError(t, err)
	Equal(t, "[2,2,2,2]", res)

	Error(t, Dispatch("fastmath.ndarray([1, 2, 3, 4])", nil, client))
	NoError(t, Dispatch("   ", nil, client))
}

func TestDispatchSelfTest(t *testing.T) {
	client, _ := setupLocal(t)
	NoError(t, Dispatch("selftest", nil, client))

	rows, err := selfTest(client, "JSNDArray")
	NoError(t, err)
	Equal(t, wrapper.SelfTestRows, rows)
}

func TestDispatchBench(t *testing.T) {
	client, _ := setupLocal(t)
	NoError(t, Dispatch("bench 5", nil, client))

	results, err := bench(client, 5)
	NoError(t, err)
	Len(t, results, len(wrapper.Benchmarks))
	for _, res := range results {
		Equal(t, 5, res.Iterations)
	}
}

func TestDispatchBackend(t *testing.T) {
	defer backend.Use("blas32")

	client, _ := setupLocal(t)
	NoError(t, Dispatch("backend", nil, client))
	NoError(t, Dispatch("backend naive", nil, client))
	Equal(t, "naive", backend.Name())

	res, err := eval(client, "fastmath.backend")
	NoError(t, err)
	Equal(t, `"naive"`, res)

	Error(t, Dispatch("backend cuda", nil, client))
}

func TestDispatchLoad(t *testing.T) {
	client, folder := setupLocal(t)

	fileName := filepath.Join(folder, "script.js")
	NoError(t, ioutil.WriteFile(fileName, []byte("arrays.save('ones', fastmath.ndarray([3]).fill(1));"), 0644))
	NoError(t, Dispatch("load "+fileName, nil, client))

	resp, err := client.FindArray(context.TODO(), &pb.ByName{Name: "ones"})
	NoError(t, err)
	True(t, resp.Success)
	Equal(t, []float32{1, 1, 1}, resp.Arrays[0].Data)

	Error(t, Dispatch("load /this/does/not/exist.js", nil, client))
}

func TestDispatchArrays(t *testing.T) {
	client, _ := setupLocal(t)
	_, err := eval(client, "arrays.save('ones', fastmath.ndarray([3]).fill(1));")
	NoError(t, err)

	NoError(t, Dispatch("arrays", nil, client))
	NoError(t, Dispatch("read 1", nil, client))
	NoError(t, Dispatch("read ones", nil, client))
	Error(t, Dispatch("read 666", nil, client))
	NoError(t, Dispatch("del 1", nil, client))
	Error(t, Dispatch("del 1", nil, client))
}

func TestDispatchExportImport(t *testing.T) {
	client, _ := setupLocal(t)
	_, err := eval(client, "arrays.save('ones', fastmath.ndarray([3]).fill(1));")
	NoError(t, err)
	NoError(t, Dispatch("export 1", nil, client))
	Error(t, Dispatch("export 666", nil, client))

	resp, err := client.ReadArray(context.TODO(), &pb.ById{Id: 1})
	NoError(t, err)
	text, err := storage.ToCompressedText(resp.Arrays[0])
	NoError(t, err)

	NoError(t, Dispatch("import "+text, nil, client))
	resp, err = client.ReadArray(context.TODO(), &pb.ById{Id: 2})
	NoError(t, err)
	True(t, resp.Success)
	Equal(t, "ones", resp.Arrays[0].Name)
	Equal(t, []float32{1, 1, 1}, resp.Arrays[0].Data)

	Error(t, Dispatch("import garbage", nil, client))
}

func TestDispatchInfoAndHelp(t *testing.T) {
	client, _ := setupLocal(t)
	NoError(t, Dispatch("info", nil, client))
	NoError(t, Dispatch("help", nil, client))
}

func TestInfoRows(t *testing.T) {
	rows := infoRows(&pb.ServerInfo{
		Version: "1.0.0",
		Alloc:   2048,
		Uptime:  90,
		Argv:    []string{"fastmath", "-debug"},
	})

	values := map[string]string{}
	for _, row := range rows {
		values[row[0]] = row[1]
	}
	Equal(t, "1.0.0", values["version"])
	Equal(t, "2.0 kB", values["alloc"])
	Equal(t, "1m30s", values["uptime"])
	Equal(t, "fastmath -debug", values["argv"])
}

func TestDataAsString(t *testing.T) {
	Equal(t, "1 2.5 3", dataAsString([]float32{1, 2.5, 3}, 0))
	Equal(t, "1 2 ...", dataAsString([]float32{1, 2, 3}, 2))
	Equal(t, "[2 3]", shapeAsString([]uint32{2, 3}))
}

func TestDispatchQuit(t *testing.T) {
	client, _ := setupLocal(t)
	for _, line := range []string{"quit", "Q", " exit "} {
		Equal(t, ErrQuit, Dispatch(line, nil, client))
	}
}

func TestHelpRowsCoverHandlers(t *testing.T) {
	rows := helpRows()
	Len(t, rows, len(Handlers))
	for i, row := range rows {
		Equal(t, Handlers[i].Description, row[1])
	}
}
