package common

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/evilsocket/islazy/log"
	. "github.com/stretchr/testify/require"
)

func init() {
	log.Level = log.ERROR
}

func TestHasCredentials(t *testing.T) {
	folder, err := ioutil.TempDir("", "fastmath.common.test")
	NoError(t, err)
	defer os.RemoveAll(folder)

	False(t, HasCredentials(folder))
	NoError(t, ioutil.WriteFile(filepath.Join(folder, CertFile), []byte("cert"), 0644))
	False(t, HasCredentials(folder))
	NoError(t, ioutil.WriteFile(filepath.Join(folder, KeyFile), []byte("key"), 0644))
	True(t, HasCredentials(folder))

	// broken credentials
	_, err = NewGrpcServer(folder, 1024)
	Error(t, err)
}

func TestNewGrpcServerWithoutCredentials(t *testing.T) {
	server, listener, err := Listen("/this/does/not/exist", "127.0.0.1:0", 1024)
	NoError(t, err)
	NotNil(t, server)
	go server.Serve(listener)
	defer server.Stop()

	conn, err := Dial(listener.Addr().String(), "", 1024)
	NoError(t, err)
	NoError(t, conn.Close())
}

func TestDialWithMissingCert(t *testing.T) {
	_, err := Dial("127.0.0.1:1", "/this/does/not/exist.pem", 1024)
	Error(t, err)
}

func TestListenWithInvalidAddress(t *testing.T) {
	_, _, err := Listen("/this/does/not/exist", "not an address", 1024)
	Error(t, err)
}

func TestProfiles(t *testing.T) {
	folder, err := ioutil.TempDir("", "fastmath.common.test")
	NoError(t, err)
	defer os.RemoveAll(folder)

	NoError(t, Profiles{}.Start())
	Profiles{}.Stop()

	p := Profiles{
		CPU:    filepath.Join(folder, "cpu.prof"),
		Memory: filepath.Join(folder, "mem.prof"),
	}
	NoError(t, p.Start())
	p.Stop()
	FileExists(t, p.CPU)
	FileExists(t, p.Memory)
}
