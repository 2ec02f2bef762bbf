package service

import (
	"os"
	"runtime"
	"time"

	"github.com/evilsocket/fastmath/backend"
	pb "github.com/evilsocket/fastmath/proto"

	"golang.org/x/net/context"
)

// Info returns a *pb.ServerInfo object with various realtime information
// about the service and its runtime.
func (s *Service) Info(ctx context.Context, dummy *pb.Empty) (*pb.ServerInfo, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &pb.ServerInfo{
		Version:      Version,
		Os:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		GoVersion:    runtime.Version(),
		Cpus:         uint64(runtime.NumCPU()),
		Goroutines:   uint64(runtime.NumGoroutine()),
		Alloc:        m.Alloc,
		Sys:          m.Sys,
		NumGc:        uint64(m.NumGC),
		Uptime:       uint64(time.Since(s.started).Seconds()),
		Arrays:       uint64(s.arrays.Size()),
		Backend:      backend.Name(),
		BackendSpace: backend.Space(),
		Pid:          uint64(os.Getpid()),
		Argv:         os.Args,
		Datapath:     s.dataPath,
		Address:      s.config.Address,
	}, nil
}
