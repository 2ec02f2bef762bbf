package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	. "github.com/evilsocket/fastmath/common"
	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/service"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/log"
)

var (
	listenString = flag.String("listen", "127.0.0.1:50051", "String to create the TCP listener.")
	credsPath    = flag.String("creds", "/etc/fastmathd/creds", "Path to the key.pem and cert.pem files to use for TLS based authentication.")
	dataPath     = flag.String("datapath", "/var/lib/fastmathd", "fastmath data folder.")
	configFile   = flag.String("config", "", "JSON configuration file.")
	backendName  = flag.String("backend", "", "Compute backend, overrides the configuration.")
	gcPeriod     = flag.Int("gc-period", 1800, "Period in seconds to report memory statistics and call the gc.")
	maxMsgSize   = flag.Int("max-msg-size", 10*1024*1024, "Maximum size in bytes of a GRPC message.")
	logFile      = flag.String("log-file", "", "If filled, fastmathd will log to this file.")
	logDebug     = flag.Bool("debug", false, "Enable debug logs.")

	// stats

	cpuProfile = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile = flag.String("mem-profile", "", "Write memory profile to this file.")

	svc = (*service.Service)(nil)
)

func statsReport() {
	var m runtime.MemStats

	ticker := time.NewTicker(time.Duration(*gcPeriod) * time.Second)
	for range ticker.C {
		runtime.GC()
		runtime.ReadMemStats(&m)

		log.Info("arrays:%d mem:%s numgc:%d",
			svc.NumArrays(),
			humanize.Bytes(m.Sys),
			m.NumGC)
	}
}

func main() {
	flag.Parse()

	if err := SetupLogging(*logFile, *logDebug); err != nil {
		panic(err)
	}
	defer TeardownLogging()

	profiles := Profiles{CPU: *cpuProfile, Memory: *memProfile}
	if err := profiles.Start(); err != nil {
		log.Fatal("%v", err)
	}

	OnSignal(func(_ os.Signal) { profiles.Stop() })

	log.Info("fastmathd v%s is starting ...", service.Version)

	config, err := service.LoadConfig(*configFile)
	if err != nil {
		log.Fatal("%v", err)
	}

	// explicit flags override the configuration file
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if *backendName != "" {
		config.Backend = *backendName
	}
	if config.Address == "" || setFlags["listen"] {
		config.Address = *listenString
	}
	if config.CredsPath == "" || setFlags["creds"] {
		config.CredsPath = *credsPath
	}

	server, listener, err := Listen(config.CredsPath, config.Address, *maxMsgSize)
	if err != nil {
		log.Fatal("%v", err)
	}

	if svc, err = service.New(*dataPath, config); err != nil {
		log.Fatal("%v", err)
	}
	pb.RegisterFastMathServer(server, svc)

	go statsReport()

	log.Info("now listening on %s ...", config.Address)
	if err := server.Serve(listener); err != nil {
		log.Fatal("failed to serve: %v", err)
	}
}
