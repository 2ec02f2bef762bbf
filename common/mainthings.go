package common

import (
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/evilsocket/islazy/log"
	"github.com/sirupsen/logrus"
)

// Profiles holds the destination files of the optional cpu and memory
// profiles, empty names disable them.
type Profiles struct {
	CPU    string
	Memory string
}

// Start begins cpu profiling if enabled.
func (p Profiles) Start() error {
	if p.CPU == "" {
		return nil
	}

	f, err := os.Create(p.CPU)
	if err != nil {
		return err
	}
	return pprof.StartCPUProfile(f)
}

// Stop flushes the cpu profile and writes the heap profile if enabled.
func (p Profiles) Stop() {
	if p.CPU != "" {
		log.Info("saving cpu profile to %s ...", p.CPU)
		pprof.StopCPUProfile()
	}

	if p.Memory == "" {
		return
	}

	log.Info("saving memory profile to %s ...", p.Memory)
	f, err := os.Create(p.Memory)
	if err != nil {
		log.Error("could not create memory profile: %s", err)
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error("could not write memory profile: %s", err)
	}
}

// OnSignal runs the handlers and exits when the process is asked to
// terminate.
func OnSignal(handlers ...func(os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		sig := <-sigChan
		log.Info("got signal %v, shutting down ...", sig)
		for _, handler := range handlers {
			handler(sig)
		}
		os.Exit(0)
	}()
}

// SetupLogging configures both the islazy and the logrus loggers, the
// latter is used by the service for per request structured logs.
func SetupLogging(logFile string, debug bool) error {
	log.OnFatal = log.ExitOnFatal

	if logFile != "" {
		log.Output = logFile

		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logrus.SetOutput(f)
	}

	if debug {
		log.Level = log.DEBUG
		logrus.SetLevel(logrus.DebugLevel)
	}

	return log.Open()
}

func TeardownLogging() {
	log.Close()
}
