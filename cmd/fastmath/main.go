package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/evilsocket/fastmath/cmd/fastmath/handlers"
	"github.com/evilsocket/fastmath/common"
	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/service"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"

	"github.com/chzyer/readline"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/fastmath.tmp"
)

var (
	serverAddress = flag.String("address", "", "Server connection string, if empty scripts are evaluated locally.")
	certPath      = flag.String("cert", "", "Path to the cert.pem file to use for TLS based authentication, if empty the connection is insecure.")
	dataPath      = flag.String("datapath", filepath.Join(os.TempDir(), "fastmath"), "Data folder used in local mode.")
	backendName   = flag.String("backend", "", "Compute backend to use in local mode.")
	evalString    = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	maxMsgSize    = flag.Int("max-msg-size", 50*1024*1024, "Max size of a single GRPC message.")
	logDebug      = flag.Bool("debug", false, "Enable debug logs.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	if *logDebug {
		log.Level = log.DEBUG
	} else {
		log.Level = log.WARNING
	}

	var client pb.FastMathClient
	name := "local"

	if *serverAddress == "" {
		// a single vm keeps the script state between commands
		svc, err := service.New(*dataPath, service.Config{
			Backend:       *backendName,
			PoolSize:      1,
			MaxDurationMs: -1,
		})
		if err != nil {
			die("%v\n", err)
		}
		client = handlers.NewLocal(svc)
	} else {
		conn, err := common.Dial(*serverAddress, *certPath, *maxMsgSize)
		if err != nil {
			die("fail to dial: %v\n", err)
		}
		defer conn.Close()

		client = pb.NewFastMathClient(conn)
		name = *serverAddress
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("fastmath@%s %s", name, prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for _, cmd := range str.SplitBy(*evalString, ";") {
		if err := handlers.Dispatch(cmd, reader, client); err == handlers.ErrQuit {
			return
		} else if err != nil {
			fmt.Printf("%s\n", err)
		}
	}

	for {
		line, err := reader.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}

		if err = handlers.Dispatch(line, reader, client); err == handlers.ErrQuit {
			return
		} else if err != nil {
			fmt.Printf("%s\n", err)
		}
	}
}
