package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/evilsocket/fastmath/backend"
	pb "github.com/evilsocket/fastmath/proto"

	"github.com/chzyer/readline"
)

func backendCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{}
	for _, name := range backend.Available() {
		items = append(items, readline.PcItem(name))
	}
	return readline.PcItem("backend", items...)
}

var backendHandler = handler{
	Name:        "BACKEND",
	Mnemonic:    "BACKEND [NAME]",
	Completer:   backendCompleter(),
	Parser:      regexp.MustCompile(`^(?i)(BACKEND)(?:\s+(\S+))?$`),
	Description: fmt.Sprintf("Show the compute backend in use or select one of: %s (local mode only).", strings.Join(backend.Available(), ", ")),
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		if args[0] != "" {
			if _, local := client.(*Local); !local {
				return fmt.Errorf("the backend can only be selected in local mode")
			} else if err := backend.Use(args[0]); err != nil {
				return err
			}
		}

		info, err := client.Info(context.TODO(), &pb.Empty{})
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", info.Backend)
		return nil
	},
}
