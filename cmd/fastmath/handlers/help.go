package handlers

import (
	"os"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func helpRows() [][]string {
	rows := make([][]string, len(Handlers))
	for i, h := range Handlers {
		rows[i] = []string{tui.Bold(h.Mnemonic), h.Description}
	}
	return rows
}

var helpHandler = handler{
	Name:        "HELP",
	Mnemonic:    "HELP",
	Completer:   readline.PcItem("help"),
	Description: "Show the available client commands and their descriptions.",
	Callback: func(_ string, _ []string, _ *readline.Instance, _ pb.FastMathClient) error {
		tui.Table(os.Stdout, []string{"command", "description"}, helpRows())
		return nil
	},
}
