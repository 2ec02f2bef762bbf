package handlers

import (
	"regexp"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/chzyer/readline"
)

var quitHandler = handler{
	Name:        "QUIT",
	Mnemonic:    "QUIT, Q or EXIT",
	Completer:   readline.PcItem("quit"),
	Parser:      regexp.MustCompile(`^(?i)(QUIT|Q|EXIT)$`),
	Description: "Exit the client.",
	Callback: func(_ string, _ []string, _ *readline.Instance, _ pb.FastMathClient) error {
		return ErrQuit
	},
}
