package handlers

import (
	"context"
	"fmt"
	"io/ioutil"
	"regexp"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/chzyer/readline"
)

func eval(client pb.FastMathClient, code string) (string, error) {
	resp, err := client.Eval(context.TODO(), &pb.Script{Code: code})
	if err != nil {
		return "", err
	} else if !resp.Success {
		return "", fmt.Errorf("%s", resp.Msg)
	}
	return resp.Json, nil
}

var loadHandler = handler{
	Name:        "LOAD",
	Mnemonic:    "LOAD <FILENAME>",
	Completer:   readline.PcItem("load"),
	Parser:      regexp.MustCompile(`^(?i)(LOAD)\s+(.+)$`),
	Description: "Evaluate the script contained in <FILENAME>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		code, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		res, err := eval(client, string(code))
		if err != nil {
			return err
		}

		fmt.Println(res)
		return nil
	},
}

var evalHandler = handler{
	Mnemonic:    "<SCRIPT>",
	Parser:      regexp.MustCompile(`^(.+)$`),
	Description: "Evaluate any other input as a script and print the result as JSON.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		res, err := eval(client, cmd)
		if err != nil {
			return err
		}

		fmt.Println(res)
		return nil
	},
}
