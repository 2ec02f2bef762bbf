package handlers

import (
	"context"
	"fmt"
	"regexp"

	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/storage"

	"github.com/chzyer/readline"
)

var exportArrayHandler = handler{
	Name:        "EXPORT",
	Mnemonic:    "EXPORT <ID>",
	Completer:   readline.PcItem("export"),
	Parser:      regexp.MustCompile(`^(?i)(EXPORT)\s+(\d+)$`),
	Description: "Print the array with the given identifier as compressed text.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		resp, err := client.ReadArray(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		text, err := storage.ToCompressedText(resp.Arrays[0])
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

var importArrayHandler = handler{
	Name:        "IMPORT",
	Mnemonic:    "IMPORT <TEXT>",
	Completer:   readline.PcItem("import"),
	Parser:      regexp.MustCompile(`^(?i)(IMPORT)\s+(\S+)$`),
	Description: "Create a new array from the compressed text printed by EXPORT.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		array, err := storage.FromCompressedText(args[0])
		if err != nil {
			return err
		}

		resp, err := client.CreateArray(context.TODO(), array)
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("array %s created.\n", resp.Msg)
		return nil
	},
}
