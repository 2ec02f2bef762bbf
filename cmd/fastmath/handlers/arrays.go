package handlers

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func shapeAsString(shape []uint32) string {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.FormatUint(uint64(d), 10)
	}
	return "[" + strings.Join(dims, " ") + "]"
}

func dataAsString(data []float32, limit int) string {
	num := len(data)
	if limit > 0 && limit < num {
		num = limit
	}
	strs := make([]string, num)
	for i := 0; i < num; i++ {
		strs[i] = strconv.FormatFloat(float64(data[i]), 'g', -1, 32)
	}
	if num < len(data) {
		strs = append(strs, "...")
	}
	return strings.Join(strs, " ")
}

func arrayRows(arrays []*pb.Array, limit int) [][]string {
	rows := [][]string{}
	for _, a := range arrays {
		rows = append(rows, []string{
			fmt.Sprintf("%d", a.Id),
			a.Name,
			shapeAsString(a.Shape),
			fmt.Sprintf("%d", len(a.Data)),
			dataAsString(a.Data, limit),
		})
	}
	return rows
}

var arrayColumns = []string{"id", "name", "shape", "size", "data"}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

var listArraysHandler = handler{
	Name:        "ARRAYS",
	Mnemonic:    "ARRAYS",
	Completer:   readline.PcItem("arrays"),
	Description: "Show the stored arrays.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		resp, err := client.ListArrays(context.TODO(), &pb.Empty{})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		tui.Table(os.Stdout, arrayColumns, arrayRows(resp.Arrays, 10))
		fmt.Printf("[%d arrays]\n", len(resp.Arrays))
		return nil
	},
}

var readArrayHandler = handler{
	Name:        "READ",
	Mnemonic:    "READ <ID or NAME>",
	Completer:   readline.PcItem("read"),
	Parser:      regexp.MustCompile(`^(?i)(READ)\s+(.+)$`),
	Description: "Show the array with the given identifier or name.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		var resp *pb.ArrayResponse
		var err error

		if id, perr := parseID(args[0]); perr == nil {
			resp, err = client.ReadArray(context.TODO(), &pb.ById{Id: id})
		} else {
			resp, err = client.FindArray(context.TODO(), &pb.ByName{Name: args[0]})
		}

		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		tui.Table(os.Stdout, arrayColumns, arrayRows(resp.Arrays, 0))
		return nil
	},
}

var deleteArrayHandler = handler{
	Name:        "DEL",
	Mnemonic:    "DEL <ID>",
	Completer:   readline.PcItem("del"),
	Parser:      regexp.MustCompile(`^(?i)(DEL)\s+(\d+)$`),
	Description: "Delete the array with the given identifier.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		resp, err := client.DeleteArray(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("array %d deleted.\n", id)
		return nil
	},
}
