package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/wrapper"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func selfTest(client pb.FastMathClient, factory string) ([][]float64, error) {
	res, err := eval(client, fmt.Sprintf("selfTest(%s);", factory))
	if err != nil {
		return nil, err
	}

	rows := [][]float64{}
	if err = json.Unmarshal([]byte(res), &rows); err != nil {
		return nil, err
	} else if !reflect.DeepEqual(rows, wrapper.SelfTestRows) {
		return rows, fmt.Errorf("%s: expected %v, got %v", factory, wrapper.SelfTestRows, rows)
	}
	return rows, nil
}

var selfTestHandler = handler{
	Name:        "SELFTEST",
	Mnemonic:    "SELFTEST",
	Completer:   readline.PcItem("selftest"),
	Description: "Run the self test with both the script and the native ndarray implementations.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		for _, factory := range []string{"JSNDArray", wrapper.ModuleName + ".ndarray"} {
			fmt.Printf("testing %s ...\n", factory)

			rows, err := selfTest(client, factory)
			if err != nil {
				return err
			}

			cells := [][]string{}
			for y, row := range rows {
				cells = append(cells, []string{fmt.Sprintf("%d", y), fmt.Sprintf("%v", row[0]), fmt.Sprintf("%v", row[1])})
			}
			tui.Table(os.Stdout, []string{"row", "x=0", "x=1"}, cells)
		}

		fmt.Println("ok")
		return nil
	},
}
