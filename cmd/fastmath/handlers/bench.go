package handlers

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/wrapper"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func bench(client pb.FastMathClient, iterations int) ([]wrapper.BenchmarkResult, error) {
	results := []wrapper.BenchmarkResult{}
	for _, b := range wrapper.Benchmarks {
		n := b.Iterations
		if iterations > 0 {
			n = iterations
		}

		start := time.Now()
		if _, err := eval(client, fmt.Sprintf(b.Code, n)); err != nil {
			return nil, fmt.Errorf("%s: %v", b.Name, err)
		}
		results = append(results, wrapper.BenchmarkResult{
			Name:       b.Name,
			Iterations: n,
			Elapsed:    time.Since(start),
		})
	}
	return results, nil
}

var benchHandler = handler{
	Name:        "BENCH",
	Mnemonic:    "BENCH [ITERATIONS]",
	Completer:   readline.PcItem("bench"),
	Parser:      regexp.MustCompile(`^(?i)(BENCH)(?:\s+(\d+))?$`),
	Description: "Compare the script and native implementations, optionally overriding the number of iterations.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		iterations := 0
		if args[0] != "" {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			iterations = n
		}

		results, err := bench(client, iterations)
		if err != nil {
			return err
		}

		rows := [][]string{}
		for _, res := range results {
			rows = append(rows, []string{
				res.Name,
				humanize.Comma(int64(res.Iterations)),
				res.Elapsed.String(),
				res.PerOp().String(),
			})
		}
		tui.Table(os.Stdout, []string{"benchmark", "iterations", "elapsed", "per op"}, rows)

		return nil
	},
}
