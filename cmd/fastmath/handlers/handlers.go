package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/chzyer/readline"
)

// ErrQuit is returned by Dispatch when the user asks to leave the client.
var ErrQuit = errors.New("quit")

type handlerCb func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

// parse returns the command and its arguments if the line is for this handler.
func (h handler) parse(line string) (string, []string, bool) {
	if h.Parser == nil {
		return line, nil, strings.EqualFold(h.Name, line)
	}

	m := h.Parser.FindStringSubmatch(line)
	if m == nil {
		return "", nil, false
	}
	return m[1], m[2:], true
}

var (
	// Handlers is the ordered list of client commands, the first one
	// matching a line handles it.
	Handlers []handler
	// Completers autocompletes the command names in the REPL.
	Completers *readline.PrefixCompleter
)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		backendHandler,
		selfTestHandler,
		benchHandler,
		loadHandler,
		listArraysHandler,
		readArrayHandler,
		deleteArrayHandler,
		exportArrayHandler,
		importArrayHandler,
		// catch all
		evalHandler,
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(Handlers))
	for _, h := range Handlers {
		if h.Completer != nil {
			items = append(items, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(items...)
}

// Dispatch runs the handler of the given line, empty lines are ignored.
func Dispatch(line string, reader *readline.Instance, client pb.FastMathClient) error {
	if line = strings.TrimSpace(line); line == "" {
		return nil
	}

	for _, h := range Handlers {
		if cmd, args, ok := h.parse(line); ok {
			return h.Callback(cmd, args, reader, client)
		}
	}

	return fmt.Errorf("command not found: %s", line)
}
