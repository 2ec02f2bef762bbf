package handlers

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

// fields reported as a number of bytes
var byteFields = map[string]bool{
	"alloc":         true,
	"sys":           true,
	"backend_space": true,
}

func tos(value reflect.Value) string {
	switch value.Kind() {
	case reflect.String:
		return value.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", value.Uint())
	case reflect.Slice:
		res := []string{}
		for i := 0; i < value.Len(); i++ {
			res = append(res, tos(value.Index(i)))
		}
		return strings.Join(res, " ")
	}
	return fmt.Sprintf("%v", value.Interface())
}

func infoRows(info *pb.ServerInfo) [][]string {
	rows := [][]string{}
	fields := reflect.TypeOf(*info)
	values := reflect.ValueOf(*info)

	for i := 0; i < fields.NumField(); i++ {
		if fieldName := str.Comma(fields.Field(i).Tag.Get("json"))[0]; fieldName != "" && fieldName != "-" {
			value := values.Field(i)
			fieldValue := tos(value)
			if byteFields[fieldName] {
				fieldValue = humanize.Bytes(value.Uint())
			} else if fieldName == "uptime" {
				fieldValue = (time.Duration(value.Uint()) * time.Second).String()
			}

			rows = append(rows, []string{
				fieldName,
				fieldValue,
			})
		}
	}
	return rows
}

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display server information.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.FastMathClient) error {
		info, err := client.Info(context.TODO(), &pb.Empty{})
		if err != nil {
			return err
		}

		tui.Table(os.Stdout, []string{"name", "value"}, infoRows(info))

		return nil
	},
}
