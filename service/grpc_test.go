package service

import (
	"net"
	"testing"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

func setupClient(t *testing.T) pb.FastMathClient {
	svc := setupService(t, DefaultConfig())

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	pb.RegisterFastMathServer(server, svc)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithInsecure())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewFastMathClient(conn)
}

func TestGrpcRoundtrip(t *testing.T) {
	client := setupClient(t)

	info, err := client.Info(context.TODO(), &pb.Empty{})
	require.NoError(t, err)
	require.Equal(t, Version, info.Version)

	resp, err := client.CreateArray(context.TODO(), newTestArray())
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Msg)

	resp, err = client.FindArray(context.TODO(), &pb.ByName{Name: testArray.Name})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, testArray.Shape, resp.Arrays[0].Shape)
	require.Equal(t, testArray.Data, resp.Arrays[0].Data)

	eval, err := client.Eval(context.TODO(), &pb.Script{
		Code: "arrays.findByName(name).size",
		Args: map[string]string{"name": testArray.Name},
	})
	require.NoError(t, err)
	require.True(t, eval.Success, eval.Msg)
	require.Equal(t, "4", eval.Json)

	resp, err = client.ListArrays(context.TODO(), &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, resp.Arrays, 1)

	resp, err = client.DeleteArray(context.TODO(), &pb.ById{Id: resp.Arrays[0].Id})
	require.NoError(t, err)
	require.True(t, resp.Success)

	resp, err = client.ReadArray(context.TODO(), &pb.ById{Id: 1})
	require.NoError(t, err)
	require.False(t, resp.Success)
}
