package handlers

import (
	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/service"

	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

// Local is a pb.FastMathClient calling an in process service.
type Local struct {
	svc *service.Service
}

// NewLocal creates a client for the given in process service.
func NewLocal(svc *service.Service) *Local {
	return &Local{svc: svc}
}

func (l *Local) Info(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ServerInfo, error) {
	return l.svc.Info(ctx, in)
}

func (l *Local) CreateArray(ctx context.Context, in *pb.Array, opts ...grpc.CallOption) (*pb.ArrayResponse, error) {
	return l.svc.CreateArray(ctx, in)
}

func (l *Local) ReadArray(ctx context.Context, in *pb.ById, opts ...grpc.CallOption) (*pb.ArrayResponse, error) {
	return l.svc.ReadArray(ctx, in)
}

func (l *Local) FindArray(ctx context.Context, in *pb.ByName, opts ...grpc.CallOption) (*pb.ArrayResponse, error) {
	return l.svc.FindArray(ctx, in)
}

func (l *Local) DeleteArray(ctx context.Context, in *pb.ById, opts ...grpc.CallOption) (*pb.ArrayResponse, error) {
	return l.svc.DeleteArray(ctx, in)
}

func (l *Local) ListArrays(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ArrayResponse, error) {
	return l.svc.ListArrays(ctx, in)
}

func (l *Local) Eval(ctx context.Context, in *pb.Script, opts ...grpc.CallOption) (*pb.EvalResponse, error) {
	return l.svc.Eval(ctx, in)
}
