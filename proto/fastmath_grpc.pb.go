package proto

import (
	context "golang.org/x/net/context"
	grpc "google.golang.org/grpc"
)

// FastMathClient is the client API for the FastMath service.
type FastMathClient interface {
	Info(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error)
	CreateArray(ctx context.Context, in *Array, opts ...grpc.CallOption) (*ArrayResponse, error)
	ReadArray(ctx context.Context, in *ById, opts ...grpc.CallOption) (*ArrayResponse, error)
	FindArray(ctx context.Context, in *ByName, opts ...grpc.CallOption) (*ArrayResponse, error)
	DeleteArray(ctx context.Context, in *ById, opts ...grpc.CallOption) (*ArrayResponse, error)
	ListArrays(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ArrayResponse, error)
	Eval(ctx context.Context, in *Script, opts ...grpc.CallOption) (*EvalResponse, error)
}

type fastMathClient struct {
	cc *grpc.ClientConn
}

// NewFastMathClient creates a FastMathClient on top of the given connection.
func NewFastMathClient(cc *grpc.ClientConn) FastMathClient {
	return &fastMathClient{cc}
}

func (c *fastMathClient) Info(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error) {
	out := new(ServerInfo)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/Info", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) CreateArray(ctx context.Context, in *Array, opts ...grpc.CallOption) (*ArrayResponse, error) {
	out := new(ArrayResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/CreateArray", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) ReadArray(ctx context.Context, in *ById, opts ...grpc.CallOption) (*ArrayResponse, error) {
	out := new(ArrayResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/ReadArray", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) FindArray(ctx context.Context, in *ByName, opts ...grpc.CallOption) (*ArrayResponse, error) {
	out := new(ArrayResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/FindArray", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) DeleteArray(ctx context.Context, in *ById, opts ...grpc.CallOption) (*ArrayResponse, error) {
	out := new(ArrayResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/DeleteArray", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) ListArrays(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ArrayResponse, error) {
	out := new(ArrayResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/ListArrays", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastMathClient) Eval(ctx context.Context, in *Script, opts ...grpc.CallOption) (*EvalResponse, error) {
	out := new(EvalResponse)
	err := c.cc.Invoke(ctx, "/fastmath.FastMath/Eval", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FastMathServer is the server API for the FastMath service.
type FastMathServer interface {
	Info(context.Context, *Empty) (*ServerInfo, error)
	CreateArray(context.Context, *Array) (*ArrayResponse, error)
	ReadArray(context.Context, *ById) (*ArrayResponse, error)
	FindArray(context.Context, *ByName) (*ArrayResponse, error)
	DeleteArray(context.Context, *ById) (*ArrayResponse, error)
	ListArrays(context.Context, *Empty) (*ArrayResponse, error)
	Eval(context.Context, *Script) (*EvalResponse, error)
}

// RegisterFastMathServer registers srv as the implementation of the FastMath service.
func RegisterFastMathServer(s *grpc.Server, srv FastMathServer) {
	s.RegisterService(&_FastMath_serviceDesc, srv)
}

func _FastMath_Info_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).Info(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/Info",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).Info(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_CreateArray_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Array)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).CreateArray(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/CreateArray",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).CreateArray(ctx, req.(*Array))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_ReadArray_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ById)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).ReadArray(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/ReadArray",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).ReadArray(ctx, req.(*ById))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_FindArray_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ByName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).FindArray(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/FindArray",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).FindArray(ctx, req.(*ByName))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_DeleteArray_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ById)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).DeleteArray(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/DeleteArray",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).DeleteArray(ctx, req.(*ById))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_ListArrays_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).ListArrays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/ListArrays",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).ListArrays(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _FastMath_Eval_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Script)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastMathServer).Eval(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fastmath.FastMath/Eval",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FastMathServer).Eval(ctx, req.(*Script))
	}
	return interceptor(ctx, in, info, handler)
}

var _FastMath_serviceDesc = grpc.ServiceDesc{
	ServiceName: "fastmath.FastMath",
	HandlerType: (*FastMathServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Info",
			Handler:    _FastMath_Info_Handler,
		},
		{
			MethodName: "CreateArray",
			Handler:    _FastMath_CreateArray_Handler,
		},
		{
			MethodName: "ReadArray",
			Handler:    _FastMath_ReadArray_Handler,
		},
		{
			MethodName: "FindArray",
			Handler:    _FastMath_FindArray_Handler,
		},
		{
			MethodName: "DeleteArray",
			Handler:    _FastMath_DeleteArray_Handler,
		},
		{
			MethodName: "ListArrays",
			Handler:    _FastMath_ListArrays_Handler,
		},
		{
			MethodName: "Eval",
			Handler:    _FastMath_Eval_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fastmath.proto",
}
