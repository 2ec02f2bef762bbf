// Package proto contains the messages and the grpc service described in fastmath.proto.
package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type Empty struct {
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

type ById struct {
	Id uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *ById) Reset()         { *m = ById{} }
func (m *ById) String() string { return proto.CompactTextString(m) }
func (*ById) ProtoMessage()    {}

func (m *ById) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

type ByName struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *ByName) Reset()         { *m = ByName{} }
func (m *ByName) String() string { return proto.CompactTextString(m) }
func (*ByName) ProtoMessage()    {}

func (m *ByName) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

// An ndarray as persisted on disk and exchanged on the wire, shape[0] is the
// innermost axis and data is in flattened order.
type Array struct {
	Id    uint64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name  string    `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Shape []uint32  `protobuf:"varint,3,rep,packed,name=shape,proto3" json:"shape,omitempty"`
	Data  []float32 `protobuf:"fixed32,4,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *Array) Reset()         { *m = Array{} }
func (m *Array) String() string { return proto.CompactTextString(m) }
func (*Array) ProtoMessage()    {}

func (m *Array) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Array) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Array) GetShape() []uint32 {
	if m != nil {
		return m.Shape
	}
	return nil
}

func (m *Array) GetData() []float32 {
	if m != nil {
		return m.Data
	}
	return nil
}

type ArrayResponse struct {
	Success bool     `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg     string   `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Arrays  []*Array `protobuf:"bytes,3,rep,name=arrays,proto3" json:"arrays,omitempty"`
}

func (m *ArrayResponse) Reset()         { *m = ArrayResponse{} }
func (m *ArrayResponse) String() string { return proto.CompactTextString(m) }
func (*ArrayResponse) ProtoMessage()    {}

func (m *ArrayResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *ArrayResponse) GetMsg() string {
	if m != nil {
		return m.Msg
	}
	return ""
}

func (m *ArrayResponse) GetArrays() []*Array {
	if m != nil {
		return m.Arrays
	}
	return nil
}

type Script struct {
	Code string            `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Args map[string]string `protobuf:"bytes,2,rep,name=args,proto3" json:"args,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *Script) Reset()         { *m = Script{} }
func (m *Script) String() string { return proto.CompactTextString(m) }
func (*Script) ProtoMessage()    {}

func (m *Script) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

func (m *Script) GetArgs() map[string]string {
	if m != nil {
		return m.Args
	}
	return nil
}

type EvalResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg     string `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Json    string `protobuf:"bytes,3,opt,name=json,proto3" json:"json,omitempty"`
}

func (m *EvalResponse) Reset()         { *m = EvalResponse{} }
func (m *EvalResponse) String() string { return proto.CompactTextString(m) }
func (*EvalResponse) ProtoMessage()    {}

func (m *EvalResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *EvalResponse) GetMsg() string {
	if m != nil {
		return m.Msg
	}
	return ""
}

func (m *EvalResponse) GetJson() string {
	if m != nil {
		return m.Json
	}
	return ""
}

type ServerInfo struct {
	Version      string   `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Os           string   `protobuf:"bytes,2,opt,name=os,proto3" json:"os,omitempty"`
	Arch         string   `protobuf:"bytes,3,opt,name=arch,proto3" json:"arch,omitempty"`
	GoVersion    string   `protobuf:"bytes,4,opt,name=go_version,json=goVersion,proto3" json:"go_version,omitempty"`
	Cpus         uint64   `protobuf:"varint,5,opt,name=cpus,proto3" json:"cpus,omitempty"`
	Goroutines   uint64   `protobuf:"varint,6,opt,name=goroutines,proto3" json:"goroutines,omitempty"`
	Alloc        uint64   `protobuf:"varint,7,opt,name=alloc,proto3" json:"alloc,omitempty"`
	Sys          uint64   `protobuf:"varint,8,opt,name=sys,proto3" json:"sys,omitempty"`
	NumGc        uint64   `protobuf:"varint,9,opt,name=num_gc,json=numGc,proto3" json:"num_gc,omitempty"`
	Uptime       uint64   `protobuf:"varint,10,opt,name=uptime,proto3" json:"uptime,omitempty"`
	Arrays       uint64   `protobuf:"varint,11,opt,name=arrays,proto3" json:"arrays,omitempty"`
	Backend      string   `protobuf:"bytes,12,opt,name=backend,proto3" json:"backend,omitempty"`
	BackendSpace uint64   `protobuf:"varint,13,opt,name=backend_space,json=backendSpace,proto3" json:"backend_space,omitempty"`
	Pid          uint64   `protobuf:"varint,14,opt,name=pid,proto3" json:"pid,omitempty"`
	Argv         []string `protobuf:"bytes,15,rep,name=argv,proto3" json:"argv,omitempty"`
	Datapath     string   `protobuf:"bytes,16,opt,name=datapath,proto3" json:"datapath,omitempty"`
	Address      string   `protobuf:"bytes,17,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *ServerInfo) Reset()         { *m = ServerInfo{} }
func (m *ServerInfo) String() string { return proto.CompactTextString(m) }
func (*ServerInfo) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Empty)(nil), "fastmath.Empty")
	proto.RegisterType((*ById)(nil), "fastmath.ById")
	proto.RegisterType((*ByName)(nil), "fastmath.ByName")
	proto.RegisterType((*Array)(nil), "fastmath.Array")
	proto.RegisterType((*ArrayResponse)(nil), "fastmath.ArrayResponse")
	proto.RegisterType((*Script)(nil), "fastmath.Script")
	proto.RegisterMapType((map[string]string)(nil), "fastmath.Script.ArgsEntry")
	proto.RegisterType((*EvalResponse)(nil), "fastmath.EvalResponse")
	proto.RegisterType((*ServerInfo)(nil), "fastmath.ServerInfo")
}
