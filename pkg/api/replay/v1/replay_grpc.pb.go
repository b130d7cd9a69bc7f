// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: replay/v1/replay.proto

package replayv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ReplayService_InsertStream_FullMethodName     = "/replay.v1.ReplayService/InsertStream"
	ReplayService_Sample_FullMethodName           = "/replay.v1.ReplayService/Sample"
	ReplayService_MutatePriorities_FullMethodName = "/replay.v1.ReplayService/MutatePriorities"
	ReplayService_GetTableInfo_FullMethodName     = "/replay.v1.ReplayService/GetTableInfo"
)

// ReplayServiceClient is the client API for ReplayService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReplayService is the narrow write/sample surface of a replay server.
type ReplayServiceClient interface {
	// InsertStream carries one writer sequence: appended steps interleaved
	// with item registrations. The response is sent when the client closes
	// the stream.
	InsertStream(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[InsertRequest, InsertStreamResponse], error)
	// Sample streams back num_samples items from a table, blocking until the
	// table's rate limiter admits each draw.
	Sample(ctx context.Context, in *SampleRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SampleResponse], error)
	MutatePriorities(ctx context.Context, in *MutatePrioritiesRequest, opts ...grpc.CallOption) (*MutatePrioritiesResponse, error)
	GetTableInfo(ctx context.Context, in *GetTableInfoRequest, opts ...grpc.CallOption) (*GetTableInfoResponse, error)
}

type replayServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReplayServiceClient(cc grpc.ClientConnInterface) ReplayServiceClient {
	return &replayServiceClient{cc}
}

func (c *replayServiceClient) InsertStream(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[InsertRequest, InsertStreamResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ReplayService_ServiceDesc.Streams[0], ReplayService_InsertStream_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[InsertRequest, InsertStreamResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ReplayService_InsertStreamClient = grpc.ClientStreamingClient[InsertRequest, InsertStreamResponse]

func (c *replayServiceClient) Sample(ctx context.Context, in *SampleRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SampleResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ReplayService_ServiceDesc.Streams[1], ReplayService_Sample_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SampleRequest, SampleResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ReplayService_SampleClient = grpc.ServerStreamingClient[SampleResponse]

func (c *replayServiceClient) MutatePriorities(ctx context.Context, in *MutatePrioritiesRequest, opts ...grpc.CallOption) (*MutatePrioritiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutatePrioritiesResponse)
	err := c.cc.Invoke(ctx, ReplayService_MutatePriorities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayServiceClient) GetTableInfo(ctx context.Context, in *GetTableInfoRequest, opts ...grpc.CallOption) (*GetTableInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTableInfoResponse)
	err := c.cc.Invoke(ctx, ReplayService_GetTableInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReplayServiceServer is the server API for ReplayService service.
// All implementations must embed UnimplementedReplayServiceServer
// for forward compatibility.
//
// ReplayService is the narrow write/sample surface of a replay server.
type ReplayServiceServer interface {
	// InsertStream carries one writer sequence: appended steps interleaved
	// with item registrations. The response is sent when the client closes
	// the stream.
	InsertStream(grpc.ClientStreamingServer[InsertRequest, InsertStreamResponse]) error
	// Sample streams back num_samples items from a table, blocking until the
	// table's rate limiter admits each draw.
	Sample(*SampleRequest, grpc.ServerStreamingServer[SampleResponse]) error
	MutatePriorities(context.Context, *MutatePrioritiesRequest) (*MutatePrioritiesResponse, error)
	GetTableInfo(context.Context, *GetTableInfoRequest) (*GetTableInfoResponse, error)
	mustEmbedUnimplementedReplayServiceServer()
}

// UnimplementedReplayServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReplayServiceServer struct{}

func (UnimplementedReplayServiceServer) InsertStream(grpc.ClientStreamingServer[InsertRequest, InsertStreamResponse]) error {
	return status.Error(codes.Unimplemented, "method InsertStream not implemented")
}
func (UnimplementedReplayServiceServer) Sample(*SampleRequest, grpc.ServerStreamingServer[SampleResponse]) error {
	return status.Error(codes.Unimplemented, "method Sample not implemented")
}
func (UnimplementedReplayServiceServer) MutatePriorities(context.Context, *MutatePrioritiesRequest) (*MutatePrioritiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MutatePriorities not implemented")
}
func (UnimplementedReplayServiceServer) GetTableInfo(context.Context, *GetTableInfoRequest) (*GetTableInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTableInfo not implemented")
}
func (UnimplementedReplayServiceServer) mustEmbedUnimplementedReplayServiceServer() {}
func (UnimplementedReplayServiceServer) testEmbeddedByValue()                       {}

// UnsafeReplayServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReplayServiceServer will
// result in compilation errors.
type UnsafeReplayServiceServer interface {
	mustEmbedUnimplementedReplayServiceServer()
}

func RegisterReplayServiceServer(s grpc.ServiceRegistrar, srv ReplayServiceServer) {
	// If the following call panics, it indicates UnimplementedReplayServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReplayService_ServiceDesc, srv)
}

func _ReplayService_InsertStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(ReplayServiceServer).InsertStream(&grpc.GenericServerStream[InsertRequest, InsertStreamResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ReplayService_InsertStreamServer = grpc.ClientStreamingServer[InsertRequest, InsertStreamResponse]

func _ReplayService_Sample_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SampleRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ReplayServiceServer).Sample(m, &grpc.GenericServerStream[SampleRequest, SampleResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ReplayService_SampleServer = grpc.ServerStreamingServer[SampleResponse]

func _ReplayService_MutatePriorities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MutatePrioritiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServiceServer).MutatePriorities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReplayService_MutatePriorities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServiceServer).MutatePriorities(ctx, req.(*MutatePrioritiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplayService_GetTableInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTableInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServiceServer).GetTableInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReplayService_GetTableInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServiceServer).GetTableInfo(ctx, req.(*GetTableInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReplayService_ServiceDesc is the grpc.ServiceDesc for ReplayService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReplayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "replay.v1.ReplayService",
	HandlerType: (*ReplayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MutatePriorities",
			Handler:    _ReplayService_MutatePriorities_Handler,
		},
		{
			MethodName: "GetTableInfo",
			Handler:    _ReplayService_GetTableInfo_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "InsertStream",
			Handler:       _ReplayService_InsertStream_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "Sample",
			Handler:       _ReplayService_Sample_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "replay/v1/replay.proto",
}
