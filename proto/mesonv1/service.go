// Package mesonv1 declares the meson.v1.MesonService gRPC contract.
//
// Messages are protobuf well-known types, so the service needs no generated
// message code:
//
//	Generate(Empty) StringValue
//	GenerateBatch(UInt32Value) ListValue   // list of strings
//	Parse(StringValue) Struct              // Field* keys below
//	Validate(StringValue) Struct           // valid, reason
//	Info(Empty) Struct                     // fingerprint, sequence, reseeds, format, max_batch
package mesonv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "meson.v1.MesonService"

const (
	MesonService_Generate_FullMethodName      = "/meson.v1.MesonService/Generate"
	MesonService_GenerateBatch_FullMethodName = "/meson.v1.MesonService/GenerateBatch"
	MesonService_Parse_FullMethodName         = "/meson.v1.MesonService/Parse"
	MesonService_Validate_FullMethodName      = "/meson.v1.MesonService/Validate"
	MesonService_Info_FullMethodName          = "/meson.v1.MesonService/Info"
)

// Struct keys.
const (
	FieldTimestampMs = "timestamp_ms"
	FieldTime        = "time"
	FieldGeneratorID = "generator_id"
	FieldSequence    = "sequence"
	FieldHex         = "hex"
	FieldFormatted   = "formatted"
	FieldValid       = "valid"
	FieldReason      = "reason"
	FieldFingerprint = "fingerprint"
	FieldReseeds     = "reseeds"
	FieldFormat      = "format"
	FieldMaxBatch    = "max_batch"
)

// MesonServiceClient is the client API for MesonService.
type MesonServiceClient interface {
	Generate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GenerateBatch(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Parse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Info(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type mesonServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMesonServiceClient(cc grpc.ClientConnInterface) MesonServiceClient {
	return &mesonServiceClient{cc}
}

func (c *mesonServiceClient) Generate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, MesonService_Generate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mesonServiceClient) GenerateBatch(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MesonService_GenerateBatch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mesonServiceClient) Parse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MesonService_Parse_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mesonServiceClient) Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MesonService_Validate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mesonServiceClient) Info(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MesonService_Info_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MesonServiceServer is the server API for MesonService.
type MesonServiceServer interface {
	Generate(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GenerateBatch(context.Context, *wrapperspb.UInt32Value) (*structpb.ListValue, error)
	Parse(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Validate(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Info(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedMesonServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedMesonServiceServer struct{}

func (UnimplementedMesonServiceServer) Generate(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Generate not implemented")
}

func (UnimplementedMesonServiceServer) GenerateBatch(context.Context, *wrapperspb.UInt32Value) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateBatch not implemented")
}

func (UnimplementedMesonServiceServer) Parse(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Parse not implemented")
}

func (UnimplementedMesonServiceServer) Validate(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Validate not implemented")
}

func (UnimplementedMesonServiceServer) Info(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Info not implemented")
}

func RegisterMesonServiceServer(s grpc.ServiceRegistrar, srv MesonServiceServer) {
	s.RegisterService(&MesonService_ServiceDesc, srv)
}

func _MesonService_Generate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MesonServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MesonService_Generate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MesonServiceServer).Generate(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _MesonService_GenerateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MesonServiceServer).GenerateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MesonService_GenerateBatch_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MesonServiceServer).GenerateBatch(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _MesonService_Parse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MesonServiceServer).Parse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MesonService_Parse_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MesonServiceServer).Parse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _MesonService_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MesonServiceServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MesonService_Validate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MesonServiceServer).Validate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _MesonService_Info_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MesonServiceServer).Info(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MesonService_Info_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MesonServiceServer).Info(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// MesonService_ServiceDesc is the grpc.ServiceDesc for MesonService.
var MesonService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MesonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: _MesonService_Generate_Handler},
		{MethodName: "GenerateBatch", Handler: _MesonService_GenerateBatch_Handler},
		{MethodName: "Parse", Handler: _MesonService_Parse_Handler},
		{MethodName: "Validate", Handler: _MesonService_Validate_Handler},
		{MethodName: "Info", Handler: _MesonService_Info_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meson/v1/meson.proto",
}
