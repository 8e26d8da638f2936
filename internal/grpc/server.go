package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/weiawesome/meson/internal/generator"
	"github.com/weiawesome/meson/internal/metrics"
	pkglog "github.com/weiawesome/meson/pkg/log"
	"github.com/weiawesome/meson/pkg/meson"
	pb "github.com/weiawesome/meson/proto/mesonv1"
)

type mesonServer struct {
	pb.UnimplementedMesonServiceServer
	gen     *generator.MesonGenerator
	metrics *metrics.Metrics
}

// NewServer returns the MesonService implementation backed by gen. m may be
// nil.
func NewServer(gen *generator.MesonGenerator, m *metrics.Metrics) pb.MesonServiceServer {
	return &mesonServer{gen: gen, metrics: m}
}

func (s *mesonServer) Generate(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	id, err := s.gen.Generate()
	if err != nil {
		return nil, toStatus(err)
	}
	s.metrics.ObserveGenerated(metrics.TransportGRPC, 1)

	l := pkglog.Ctx(ctx)
	l.Debug().Str(pkglog.FieldID, id).Msg("id generated")

	return wrapperspb.String(id), nil
}

func (s *mesonServer) GenerateBatch(ctx context.Context, req *wrapperspb.UInt32Value) (*structpb.ListValue, error) {
	count := req.GetValue()
	if count > uint32(s.gen.MaxBatch()) {
		return nil, status.Errorf(codes.InvalidArgument, "count must be between 1 and %d, got %d", s.gen.MaxBatch(), count)
	}

	ids, err := s.gen.GenerateBatch(int(count))
	if err != nil {
		return nil, toStatus(err)
	}
	s.metrics.ObserveGenerated(metrics.TransportGRPC, len(ids))

	values := make([]*structpb.Value, 0, len(ids))
	for _, id := range ids {
		values = append(values, structpb.NewStringValue(id))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *mesonServer) Parse(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	result, err := s.gen.Parse(req.GetValue())
	if err != nil {
		s.metrics.ObserveParseFailure(metrics.TransportGRPC, err)
		return nil, toStatus(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldTimestampMs: structpb.NewNumberValue(float64(result.TimestampMs)),
		pb.FieldTime:        structpb.NewStringValue(result.Time),
		pb.FieldGeneratorID: structpb.NewStringValue(result.GeneratorID),
		pb.FieldSequence:    structpb.NewNumberValue(float64(result.Sequence)),
		pb.FieldHex:         structpb.NewStringValue(result.Hex),
		pb.FieldFormatted:   structpb.NewStringValue(result.Formatted),
	}}, nil
}

func (s *mesonServer) Validate(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	valid, reason := true, ""
	if _, err := s.gen.Parse(req.GetValue()); err != nil {
		valid, reason = false, err.Error()
		s.metrics.ObserveParseFailure(metrics.TransportGRPC, err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldValid:  structpb.NewBoolValue(valid),
		pb.FieldReason: structpb.NewStringValue(reason),
	}}, nil
}

func (s *mesonServer) Info(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	info := s.gen.Info()

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldFingerprint: structpb.NewStringValue(info.Fingerprint),
		pb.FieldSequence:    structpb.NewNumberValue(float64(info.Sequence)),
		pb.FieldReseeds:     structpb.NewNumberValue(float64(info.Reseeds)),
		pb.FieldFormat:      structpb.NewStringValue(info.Format),
		pb.FieldMaxBatch:    structpb.NewNumberValue(float64(info.MaxBatch)),
	}}, nil
}

// toStatus maps meson errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, meson.ErrFormat),
		errors.Is(err, meson.ErrValidation),
		errors.Is(err, meson.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewGRPCServer builds a grpc.Server with the MesonService registered.
func NewGRPCServer(gen *generator.MesonGenerator, m *metrics.Metrics, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	pb.RegisterMesonServiceServer(s, NewServer(gen, m))
	return s
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, gen *generator.MesonGenerator, m *metrics.Metrics, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewGRPCServer(gen, m, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
