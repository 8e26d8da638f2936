// Package client is a gRPC client for the meson service.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pkglog "github.com/weiawesome/meson/pkg/log"
	"github.com/weiawesome/meson/pkg/meson"
	pb "github.com/weiawesome/meson/proto/mesonv1"
)

// Info describes the generator behind a meson service instance.
type Info struct {
	Fingerprint string
	Sequence    int32
	Reseeds     uint64
	Format      string
	MaxBatch    int
}

// Client talks to a meson service over gRPC.
type Client struct {
	conn *grpc.ClientConn
	rpc  pb.MesonServiceClient
}

// New dials target. Without opts the connection is plaintext; opts are
// appended after the defaults and may override them.
func New(target string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(pkglog.UnaryClientInterceptor()),
	}, opts...)

	conn, err := grpc.Dial(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to meson service at %s: %w", target, err)
	}
	return &Client{conn: conn, rpc: pb.NewMesonServiceClient(conn)}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Generate asks the service for one identifier.
func (c *Client) Generate(ctx context.Context) (meson.ID, error) {
	resp, err := c.rpc.Generate(ctx, &emptypb.Empty{})
	if err != nil {
		return meson.ID{}, err
	}
	return meson.Parse(resp.GetValue())
}

// GenerateBatch asks the service for count identifiers.
func (c *Client) GenerateBatch(ctx context.Context, count uint32) ([]meson.ID, error) {
	resp, err := c.rpc.GenerateBatch(ctx, wrapperspb.UInt32(count))
	if err != nil {
		return nil, err
	}

	ids := make([]meson.ID, 0, len(resp.GetValues()))
	for _, v := range resp.GetValues() {
		id, err := meson.Parse(v.GetStringValue())
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Parse has the service decode text. Rejected text surfaces as a gRPC
// InvalidArgument status.
func (c *Client) Parse(ctx context.Context, text string) (meson.ID, error) {
	resp, err := c.rpc.Parse(ctx, wrapperspb.String(text))
	if err != nil {
		return meson.ID{}, err
	}
	return meson.Parse(stringField(resp, pb.FieldHex))
}

// Validate reports whether the service accepts text, and why not.
func (c *Client) Validate(ctx context.Context, text string) (bool, string, error) {
	resp, err := c.rpc.Validate(ctx, wrapperspb.String(text))
	if err != nil {
		return false, "", err
	}
	return resp.GetFields()[pb.FieldValid].GetBoolValue(), stringField(resp, pb.FieldReason), nil
}

// Info fetches the service's generator state.
func (c *Client) Info(ctx context.Context) (Info, error) {
	resp, err := c.rpc.Info(ctx, &emptypb.Empty{})
	if err != nil {
		return Info{}, err
	}
	return Info{
		Fingerprint: stringField(resp, pb.FieldFingerprint),
		Sequence:    int32(numberField(resp, pb.FieldSequence)),
		Reseeds:     uint64(numberField(resp, pb.FieldReseeds)),
		Format:      stringField(resp, pb.FieldFormat),
		MaxBatch:    int(numberField(resp, pb.FieldMaxBatch)),
	}, nil
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func numberField(s *structpb.Struct, key string) float64 {
	return s.GetFields()[key].GetNumberValue()
}
