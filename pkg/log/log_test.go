package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/meson/pkg/meson"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestNewAddsServiceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:       "debug",
		ServiceName: "meson-service",
		GeneratorID: "01020304",
		Output:      &buf,
	})

	logger.Debug().Msg("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "meson-service", lines[0][FieldService])
	assert.Equal(t, "01020304", lines[0][FieldGeneratorID])
	assert.Equal(t, "hello", lines[0]["message"])
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf})

	ctx := WithLogger(context.Background(), logger)
	l := Ctx(ctx)
	l.Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	assert.NotPanics(t, func() {
		l := Ctx(context.Background())
		_ = l.Level(zerolog.Disabled)
	})
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))
}

func TestGinMiddlewareGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinMiddleware(New(Config{Output: &buf})))

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	reqID := w.Header().Get(headerRequestID)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, reqID, seen)
	assert.True(t, meson.IsValid(reqID), reqID)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, reqID, lines[0][FieldRequestID])
	assert.Equal(t, "/ping", lines[0][FieldPath])
	assert.Equal(t, float64(http.StatusNoContent), lines[0][FieldStatus])
}

func TestGinMiddlewareKeepsIncomingRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get(headerRequestID))
}

func TestUnaryServerInterceptor(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryServerInterceptor(New(Config{Output: &buf}))
	info := &grpc.UnaryServerInfo{FullMethod: "/meson.v1.MesonService/Generate"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(metadataKeyRequestID, "req-42"))
	resp, err := interceptor(ctx, "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		assert.Equal(t, "req-42", RequestID(ctx))
		return "out", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "out", resp)

	_, err = interceptor(context.Background(), "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		assert.True(t, meson.IsValid(RequestID(ctx)))
		return nil, status.Error(codes.InvalidArgument, "bad id")
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "req-42", lines[0][FieldRequestID])
	assert.Equal(t, "OK", lines[0][FieldGRPCCode])
	assert.Equal(t, "InvalidArgument", lines[1][FieldGRPCCode])
	assert.Equal(t, "info", lines[1]["level"])
}

func TestUnaryServerInterceptorLogsFailuresAsErrors(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryServerInterceptor(New(Config{Output: &buf}))
	info := &grpc.UnaryServerInfo{FullMethod: "/meson.v1.MesonService/Info"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
}

func TestUnaryClientInterceptorPropagatesRequestID(t *testing.T) {
	interceptor := UnaryClientInterceptor()
	ctx := WithRequestID(context.Background(), "req-7")

	err := interceptor(ctx, "/m", nil, nil, nil, func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		assert.Equal(t, []string{"req-7"}, md.Get(metadataKeyRequestID))
		return nil
	})
	require.NoError(t, err)
}
