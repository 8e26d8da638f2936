package log

import "github.com/weiawesome/meson/pkg/meson"

const (
	headerRequestID      = "X-Request-ID"
	metadataKeyRequestID = "x-request-id"
)

// NewRequestID generates request IDs for callers that did not send one.
// Services that run their own meson generator replace it at startup.
var NewRequestID = meson.NewHex
