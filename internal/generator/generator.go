package generator

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields from an ID.
type ParseResult struct {
	TimestampMs int64  `json:"timestamp_ms"`
	Time        string `json:"time"` // RFC3339 with milliseconds, UTC
	GeneratorID string `json:"generator_id"`
	Sequence    int32  `json:"sequence"`
	Hex         string `json:"hex"`
	Formatted   string `json:"formatted"`
}

// Info describes the generator behind a service instance.
type Info struct {
	Fingerprint string `json:"fingerprint"`
	Sequence    int32  `json:"sequence"`
	Reseeds     uint64 `json:"reseeds"`
	Format      string `json:"format"`
	MaxBatch    int    `json:"max_batch"`
}
