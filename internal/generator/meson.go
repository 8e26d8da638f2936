package generator

import (
	"errors"
	"fmt"

	"github.com/weiawesome/meson/internal/config"
	"github.com/weiawesome/meson/pkg/meson"
)

const DefaultMaxBatch = 1000

// Failure reasons reported by Reason.
const (
	ReasonFormat     = "format"
	ReasonValidation = "validation"
	ReasonArgument   = "argument"
	ReasonUnknown    = "unknown"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

var _ Generator = (*MesonGenerator)(nil)

// MesonGenerator issues meson IDs in the configured text form.
type MesonGenerator struct {
	gen       *meson.Generator
	formatted bool
	maxBatch  int
}

// NewMesonGenerator wraps gen. format is config.FormatCompact or
// config.FormatFormatted; maxBatch bounds GenerateBatch.
func NewMesonGenerator(gen *meson.Generator, format string, maxBatch int) (*MesonGenerator, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil meson generator", meson.ErrInvalidArgument)
	}
	var formatted bool
	switch format {
	case "", config.FormatCompact:
	case config.FormatFormatted:
		formatted = true
	default:
		return nil, fmt.Errorf("%w: unknown format %q", meson.ErrInvalidArgument, format)
	}
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	return &MesonGenerator{
		gen:       gen,
		formatted: formatted,
		maxBatch:  maxBatch,
	}, nil
}

func (g *MesonGenerator) Generate() (string, error) {
	return g.text(g.gen.New()), nil
}

func (g *MesonGenerator) GenerateBatch(count int) ([]string, error) {
	if count < 1 || count > g.maxBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", meson.ErrInvalidArgument, g.maxBatch, count)
	}
	ids := g.gen.Batch(count)
	out := make([]string, 0, count)
	for _, id := range ids {
		out = append(out, g.text(id))
	}
	return out, nil
}

func (g *MesonGenerator) Validate(id string) (bool, string) {
	if _, err := meson.Parse(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *MesonGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := meson.Parse(id)
	if err != nil {
		return nil, err
	}
	return NewParseResult(parsed), nil
}

// Info reports the fingerprint and counter state.
func (g *MesonGenerator) Info() Info {
	format := config.FormatCompact
	if g.formatted {
		format = config.FormatFormatted
	}
	return Info{
		Fingerprint: g.gen.FingerprintHex(),
		Sequence:    g.gen.CurrentSequence(),
		Reseeds:     g.gen.Reseeds(),
		Format:      format,
		MaxBatch:    g.maxBatch,
	}
}

// MaxBatch is the largest count GenerateBatch accepts.
func (g *MesonGenerator) MaxBatch() int {
	return g.maxBatch
}

func (g *MesonGenerator) text(id meson.ID) string {
	if g.formatted {
		return id.Formatted()
	}
	return id.Hex()
}

// NewParseResult breaks id into its fields.
func NewParseResult(id meson.ID) *ParseResult {
	return &ParseResult{
		TimestampMs: id.Time(),
		Time:        id.Timestamp().Format(timeLayout),
		GeneratorID: id.GeneratorIDHex(),
		Sequence:    id.Sequence(),
		Hex:         id.Hex(),
		Formatted:   id.Formatted(),
	}
}

// Reason classifies err for metrics labels and API error codes.
func Reason(err error) string {
	switch {
	case errors.Is(err, meson.ErrFormat):
		return ReasonFormat
	case errors.Is(err, meson.ErrValidation):
		return ReasonValidation
	case errors.Is(err, meson.ErrInvalidArgument):
		return ReasonArgument
	default:
		return ReasonUnknown
	}
}
