package meson

import (
	"sync"
	"time"
)

// Generator produces IDs from a clock, a generator fingerprint and a
// sequence counter. It is safe for concurrent use.
type Generator struct {
	now         func() time.Time
	fingerprint *FingerprintProvider
	counter     *Counter
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithFingerprintProvider sets the source of the generator id.
func WithFingerprintProvider(p *FingerprintProvider) Option {
	return func(g *Generator) {
		g.fingerprint = p
	}
}

// WithFingerprint pins the generator id.
func WithFingerprint(id [GeneratorIDSize]byte) Option {
	return WithFingerprintProvider(StaticFingerprint(id))
}

// WithCounter sets the sequence counter. Generators sharing a counter never
// hand out the same sequence.
func WithCounter(c *Counter) Option {
	return func(g *Generator) {
		g.counter = c
	}
}

// NewGenerator returns a Generator with its own counter and a fingerprint
// provider over the default sources, unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.fingerprint == nil {
		g.fingerprint = NewFingerprintProvider()
	}
	if g.counter == nil {
		g.counter = NewCounter()
	}
	return g
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return NewGenerator()
})

// Default returns the process-wide generator, creating it on first use.
func Default() *Generator {
	return defaultGenerator()
}

// New returns an ID for the current time.
func (g *Generator) New() ID {
	fp := g.fingerprint.Fingerprint()
	return pack(g.nowMs(), fp[:], g.counter.Next())
}

// Batch returns n IDs. Sequences are drawn in order, so a batch is sorted
// unless the counter was reseeded or the clock moved backwards mid-batch.
func (g *Generator) Batch(n int) []ID {
	if n <= 0 {
		return nil
	}
	fp := g.fingerprint.Fingerprint()
	ids := make([]ID, n)
	for i := range ids {
		ids[i] = pack(g.nowMs(), fp[:], g.counter.Next())
	}
	return ids
}

// NewBytes returns the binary form of a new ID.
func (g *Generator) NewBytes() [Size]byte {
	return g.New()
}

// NewHex returns the canonical text form of a new ID.
func (g *Generator) NewHex() string {
	id := g.New()
	return encodeHex(id[:])
}

// NewFormatted returns the hyphenated text form of a new ID.
func (g *Generator) NewFormatted() string {
	t := uint48Bytes(uint64(g.nowMs()))
	fp := g.fingerprint.Fingerprint()
	seq := int32Bytes(g.counter.Next())
	return formatFields(t[:], fp[:], seq[:])
}

// Fingerprint returns the generator id stamped into every ID.
func (g *Generator) Fingerprint() [GeneratorIDSize]byte {
	return g.fingerprint.Fingerprint()
}

// FingerprintHex returns the generator id as 8 hex characters.
func (g *Generator) FingerprintHex() string {
	return g.fingerprint.FingerprintHex()
}

// CurrentSequence is a diagnostic snapshot of the counter.
func (g *Generator) CurrentSequence() int32 {
	return g.counter.Current()
}

// Reseeds reports how many times the counter was reseeded.
func (g *Generator) Reseeds() uint64 {
	return g.counter.Reseeds()
}

func (g *Generator) nowMs() int64 {
	return g.now().UnixMilli()
}
