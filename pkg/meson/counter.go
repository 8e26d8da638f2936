package meson

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"
	mathrand "math/rand/v2"
	"sync/atomic"
)

// BorderlineCounterValue is the highest sequence that is incremented in
// place. A counter that has moved past it is reseeded instead.
const BorderlineCounterValue = math.MaxInt32 - 1000

// Counter is the sequence source shared by every ID a Generator produces.
// It is safe for concurrent use.
type Counter struct {
	value   atomic.Int32
	reseeds atomic.Uint64
	random  io.Reader
}

// NewCounter returns a counter seeded from crypto/rand.
func NewCounter() *Counter {
	return newCounter(rand.Reader)
}

func newCounter(random io.Reader) *Counter {
	c := &Counter{random: random}
	c.value.Store(c.seed())
	return c
}

// Next returns the current value and advances the counter. When the value
// read is past BorderlineCounterValue the counter is moved to a fresh random
// seed instead of being incremented. No two callers observe the same value
// between reseeds.
func (c *Counter) Next() int32 {
	for {
		cur := c.value.Load()
		next := cur + 1
		reseed := cur > BorderlineCounterValue
		if reseed {
			next = c.seed()
		}
		if c.value.CompareAndSwap(cur, next) {
			if reseed {
				c.reseeds.Add(1)
			}
			return cur
		}
	}
}

// Current is a snapshot for diagnostics. It may be stale by the time it is
// returned.
func (c *Counter) Current() int32 {
	return c.value.Load()
}

// Reseeds reports how many times the counter crossed the borderline.
func (c *Counter) Reseeds() uint64 {
	return c.reseeds.Load()
}

// seed draws a value in [0, BorderlineCounterValue].
func (c *Counter) seed() int32 {
	var b [4]byte
	if _, err := io.ReadFull(c.random, b[:]); err != nil {
		return mathrand.Int32N(BorderlineCounterValue + 1)
	}
	return int32(binary.BigEndian.Uint32(b[:]) % (BorderlineCounterValue + 1))
}
