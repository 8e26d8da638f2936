package meson_test

import (
	"testing"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nrednav/cuid2"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"

	"github.com/weiawesome/meson/pkg/meson"
)

// UUID, ULID, KSUID, NanoID and CUID2 are baselines.

func BenchmarkNew(b *testing.B) {
	g := meson.NewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.New()
	}
}

func BenchmarkNewHex(b *testing.B) {
	g := meson.NewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.NewHex()
	}
}

func BenchmarkNewFormatted(b *testing.B) {
	g := meson.NewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.NewFormatted()
	}
}

func BenchmarkNewParallel(b *testing.B) {
	g := meson.NewGenerator()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = g.New()
		}
	})
}

func BenchmarkParse(b *testing.B) {
	s := meson.NewHex()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := meson.Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUIDv4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = uuid.New().String()
	}
}

func BenchmarkUUIDv7(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = uuid.Must(uuid.NewV7()).String()
	}
}

func BenchmarkULID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ulid.Make().String()
	}
}

func BenchmarkKSUID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ksuid.New().String()
	}
}

func BenchmarkNanoID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gonanoid.New(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCUID2(b *testing.B) {
	generate, err := cuid2.Init(cuid2.WithLength(24))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = generate()
	}
}
