package meson

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

const (
	// TimeSize is the size of the time field in bytes.
	TimeSize = 6
	// GeneratorIDSize is the size of the generator id field in bytes.
	GeneratorIDSize = 4
	// SequenceSize is the size of the sequence field in bytes.
	SequenceSize = 4
	// Size is the total size of an ID in bytes.
	Size = TimeSize + GeneratorIDSize + SequenceSize

	// HexLength is the length of the canonical text form.
	HexLength = Size * 2
	// FormattedLength is the length of the hyphenated text form.
	FormattedLength = HexLength + 2

	// MinTime is the smallest supported timestamp in Unix milliseconds.
	MinTime int64 = 0
	// MaxTime is the largest supported timestamp in Unix milliseconds.
	MaxTime int64 = 1<<48 - 1
)

const (
	generatorOffset = TimeSize
	sequenceOffset  = TimeSize + GeneratorIDSize

	// hyphen positions in the formatted text form
	firstDash  = TimeSize * 2
	secondDash = firstDash + 1 + GeneratorIDSize*2
)

// ID is a 112-bit identifier encoded as 14 bytes big-endian:
// [6 bytes ms_timestamp][4 bytes generator_id][4 bytes sequence].
// Two IDs are equal under == exactly when all three fields are equal.
type ID [Size]byte

// FromFields builds an ID from its components.
func FromFields(ms int64, generatorID []byte, sequence int32) (ID, error) {
	if err := validate(ms, len(generatorID), sequence); err != nil {
		return ID{}, err
	}
	return pack(ms, generatorID, sequence), nil
}

// FromBytes decodes the 14-byte binary form.
func FromBytes(b []byte) (ID, error) {
	if len(b) != Size {
		return ID{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrValidation, Size, len(b))
	}
	var id ID
	copy(id[:], b)
	if err := validate(id.Time(), GeneratorIDSize, id.Sequence()); err != nil {
		return ID{}, err
	}
	return id, nil
}

// Parse decodes the canonical 28 character hex form or the hyphenated
// TTTTTTTTTTTT-GGGGGGGG-SSSSSSSS form. Hex digits may be upper or lower case.
func Parse(s string) (ID, error) {
	compact, err := compactHex(s)
	if err != nil {
		return ID{}, err
	}
	b, err := decodeHex(compact)
	if err != nil {
		return ID{}, err
	}
	return FromBytes(b)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether s parses into a valid ID.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// compactHex strips the hyphens of the formatted form. Hyphens are only
// accepted at the two field boundaries.
func compactHex(s string) (string, error) {
	switch len(s) {
	case HexLength:
		if strings.IndexByte(s, '-') >= 0 {
			return "", fmt.Errorf("%w: unexpected '-' in compact form %q", ErrFormat, s)
		}
		return s, nil
	case FormattedLength:
		if s[firstDash] != '-' || s[secondDash] != '-' {
			return "", fmt.Errorf("%w: expected TTTTTTTTTTTT-GGGGGGGG-SSSSSSSS, got %q", ErrFormat, s)
		}
		compact := s[:firstDash] + s[firstDash+1:secondDash] + s[secondDash+1:]
		if strings.IndexByte(compact, '-') >= 0 {
			return "", fmt.Errorf("%w: unexpected '-' in %q", ErrFormat, s)
		}
		return compact, nil
	default:
		return "", fmt.Errorf("%w: expected %d or %d characters, got %d", ErrFormat, HexLength, FormattedLength, len(s))
	}
}

func validate(ms int64, generatorIDLen int, sequence int32) error {
	if ms < MinTime || ms > MaxTime {
		return fmt.Errorf("%w: time must be between %d and %d, got %d", ErrValidation, MinTime, MaxTime, ms)
	}
	if generatorIDLen != GeneratorIDSize {
		return fmt.Errorf("%w: generator id must be %d bytes, got %d", ErrValidation, GeneratorIDSize, generatorIDLen)
	}
	if sequence < 0 {
		return fmt.Errorf("%w: sequence must be between 0 and %d, got %d", ErrValidation, math.MaxInt32, sequence)
	}
	return nil
}

// pack lays out the fields without validating them.
func pack(ms int64, generatorID []byte, sequence int32) ID {
	var id ID
	putUint48(id[:generatorOffset], uint64(ms))
	copy(id[generatorOffset:sequenceOffset], generatorID)
	seq := int32Bytes(sequence)
	copy(id[sequenceOffset:], seq[:])
	return id
}

// Time returns the timestamp in Unix milliseconds.
func (id ID) Time() int64 { return int64(uint48At(id[:], 0)) }

// Timestamp returns the creation time in UTC.
func (id ID) Timestamp() time.Time { return time.UnixMilli(id.Time()).UTC() }

// TimeBytes returns the 48-bit big-endian time field.
func (id ID) TimeBytes() [TimeSize]byte {
	var b [TimeSize]byte
	copy(b[:], id[:generatorOffset])
	return b
}

// TimeHex returns the time field as 12 hex characters.
func (id ID) TimeHex() string { return encodeHex(id[:generatorOffset]) }

// GeneratorID returns the fingerprint of the generator that produced id.
func (id ID) GeneratorID() [GeneratorIDSize]byte {
	var b [GeneratorIDSize]byte
	copy(b[:], id[generatorOffset:sequenceOffset])
	return b
}

// GeneratorIDHex returns the generator id as 8 hex characters.
func (id ID) GeneratorIDHex() string { return encodeHex(id[generatorOffset:sequenceOffset]) }

// Sequence returns the sequence number.
func (id ID) Sequence() int32 { return int32At(id[:], sequenceOffset) }

// SequenceBytes returns the 32-bit big-endian sequence field.
func (id ID) SequenceBytes() [SequenceSize]byte {
	var b [SequenceSize]byte
	copy(b[:], id[sequenceOffset:])
	return b
}

// SequenceHex returns the sequence as 8 hex characters.
func (id ID) SequenceHex() string { return encodeHex(id[sequenceOffset:]) }

// Bytes returns a copy of the 14-byte representation.
func (id ID) Bytes() []byte { return slices.Clone(id[:]) }

// Hex returns the canonical 28 character lowercase hex form.
func (id ID) Hex() string { return encodeHex(id[:]) }

// String returns the canonical text form.
func (id ID) String() string { return id.Hex() }

// Formatted returns the hyphenated TTTTTTTTTTTT-GGGGGGGG-SSSSSSSS form.
func (id ID) Formatted() string {
	return formatFields(id[:generatorOffset], id[generatorOffset:sequenceOffset], id[sequenceOffset:])
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == ID{} }

// Compare orders IDs by their bytes, which is time, then generator id, then
// sequence.
func (id ID) Compare(other ID) int { return bytes.Compare(id[:], other[:]) }

// Before reports whether id sorts before other.
func (id ID) Before(other ID) bool { return id.Compare(other) < 0 }

// After reports whether id sorts after other.
func (id ID) After(other ID) bool { return id.Compare(other) > 0 }

// Compare orders two IDs held by pointer. A nil operand is an
// ErrInvalidArgument.
func Compare(a, b *ID) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: cannot compare with a nil ID", ErrInvalidArgument)
	}
	return a.Compare(*b), nil
}

// Sort sorts ids in ascending order.
func Sort(ids []ID) {
	slices.SortFunc(ids, ID.Compare)
}

func formatFields(t, g, s []byte) string {
	var sb strings.Builder
	sb.Grow(FormattedLength)
	sb.WriteString(encodeHex(t))
	sb.WriteByte('-')
	sb.WriteString(encodeHex(g))
	sb.WriteByte('-')
	sb.WriteString(encodeHex(s))
	return sb.String()
}
