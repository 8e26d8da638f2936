package meson

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// uint48Bytes packs the low 48 bits of v big-endian. Range checks belong to
// the caller.
func uint48Bytes(v uint64) [TimeSize]byte {
	var b [TimeSize]byte
	putUint48(b[:], v)
	return b
}

func putUint48(b []byte, v uint64) {
	_ = b[5]
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

func uint48At(b []byte, offset int) uint64 {
	b = b[offset : offset+TimeSize]
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

func int32Bytes(v int32) [SequenceSize]byte {
	var b [SequenceSize]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

func int32At(b []byte, offset int) int32 {
	return int32(binary.BigEndian.Uint32(b[offset : offset+SequenceSize]))
}

func int64Bytes(v int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(v))
}

// encodeHex returns lowercase hex with no separators.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// decodeHex accepts upper and lower case digits.
func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return b, nil
}
