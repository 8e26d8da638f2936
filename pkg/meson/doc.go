// Package meson provides a 112-bit, roughly time-ordered identifier that can
// be generated locally without coordination.
//
// # Format
//
// The ID is 14 bytes big-endian:
// [6 bytes ms_timestamp][4 bytes generator_id][4 bytes sequence].
// Byte-wise comparison therefore orders IDs by time first, then by
// generator, then by sequence.
//
// The canonical text form is 28 lowercase hex characters. The formatted
// text form groups the fields with hyphens:
//
//	TTTTTTTTTTTT-GGGGGGGG-SSSSSSSS
//
// # Generator identity
//
// The generator id is a CRC32 fingerprint of whatever host identity is
// readable at startup: the container cgroup, hostname, process id and
// network interfaces. Every source is optional.
//
// # Sequence
//
// The sequence counter starts at a random value and is advanced atomically
// on every generation. It is reseeded to a new random value before it can
// overflow, so sequences are always non-negative.
//
// Usage
//
//	id := meson.New()
//	s := id.String()     // 28 hex chars
//	f := id.Formatted()  // 000000000064-01020304-000000c8
//	parsed, err := meson.Parse(s)
//
//	hex := meson.NewHex() // no ID value allocated
package meson
