package meson

// New returns an ID for the current time from the default generator.
func New() ID { return Default().New() }

// NewBytes returns the binary form of a new ID from the default generator.
func NewBytes() [Size]byte { return Default().NewBytes() }

// NewHex returns the canonical text form of a new ID from the default
// generator.
func NewHex() string { return Default().NewHex() }

// NewFormatted returns the hyphenated text form of a new ID from the default
// generator.
func NewFormatted() string { return Default().NewFormatted() }

// Fingerprint returns the generator id of this process.
func Fingerprint() [GeneratorIDSize]byte { return Default().Fingerprint() }

// FingerprintHex returns the generator id of this process as hex.
func FingerprintHex() string { return Default().FingerprintHex() }

// CurrentSequence is a diagnostic snapshot of the default counter.
func CurrentSequence() int32 { return Default().CurrentSequence() }
