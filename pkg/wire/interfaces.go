package wire

// Type is the capability every codec in this package provides. A Type
// holds no mutable state beyond construction-time parameters, so a
// single instance may serve concurrent encode/decode calls against
// independent buffers.
type Type interface {
	// Encode converts val into its exact wire representation.
	Encode(val any) ([]byte, error)

	// Decode reads one value from the cursor, advancing it. After a
	// failed decode the cursor position is undefined and the buffer
	// must be abandoned.
	Decode(c *Cursor) (any, error)

	// Describe renders val for diagnostics. Best effort: it never
	// fails, falling back to a generic rendering for foreign values.
	Describe(val any) string
}

// lengthCodec is the pluggable length-prefix strategy shared by
// String, Bytes and Array. Classic variants store a fixed-width
// big-endian integer where -1 means null; compact variants store an
// unsigned varint biased by one where zero means null.
type lengthCodec interface {
	encodeLength(n int32) ([]byte, error)
	decodeLength(c *Cursor) (int32, error)
}
