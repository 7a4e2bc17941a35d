// Package wire implements the typed value codecs underlying a
// length-prefixed, schema-driven broker protocol.
//
// Every codec satisfies the Type interface: Encode turns an in-memory
// value into its exact wire bytes, Decode reconstructs a value from a
// Cursor over a received buffer, and Describe renders a value for
// diagnostics. Codecs are immutable once constructed and safe for
// concurrent use; a Cursor is single-use and must not be shared.
//
// Two families of length prefix exist. Classic codecs (String, Bytes,
// Array) carry a fixed-width big-endian length where -1 marks a null
// value. Compact codecs carry an unsigned varint biased by one, so a
// stored zero marks null and a stored N means N-1 payload bytes.
// Schema composes codecs into an ordered named tuple, Array repeats a
// single element codec (which may itself be a Schema), and TaggedField
// carries forward-compatible (tag, bytes) extension pairs.
package wire
