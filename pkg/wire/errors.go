package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedValue reports a value that cannot be represented in
	// the target width or bytes that cannot be reinterpreted as the
	// target type.
	ErrMalformedValue = errors.New("wire: malformed value")

	// ErrBufferUnderrun reports a decode that needed more bytes than
	// the buffer still holds.
	ErrBufferUnderrun = errors.New("wire: buffer underrun")

	// ErrArityMismatch reports a Schema.Encode item whose positional
	// value count differs from the schema's field count.
	ErrArityMismatch = errors.New("wire: item arity does not match schema")

	// ErrVarintOverflow reports an unsigned varint whose encoding
	// exceeds the permitted number of 7-bit groups.
	ErrVarintOverflow = errors.New("wire: varint overflow")

	// ErrUnknownEncoding reports a text encoding name that could not
	// be resolved at String construction time.
	ErrUnknownEncoding = errors.New("wire: unknown text encoding")
)

// underrunf wraps ErrBufferUnderrun with the codec name and the
// requested versus available byte counts.
func underrunf(typ string, want, have int) error {
	return fmt.Errorf("%w: decoding %s: need %d bytes, have %d", ErrBufferUnderrun, typ, want, have)
}

// malformedf wraps ErrMalformedValue with the codec name and the
// offending value.
func malformedf(typ string, val any, reason string) error {
	return fmt.Errorf("%w: cannot represent %#v as %s: %s", ErrMalformedValue, val, typ, reason)
}
