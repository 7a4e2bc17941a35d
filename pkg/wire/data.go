package wire

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// String is the length-prefixed text codec. The classic variant
// carries a 2-byte big-endian length, the compact variant a biased
// varint. A nil value encodes as the null length; decode of the null
// length yields nil without reading a payload.
type String struct {
	lengths lengthCodec
	enc     encoding.Encoding // nil means UTF-8 passthrough
	name    string
}

// NewString returns the classic UTF-8 String codec.
func NewString() String {
	return String{lengths: int16Lengths{}, name: "utf-8"}
}

// NewCompactString returns the compact UTF-8 String codec.
func NewCompactString() String {
	return String{lengths: varintLengths{}, name: "utf-8"}
}

// NewStringEncoding returns a classic String codec transcoding through
// the named IANA text encoding. The name is resolved once here; an
// unknown name fails with ErrUnknownEncoding.
func NewStringEncoding(name string) (String, error) {
	enc, canonical, err := resolveEncoding(name)
	if err != nil {
		return String{}, err
	}
	return String{lengths: int16Lengths{}, enc: enc, name: canonical}, nil
}

// NewCompactStringEncoding is NewStringEncoding with the compact
// length prefix.
func NewCompactStringEncoding(name string) (String, error) {
	enc, canonical, err := resolveEncoding(name)
	if err != nil {
		return String{}, err
	}
	return String{lengths: varintLengths{}, enc: enc, name: canonical}, nil
}

// resolveEncoding maps an IANA encoding name to a transcoder. UTF-8 is
// handled natively and returns a nil Encoding.
func resolveEncoding(name string) (encoding.Encoding, string, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, "utf-8", nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, name, nil
}

func (s String) lengthsOrDefault() lengthCodec {
	if s.lengths == nil {
		return int16Lengths{}
	}
	return s.lengths
}

func (s String) Encode(val any) ([]byte, error) {
	if val == nil {
		return s.lengthsOrDefault().encodeLength(-1)
	}
	str, ok := val.(string)
	if !ok {
		return nil, malformedf("string", val, fmt.Sprintf("unsupported value type %T", val))
	}
	payload, err := s.encodeText(str)
	if err != nil {
		return nil, err
	}
	prefix, err := s.lengthsOrDefault().encodeLength(int32(len(payload)))
	if err != nil {
		return nil, err
	}
	return append(prefix, payload...), nil
}

func (s String) Decode(c *Cursor) (any, error) {
	length, err := s.lengthsOrDefault().decodeLength(c)
	if err != nil {
		return nil, fmt.Errorf("decoding string: %w", err)
	}
	if length < 0 {
		return nil, nil
	}
	payload, err := c.Read(int(length))
	if err != nil {
		return nil, fmt.Errorf("decoding string: %w", err)
	}
	return s.decodeText(payload)
}

func (s String) Describe(val any) string {
	if val == nil {
		return "NULL"
	}
	return fmt.Sprintf("%q", val)
}

func (s String) encodeText(str string) ([]byte, error) {
	if s.enc == nil {
		return []byte(str), nil
	}
	payload, err := s.enc.NewEncoder().Bytes([]byte(str))
	if err != nil {
		return nil, malformedf("string", str, fmt.Sprintf("cannot encode as %s: %v", s.name, err))
	}
	return payload, nil
}

func (s String) decodeText(payload []byte) (string, error) {
	if s.enc == nil {
		if !utf8.Valid(payload) {
			return "", malformedf("string", payload, "invalid utf-8 payload")
		}
		return string(payload), nil
	}
	decoded, err := s.enc.NewDecoder().Bytes(payload)
	if err != nil {
		return "", malformedf("string", payload, fmt.Sprintf("cannot decode as %s: %v", s.name, err))
	}
	return string(decoded), nil
}

// Bytes is the length-prefixed raw blob codec. The classic variant
// carries a 4-byte big-endian length, the compact variant a biased
// varint. nil encodes as the null length.
type Bytes struct {
	lengths lengthCodec
}

// NewBytes returns the classic Bytes codec.
func NewBytes() Bytes {
	return Bytes{lengths: int32Lengths{}}
}

// NewCompactBytes returns the compact Bytes codec.
func NewCompactBytes() Bytes {
	return Bytes{lengths: varintLengths{}}
}

func (b Bytes) lengthsOrDefault() lengthCodec {
	if b.lengths == nil {
		return int32Lengths{}
	}
	return b.lengths
}

func (b Bytes) Encode(val any) ([]byte, error) {
	if val == nil {
		return b.lengthsOrDefault().encodeLength(-1)
	}
	p, ok := val.([]byte)
	if !ok {
		return nil, malformedf("bytes", val, fmt.Sprintf("unsupported value type %T", val))
	}
	prefix, err := b.lengthsOrDefault().encodeLength(int32(len(p)))
	if err != nil {
		return nil, err
	}
	return append(prefix, p...), nil
}

func (b Bytes) Decode(c *Cursor) (any, error) {
	length, err := b.lengthsOrDefault().decodeLength(c)
	if err != nil {
		return nil, fmt.Errorf("decoding bytes: %w", err)
	}
	if length < 0 {
		return nil, nil
	}
	payload, err := c.Read(int(length))
	if err != nil {
		return nil, fmt.Errorf("decoding bytes: %w", err)
	}
	out := make([]byte, length)
	copy(out, payload)
	return out, nil
}

func (b Bytes) Describe(val any) string {
	if val == nil {
		return "NULL"
	}
	p, ok := val.([]byte)
	if !ok {
		return fmt.Sprintf("%v", val)
	}
	if len(p) > 100 {
		return fmt.Sprintf("%x...(%d bytes)", p[:100], len(p))
	}
	return fmt.Sprintf("%x", p)
}
