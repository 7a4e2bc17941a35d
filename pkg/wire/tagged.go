package wire

import (
	"bytes"
	"fmt"
	"strings"
)

// TagValue is one (tag, raw bytes) extension pair carried by flexible
// protocol versions. A nil Value is the null payload; readers that do
// not recognize Tag round-trip or skip the pair without interpreting
// Value.
type TagValue struct {
	Tag   uint32
	Value []byte
}

// TaggedField encodes and decodes a single TagValue: the tag as an
// unsigned varint, then the payload behind a biased varint length.
// The codec is stateless.
type TaggedField struct{}

func (TaggedField) Encode(val any) ([]byte, error) {
	tv, ok := val.(TagValue)
	if !ok {
		return nil, malformedf("tagged field", val, fmt.Sprintf("unsupported value type %T", val))
	}
	size := int32(-1)
	if tv.Value != nil {
		size = int32(len(tv.Value))
	}
	prefix, err := varintLengths{}.encodeLength(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(WriteUnsignedVarint(tv.Tag))
	buf.Write(prefix)
	buf.Write(tv.Value)
	return buf.Bytes(), nil
}

func (TaggedField) Decode(c *Cursor) (any, error) {
	tag, err := ReadUnsignedVarint(c)
	if err != nil {
		return nil, fmt.Errorf("decoding tagged field: %w", err)
	}
	size, err := varintLengths{}.decodeLength(c)
	if err != nil {
		return nil, fmt.Errorf("decoding tagged field %d: %w", tag, err)
	}
	if size < 0 {
		return TagValue{Tag: tag}, nil
	}
	p, err := c.Read(int(size))
	if err != nil {
		return nil, fmt.Errorf("decoding tagged field %d: %w", tag, err)
	}
	value := make([]byte, size)
	copy(value, p)
	return TagValue{Tag: tag, Value: value}, nil
}

func (TaggedField) Describe(val any) string {
	tv, ok := val.(TagValue)
	if !ok {
		return fmt.Sprintf("%v", val)
	}
	if tv.Value == nil {
		return fmt.Sprintf("tag %d=NULL", tv.Tag)
	}
	return fmt.Sprintf("tag %d=%x", tv.Tag, tv.Value)
}

// TaggedFields is the flexible-version tagged section: an unsigned
// varint pair count followed by that many TaggedField encodings. Tags
// must be strictly ascending on the wire so unaware readers can skip
// unknown extensions by tag order.
type TaggedFields struct{}

func (TaggedFields) Encode(val any) ([]byte, error) {
	pairs, ok := val.([]TagValue)
	if !ok {
		return nil, malformedf("tagged fields", val, fmt.Sprintf("unsupported value type %T", val))
	}
	var buf bytes.Buffer
	buf.Write(WriteUnsignedVarint(uint32(len(pairs))))
	for i, tv := range pairs {
		if i > 0 && tv.Tag <= pairs[i-1].Tag {
			return nil, malformedf("tagged fields", tv.Tag, "tags must be strictly ascending")
		}
		p, err := TaggedField{}.Encode(tv)
		if err != nil {
			return nil, err
		}
		buf.Write(p)
	}
	return buf.Bytes(), nil
}

func (TaggedFields) Decode(c *Cursor) (any, error) {
	count, err := ReadUnsignedVarint(c)
	if err != nil {
		return nil, fmt.Errorf("decoding tagged fields: %w", err)
	}
	pairs := make([]TagValue, 0, min(int(count), arrayAllocCap))
	for i := uint32(0); i < count; i++ {
		v, err := TaggedField{}.Decode(c)
		if err != nil {
			return nil, err
		}
		tv := v.(TagValue)
		if i > 0 && tv.Tag <= pairs[i-1].Tag {
			return nil, malformedf("tagged fields", tv.Tag, "tags must be strictly ascending")
		}
		pairs = append(pairs, tv)
	}
	return pairs, nil
}

func (TaggedFields) Describe(val any) string {
	pairs, ok := val.([]TagValue)
	if !ok {
		return fmt.Sprintf("%v", val)
	}
	parts := make([]string, len(pairs))
	for i, tv := range pairs {
		parts[i] = TaggedField{}.Describe(tv)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
