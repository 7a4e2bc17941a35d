package wire

import (
	"bytes"
	"fmt"
	"strings"
)

// arrayAllocCap bounds the slice capacity pre-allocated from a wire
// length, so an attacker-controlled prefix cannot force a huge
// allocation before any element bytes exist. Decode still reads
// exactly as many elements as the prefix declares.
const arrayAllocCap = 1024

// Array is the homogeneous sequence codec. The element codec may be
// any Type in this package, including a Schema or another Array, so
// nesting depth is unbounded. nil encodes as the null length.
type Array struct {
	elem    Type
	lengths lengthCodec
}

// NewArray returns the classic int32 length-prefixed Array over elem.
func NewArray(elem Type) Array {
	return Array{elem: elem, lengths: int32Lengths{}}
}

// NewCompactArray returns the compact Array over elem.
func NewCompactArray(elem Type) Array {
	return Array{elem: elem, lengths: varintLengths{}}
}

// NewArrayOf returns a classic Array whose element codec is an
// implicit Schema built from fields.
func NewArrayOf(fields ...Field) Array {
	return NewArray(NewSchema(fields...))
}

// NewCompactArrayOf returns a compact Array over an implicit Schema.
func NewCompactArrayOf(fields ...Field) Array {
	return NewCompactArray(NewSchema(fields...))
}

// Elem returns the element codec.
func (a Array) Elem() Type {
	return a.elem
}

func (a Array) Encode(val any) ([]byte, error) {
	if a.elem == nil {
		return nil, malformedf("array", val, "array constructed without an element type")
	}
	if val == nil {
		return a.lengths.encodeLength(-1)
	}
	items, ok := val.([]any)
	if !ok {
		return nil, malformedf("array", val, fmt.Sprintf("items must be []any, got %T", val))
	}
	prefix, err := a.lengths.encodeLength(int32(len(items)))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(prefix)
	for i, item := range items {
		p, err := a.elem.Encode(item)
		if err != nil {
			return nil, fmt.Errorf("encoding array element %d: %w", i, err)
		}
		buf.Write(p)
	}
	return buf.Bytes(), nil
}

func (a Array) Decode(c *Cursor) (any, error) {
	if a.elem == nil {
		return nil, malformedf("array", nil, "array constructed without an element type")
	}
	length, err := a.lengths.decodeLength(c)
	if err != nil {
		return nil, fmt.Errorf("decoding array: %w", err)
	}
	if length == -1 {
		return nil, nil
	}
	if length < -1 {
		return nil, malformedf("array", length, "negative element count")
	}
	items := make([]any, 0, min(int(length), arrayAllocCap))
	for i := int32(0); i < length; i++ {
		v, err := a.elem.Decode(c)
		if err != nil {
			return nil, fmt.Errorf("decoding array element %d: %w", i, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func (a Array) Describe(val any) string {
	if val == nil {
		return "NULL"
	}
	items, ok := val.([]any)
	if !ok || a.elem == nil {
		return fmt.Sprintf("%v", val)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = a.elem.Describe(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
