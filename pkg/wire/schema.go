package wire

import (
	"bytes"
	"fmt"
	"strings"
)

// Field pairs a diagnostic name with the codec governing one schema
// position. Names need not be unique; they only feed Describe output
// and error messages.
type Field struct {
	Name string
	Type Type
}

// Schema is an ordered, heterogeneous tuple codec. Items are
// positional []any values whose length must equal the field count.
// A Schema is immutable after construction and reused across calls.
type Schema struct {
	fields []Field
}

// NewSchema builds a Schema from fields in declaration order.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{fields: make([]Field, len(fields))}
	copy(s.fields, fields)
	return s
}

// Len returns the field count.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns the schema's fields in declaration order. The slice
// is a copy; mutating it does not affect the schema.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Encode concatenates each field codec's encoding of the matching
// positional value. An item whose value count differs from the field
// count fails with ErrArityMismatch.
func (s *Schema) Encode(val any) ([]byte, error) {
	item, ok := val.([]any)
	if !ok {
		return nil, malformedf("schema", val, fmt.Sprintf("item must be []any, got %T", val))
	}
	if len(item) != len(s.fields) {
		return nil, fmt.Errorf("%w: item has %d values, schema has %d fields", ErrArityMismatch, len(item), len(s.fields))
	}
	var buf bytes.Buffer
	for i, f := range s.fields {
		p, err := f.Type.Encode(item[i])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", f.Name, err)
		}
		buf.Write(p)
	}
	return buf.Bytes(), nil
}

// Decode reads each field in declaration order and returns the
// positional values as []any. Decoding never backtracks: a failure
// leaves the cursor mid-field and the buffer must be abandoned.
func (s *Schema) Decode(c *Cursor) (any, error) {
	item := make([]any, len(s.fields))
	for i, f := range s.fields {
		v, err := f.Type.Decode(c)
		if err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", f.Name, err)
		}
		item[i] = v
	}
	return item, nil
}

// Describe pairs field names with each field codec's own rendering.
// Items of the wrong shape fall back to a generic rendering.
func (s *Schema) Describe(val any) string {
	item, ok := val.([]any)
	if !ok || len(item) != len(s.fields) {
		return fmt.Sprintf("%v", val)
	}
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = fmt.Sprintf("%s=%s", f.Name, f.Type.Describe(item[i]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
