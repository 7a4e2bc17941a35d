package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every codec satisfies the Type capability.
var _ = []Type{
	Int8{}, Int16{}, Int32{}, Int64{}, Boolean{}, Float64{}, UUID{},
	VarInt{}, UnsignedVarInt{}, VarLong{},
	NewString(), NewCompactString(), NewBytes(), NewCompactBytes(),
	NewSchema(), NewArray(Int8{}), NewCompactArray(Int8{}),
	TaggedField{}, TaggedFields{},
}

// A flexible-version response shape: header fields, a compact array of
// per-topic schemas, and a trailing tagged section.
func fetchResponseSchema() *Schema {
	return NewSchema(
		Field{"correlation_id", Int32{}},
		Field{"throttle_time_ms", Int32{}},
		Field{"topics", NewCompactArray(NewSchema(
			Field{"name", NewCompactString()},
			Field{"partitions", NewCompactArray(NewSchema(
				Field{"partition", Int32{}},
				Field{"error_code", Int16{}},
				Field{"high_watermark", Int64{}},
				Field{"records", NewCompactBytes()},
			))},
		))},
		Field{"tagged_fields", TaggedFields{}},
	)
}

func TestMessageRoundTrip(t *testing.T) {
	s := fetchResponseSchema()
	msg := []any{
		int32(42),
		int32(0),
		[]any{
			[]any{"orders", []any{
				[]any{int32(0), int16(0), int64(1000), []byte{0x01, 0x02}},
				[]any{int32(1), int16(3), int64(0), nil},
			}},
			[]any{"audit", []any{}},
		},
		[]TagValue{{Tag: 0, Value: []byte{0x01}}},
	}

	p, err := s.Encode(msg)
	require.NoError(t, err)

	c := NewCursor(p)
	got, err := s.Decode(c)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(msg, got))
	assert.Equal(t, 0, c.Remaining(), "decode must consume the whole message")
}

func TestMessageDescribe(t *testing.T) {
	s := NewSchema(
		Field{"id", Int32{}},
		Field{"payload", NewBytes()},
	)
	desc := s.Describe([]any{int32(1), nil})
	assert.Equal(t, "(id=1, payload=NULL)", desc)
}

func TestDecodeFailureLeavesCursorAdvanced(t *testing.T) {
	s := NewSchema(
		Field{"a", Int32{}},
		Field{"b", Int32{}},
	)
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x01, 0x00})
	_, err := s.Decode(c)
	require.ErrorIs(t, err, ErrBufferUnderrun)
	// No rollback: the first field stays consumed.
	assert.Equal(t, 4, c.Pos())
}

func TestCodecReuseAcrossDecodes(t *testing.T) {
	// One immutable codec instance serves many independent cursors.
	a := NewArray(NewString())
	items := []any{"x", "y"}
	p, err := a.Encode(items)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := a.Decode(NewCursor(p))
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(items, got))
	}
}
