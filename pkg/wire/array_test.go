package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayRoundTrip(t *testing.T) {
	a := NewArray(Int32{})
	items := []any{int32(1), int32(-2), int32(3)}

	p, err := a.Encode(items)
	require.NoError(t, err)
	// int32 count, then big-endian elements.
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xfe,
		0x00, 0x00, 0x00, 0x03,
	}, p)

	got, err := a.Decode(NewCursor(p))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(items, got))
}

func TestArrayNull(t *testing.T) {
	a := NewArray(Int32{})

	p, err := a.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, p)

	got, err := a.Decode(NewCursor(p))
	require.NoError(t, err)
	assert.Nil(t, got)

	// Compact null array stores the biased 0.
	ca := NewCompactArray(Int32{})
	p, err = ca.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, p)

	got, err = ca.Decode(NewCursor(p))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArrayEmpty(t *testing.T) {
	a := NewArray(Int32{})
	p, err := a.Encode([]any{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, p)

	got, err := a.Decode(NewCursor(p))
	require.NoError(t, err)
	require.NotNil(t, got, "empty is distinct from null")
	assert.Empty(t, got)
}

func TestArrayOfSchemaNesting(t *testing.T) {
	a := NewArrayOf(
		Field{"id", Int32{}},
		Field{"name", NewString()},
	)
	items := []any{
		[]any{int32(1), "a"},
		[]any{int32(2), "bb"},
	}

	p, err := a.Encode(items)
	require.NoError(t, err)
	got, err := a.Decode(NewCursor(p))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(items, got))
}

func TestArrayDeepNesting(t *testing.T) {
	// Array of schemas whose field is itself a compact array.
	inner := NewCompactArray(NewString())
	a := NewArray(NewSchema(
		Field{"topic", NewString()},
		Field{"tags", inner},
	))
	items := []any{
		[]any{"orders", []any{"a", "b"}},
		[]any{"events", nil},
	}

	p, err := a.Encode(items)
	require.NoError(t, err)
	got, err := a.Decode(NewCursor(p))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(items, got))
}

func TestCompactArrayLengthBias(t *testing.T) {
	ca := NewCompactArray(Int8{})
	p, err := ca.Encode([]any{int8(9)})
	require.NoError(t, err)
	// One element stores the biased count 2.
	assert.Equal(t, []byte{0x02, 0x09}, p)
}

func TestArrayElementCountUnderrun(t *testing.T) {
	a := NewArray(Int32{})
	// Declares 3 elements, carries only one.
	_, err := a.Decode(NewCursor([]byte{
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
	}))
	require.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestArrayHostileLength(t *testing.T) {
	a := NewArray(Int8{})
	// A huge declared count must fail by running out of bytes, not by
	// allocating the declared capacity up front.
	_, err := a.Decode(NewCursor([]byte{0x7f, 0xff, 0xff, 0xff, 0x01}))
	require.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestArrayNegativeCount(t *testing.T) {
	a := NewArray(Int8{})
	// -2 is neither a null marker nor a valid count.
	_, err := a.Decode(NewCursor([]byte{0xff, 0xff, 0xff, 0xfe}))
	require.ErrorIs(t, err, ErrMalformedValue)
}

func TestArrayDescribe(t *testing.T) {
	a := NewArray(Int32{})
	assert.Equal(t, "NULL", a.Describe(nil))
	assert.Equal(t, "[1, 2]", a.Describe([]any{int32(1), int32(2)}))
}

func TestArrayWrongValueType(t *testing.T) {
	a := NewArray(Int32{})
	_, err := a.Encode("nope")
	require.ErrorIs(t, err, ErrMalformedValue)
}
