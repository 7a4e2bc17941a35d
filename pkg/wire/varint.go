package wire

import (
	"fmt"
	"math"
)

// Unsigned varints store 7 payload bits per byte, least-significant
// group first, with the high bit of each byte signalling continuation.
// The 32-bit form permits at most 5 groups, the 64-bit form at most 10.

// ReadUnsignedVarint decodes a 32-bit unsigned varint from the cursor.
// Truncated input fails with ErrBufferUnderrun; an encoding exceeding
// 32-bit magnitude fails with ErrVarintOverflow.
func ReadUnsignedVarint(c *Cursor) (uint32, error) {
	var value uint32
	var shift uint
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("reading unsigned varint: %w", err)
		}
		if b&0x80 == 0 {
			if shift == 28 && b > 0x0f {
				return 0, fmt.Errorf("%w: value exceeds 32 bits", ErrVarintOverflow)
			}
			return value | uint32(b)<<shift, nil
		}
		value |= uint32(b&0x7f) << shift
		shift += 7
		if shift > 28 {
			return 0, fmt.Errorf("%w: more than 5 continuation groups", ErrVarintOverflow)
		}
	}
}

// WriteUnsignedVarint encodes v as a 32-bit unsigned varint.
func WriteUnsignedVarint(v uint32) []byte {
	buf := make([]byte, 0, 5)
	for v&0xffffff80 != 0 {
		buf = append(buf, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// ReadVarint decodes a zigzag-encoded signed 32-bit varint.
func ReadVarint(c *Cursor) (int32, error) {
	u, err := ReadUnsignedVarint(c)
	if err != nil {
		return 0, err
	}
	return int32(u>>1) ^ -int32(u&1), nil
}

// WriteVarint encodes v as a zigzag signed 32-bit varint.
func WriteVarint(v int32) []byte {
	return WriteUnsignedVarint(uint32((v << 1) ^ (v >> 31)))
}

// ReadUnsignedVarlong decodes a 64-bit unsigned varint.
func ReadUnsignedVarlong(c *Cursor) (uint64, error) {
	var value uint64
	var shift uint
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("reading unsigned varlong: %w", err)
		}
		if b&0x80 == 0 {
			if shift == 63 && b > 0x01 {
				return 0, fmt.Errorf("%w: value exceeds 64 bits", ErrVarintOverflow)
			}
			return value | uint64(b)<<shift, nil
		}
		value |= uint64(b&0x7f) << shift
		shift += 7
		if shift > 63 {
			return 0, fmt.Errorf("%w: more than 10 continuation groups", ErrVarintOverflow)
		}
	}
}

// WriteUnsignedVarlong encodes v as a 64-bit unsigned varint.
func WriteUnsignedVarlong(v uint64) []byte {
	buf := make([]byte, 0, 10)
	for v&0xffffffffffffff80 != 0 {
		buf = append(buf, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// ReadVarlong decodes a zigzag-encoded signed 64-bit varint.
func ReadVarlong(c *Cursor) (int64, error) {
	u, err := ReadUnsignedVarlong(c)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

// WriteVarlong encodes v as a zigzag signed 64-bit varint.
func WriteVarlong(v int64) []byte {
	return WriteUnsignedVarlong(uint64((v << 1) ^ (v >> 63)))
}

// varintLengths is the compact length-prefix strategy: the logical
// length is stored as an unsigned varint biased by one, so stored 0
// denotes null (-1) and stored N denotes logical length N-1.
type varintLengths struct{}

func (varintLengths) encodeLength(n int32) ([]byte, error) {
	if n < -1 {
		return nil, malformedf("compact length", n, "length below -1")
	}
	return WriteUnsignedVarint(uint32(n + 1)), nil
}

func (varintLengths) decodeLength(c *Cursor) (int32, error) {
	u, err := ReadUnsignedVarint(c)
	if err != nil {
		return 0, err
	}
	if u > math.MaxInt32 {
		return 0, malformedf("compact length", u, "stored length exceeds int32")
	}
	return int32(u) - 1, nil
}

// VarInt is the codec Type for zigzag signed 32-bit varints.
type VarInt struct{}

func (VarInt) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt32, math.MaxInt32, "varint")
	if err != nil {
		return nil, err
	}
	return WriteVarint(int32(i)), nil
}

func (VarInt) Decode(c *Cursor) (any, error) {
	return ReadVarint(c)
}

func (VarInt) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// UnsignedVarInt is the codec Type for unsigned 32-bit varints.
type UnsignedVarInt struct{}

func (UnsignedVarInt) Encode(val any) ([]byte, error) {
	u, err := uintValue(val, math.MaxUint32, "unsigned varint")
	if err != nil {
		return nil, err
	}
	return WriteUnsignedVarint(uint32(u)), nil
}

func (UnsignedVarInt) Decode(c *Cursor) (any, error) {
	return ReadUnsignedVarint(c)
}

func (UnsignedVarInt) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// VarLong is the codec Type for zigzag signed 64-bit varints.
type VarLong struct{}

func (VarLong) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt64, math.MaxInt64, "varlong")
	if err != nil {
		return nil, err
	}
	return WriteVarlong(i), nil
}

func (VarLong) Decode(c *Cursor) (any, error) {
	return ReadVarlong(c)
}

func (VarLong) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}
