package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// intValue coerces any signed integer kind into int64 and range-checks
// it against the target width, failing with ErrMalformedValue.
func intValue(val any, min, max int64, typ string) (int64, error) {
	var i int64
	switch n := val.(type) {
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case int:
		i = int64(n)
	default:
		return 0, malformedf(typ, val, fmt.Sprintf("unsupported value type %T", val))
	}
	if i < min || i > max {
		return 0, malformedf(typ, val, fmt.Sprintf("value outside [%d, %d]", min, max))
	}
	return i, nil
}

// uintValue coerces unsigned and non-negative signed integers into
// uint64 with a maximum bound.
func uintValue(val any, max uint64, typ string) (uint64, error) {
	var u uint64
	switch n := val.(type) {
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	case uint:
		u = uint64(n)
	case int:
		if n < 0 {
			return 0, malformedf(typ, val, "negative value")
		}
		u = uint64(n)
	case int32:
		if n < 0 {
			return 0, malformedf(typ, val, "negative value")
		}
		u = uint64(n)
	case int64:
		if n < 0 {
			return 0, malformedf(typ, val, "negative value")
		}
		u = uint64(n)
	default:
		return 0, malformedf(typ, val, fmt.Sprintf("unsupported value type %T", val))
	}
	if u > max {
		return 0, malformedf(typ, val, fmt.Sprintf("value above %d", max))
	}
	return u, nil
}

// Int8 is the 1-byte signed integer codec.
type Int8 struct{}

func (Int8) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt8, math.MaxInt8, "int8")
	if err != nil {
		return nil, err
	}
	return []byte{byte(i)}, nil
}

func (Int8) Decode(c *Cursor) (any, error) {
	p, err := c.Read(1)
	if err != nil {
		return nil, fmt.Errorf("decoding int8: %w", err)
	}
	return int8(p[0]), nil
}

func (Int8) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// Int16 is the 2-byte big-endian signed integer codec.
type Int16 struct{}

func (Int16) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt16, math.MaxInt16, "int16")
	if err != nil {
		return nil, err
	}
	p := make([]byte, 2)
	binary.BigEndian.PutUint16(p, uint16(i))
	return p, nil
}

func (Int16) Decode(c *Cursor) (any, error) {
	p, err := c.Read(2)
	if err != nil {
		return nil, fmt.Errorf("decoding int16: %w", err)
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

func (Int16) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// Int32 is the 4-byte big-endian signed integer codec.
type Int32 struct{}

func (Int32) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt32, math.MaxInt32, "int32")
	if err != nil {
		return nil, err
	}
	p := make([]byte, 4)
	binary.BigEndian.PutUint32(p, uint32(i))
	return p, nil
}

func (Int32) Decode(c *Cursor) (any, error) {
	p, err := c.Read(4)
	if err != nil {
		return nil, fmt.Errorf("decoding int32: %w", err)
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (Int32) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// Int64 is the 8-byte big-endian signed integer codec.
type Int64 struct{}

func (Int64) Encode(val any) ([]byte, error) {
	i, err := intValue(val, math.MinInt64, math.MaxInt64, "int64")
	if err != nil {
		return nil, err
	}
	p := make([]byte, 8)
	binary.BigEndian.PutUint64(p, uint64(i))
	return p, nil
}

func (Int64) Decode(c *Cursor) (any, error) {
	p, err := c.Read(8)
	if err != nil {
		return nil, fmt.Errorf("decoding int64: %w", err)
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (Int64) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// Boolean is the 1-byte boolean codec: 0x00 is false, 0x01 is true.
// Decode accepts any non-zero byte as true.
type Boolean struct{}

func (Boolean) Encode(val any) ([]byte, error) {
	b, ok := val.(bool)
	if !ok {
		return nil, malformedf("boolean", val, fmt.Sprintf("unsupported value type %T", val))
	}
	if b {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

func (Boolean) Decode(c *Cursor) (any, error) {
	p, err := c.Read(1)
	if err != nil {
		return nil, fmt.Errorf("decoding boolean: %w", err)
	}
	return p[0] != 0, nil
}

func (Boolean) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// Float64 is the 8-byte big-endian IEEE 754 codec.
type Float64 struct{}

func (Float64) Encode(val any) ([]byte, error) {
	var f float64
	switch n := val.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		return nil, malformedf("float64", val, fmt.Sprintf("unsupported value type %T", val))
	}
	p := make([]byte, 8)
	binary.BigEndian.PutUint64(p, math.Float64bits(f))
	return p, nil
}

func (Float64) Decode(c *Cursor) (any, error) {
	p, err := c.Read(8)
	if err != nil {
		return nil, fmt.Errorf("decoding float64: %w", err)
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

func (Float64) Describe(val any) string {
	return fmt.Sprintf("%v", val)
}

// int16Lengths is the classic String length-prefix strategy: a 2-byte
// big-endian signed length where -1 denotes null.
type int16Lengths struct{}

func (int16Lengths) encodeLength(n int32) ([]byte, error) {
	if n < -1 || n > math.MaxInt16 {
		return nil, malformedf("int16 length", n, "length outside int16 range")
	}
	p := make([]byte, 2)
	binary.BigEndian.PutUint16(p, uint16(int16(n)))
	return p, nil
}

func (int16Lengths) decodeLength(c *Cursor) (int32, error) {
	p, err := c.Read(2)
	if err != nil {
		return 0, fmt.Errorf("decoding int16 length: %w", err)
	}
	return int32(int16(binary.BigEndian.Uint16(p))), nil
}

// int32Lengths is the classic Bytes/Array length-prefix strategy: a
// 4-byte big-endian signed length where -1 denotes null.
type int32Lengths struct{}

func (int32Lengths) encodeLength(n int32) ([]byte, error) {
	if n < -1 {
		return nil, malformedf("int32 length", n, "length below -1")
	}
	p := make([]byte, 4)
	binary.BigEndian.PutUint32(p, uint32(n))
	return p, nil
}

func (int32Lengths) decodeLength(c *Cursor) (int32, error) {
	p, err := c.Read(4)
	if err != nil {
		return 0, fmt.Errorf("decoding int32 length: %w", err)
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}
