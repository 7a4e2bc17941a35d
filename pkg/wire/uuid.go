package wire

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is the 16-byte protocol UUID codec. Values are uuid.UUID; the
// wire form is the raw big-endian byte layout with no length prefix.
type UUID struct{}

func (UUID) Encode(val any) ([]byte, error) {
	var id uuid.UUID
	switch v := val.(type) {
	case uuid.UUID:
		id = v
	case [16]byte:
		id = uuid.UUID(v)
	default:
		return nil, malformedf("uuid", val, fmt.Sprintf("unsupported value type %T", val))
	}
	out := make([]byte, 16)
	copy(out, id[:])
	return out, nil
}

func (UUID) Decode(c *Cursor) (any, error) {
	p, err := c.Read(16)
	if err != nil {
		return nil, fmt.Errorf("decoding uuid: %w", err)
	}
	id, err := uuid.FromBytes(p)
	if err != nil {
		return nil, malformedf("uuid", p, err.Error())
	}
	return id, nil
}

func (UUID) Describe(val any) string {
	if id, ok := val.(uuid.UUID); ok {
		return id.String()
	}
	return fmt.Sprintf("%v", val)
}
