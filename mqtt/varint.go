package mqtt

const (
	// MaxVarIntBytes is the maximum number of bytes in a Variable Byte Integer
	MaxVarIntBytes = 4

	// MaxVarIntValue is the largest value that can be represented by a Variable Byte Integer
	MaxVarIntValue = uint32(268435455)

	continuationBit = byte(0x80)
	digitMask       = byte(0x7f)

	maxMultiplier = uint32(0x80 * 0x80 * 0x80)
)

// EncodeVarInt returns the Variable Byte Integer encoding of the given value, least significant
// digit first. MalformedPacket is returned if the value is larger than MaxVarIntValue.
func EncodeVarInt(value uint32) ([]byte, error) {
	if value > MaxVarIntValue {
		return nil, MalformedPacket
	}
	bs := make([]byte, 0, MaxVarIntBytes)
	for {
		b := byte(value % 0x80)
		value /= 0x80
		if value > 0 {
			b |= continuationBit
		}
		bs = append(bs, b)
		if value == 0 {
			break
		}
	}
	if len(bs) > MaxVarIntBytes {
		return nil, MalformedPacket
	}
	return bs, nil
}

// AppendVarInt appends the Variable Byte Integer encoding of value to dst and returns the
// extended slice. On error, dst is returned unchanged.
func AppendVarInt(dst []byte, value uint32) ([]byte, error) {
	bs, err := EncodeVarInt(value)
	if err != nil {
		return dst, err
	}
	return append(dst, bs...), nil
}

// DecodeVarInt returns the value of the given Variable Byte Integer encoding. MalformedPacket
// is returned if the sequence is empty, longer than MaxVarIntBytes, or if its continuation
// bits are inconsistent.
func DecodeVarInt(bs []byte) (uint32, error) {
	if len(bs) == 0 || len(bs) > MaxVarIntBytes || !IsVarIntValid(bs) {
		return 0, MalformedPacket
	}
	m := uint32(1)
	v := uint32(0)
	for _, b := range bs {
		v += uint32(b&digitMask) * m
		if m > maxMultiplier {
			return 0, MalformedPacket
		}
		m *= 0x80
	}
	return v, nil
}

// IsVarIntValid returns true if every byte but the last has its continuation bit set and
// the last byte has it cleared. No check is made on the length of the sequence, so
// a prefix of a stream can be tested after each received byte.
func IsVarIntValid(bs []byte) bool {
	n := len(bs)
	if n == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if bs[i]&continuationBit == 0 {
			return false
		}
	}
	return bs[n-1]&continuationBit == 0
}

// VarIntSize returns the number of bytes needed to encode the given value, or 0 if the
// value is larger than MaxVarIntValue.
func VarIntSize(value uint32) int {
	switch {
	case value < 0x80:
		return 1
	case value < 0x4000:
		return 2
	case value < 0x200000:
		return 3
	case value <= MaxVarIntValue:
		return 4
	default:
		return 0
	}
}
