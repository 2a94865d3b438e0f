package mqtt

import (
	"bytes"
	"math"
)

// Writer collects MQTT data representations in memory
type Writer struct {
	bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteU8(i uint8) {
	_ = w.WriteByte(i)
}

func (w *Writer) WriteU16(i uint16) {
	w.WriteU8(byte(i >> 8))
	w.WriteU8(byte(i))
}

func (w *Writer) WriteU32(i uint32) {
	w.WriteU16(uint16(i >> 16))
	w.WriteU16(uint16(i))
}

// WriteString writes a uint16 length prefixed string. MalformedPacket is returned if
// the string is longer than 65535 bytes.
func (w *Writer) WriteString(s string) error {
	t := len(s)
	if t > math.MaxUint16 {
		return MalformedPacket
	}
	w.WriteU16(uint16(t))
	_, _ = w.Buffer.WriteString(s)
	return nil
}

// WriteBytes writes uint16 length prefixed binary data. MalformedPacket is returned if
// the data is longer than 65535 bytes.
func (w *Writer) WriteBytes(bs []byte) error {
	t := len(bs)
	if t > math.MaxUint16 {
		return MalformedPacket
	}
	w.WriteU16(uint16(t))
	_, _ = w.Write(bs)
	return nil
}

// WriteVarInt writes the Variable Byte Integer encoding of value. Nothing is written and
// MalformedPacket is returned if the value is larger than MaxVarIntValue.
func (w *Writer) WriteVarInt(value uint32) error {
	bs, err := EncodeVarInt(value)
	if err == nil {
		_, _ = w.Write(bs)
	}
	return err
}
