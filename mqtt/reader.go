package mqtt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// Reader reads the MQTT data representations from an underlying io.Reader
type Reader struct {
	io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r}
}

// ReadByte reads one byte. Reads that return no data and no error are retried.
func (r *Reader) ReadByte() (byte, error) {
	b := []byte{0}
	if _, err := io.ReadFull(r.Reader, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadVarInt returns the next Variable Byte Integer from the input stream.
// An io.ErrUnexpectedEOF is returned if an io.EOF is encountered before the integer could be fully read.
// MalformedPacket is returned if the integer doesn't end within MaxVarIntBytes.
func (r *Reader) ReadVarInt() (uint32, error) {
	buf := make([]byte, 0, MaxVarIntBytes)
	for len(buf) < MaxVarIntBytes {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		buf = append(buf, b)
		if IsVarIntValid(buf) {
			return DecodeVarInt(buf)
		}
	}
	return 0, MalformedPacket
}

// ReadUint16 reads a big endian Two Byte Integer
func (r *Reader) ReadUint16() (uint16, error) {
	var v uint16
	bs, err := r.ReadExact(2)
	if err == nil {
		v = binary.BigEndian.Uint16(bs)
	}
	return v, err
}

// ReadUint32 reads a big endian Four Byte Integer
func (r *Reader) ReadUint32() (uint32, error) {
	var v uint32
	bs, err := r.ReadExact(4)
	if err == nil {
		v = binary.BigEndian.Uint32(bs)
	}
	return v, err
}

// ReadString reads a big endian uint16 from the stream that denotes the number of bytes
// that will follow. It then reads those bytes and returns them as a UTF8 encoded string.
// MalformedPacket is returned if the bytes are not valid UTF8.
func (r *Reader) ReadString() (string, error) {
	var s string
	bs, err := r.ReadBytes()
	if err == nil {
		if !utf8.Valid(bs) {
			return s, MalformedPacket
		}
		s = string(bs)
	}
	return s, err
}

// ReadBytes reads a big endian uint16 from the stream that denotes the number of bytes
// that will follow. It then reads those bytes and returns them.
func (r *Reader) ReadBytes() ([]byte, error) {
	var bs []byte
	l, err := r.ReadUint16()
	if l > 0 && err == nil {
		bs, err = r.ReadExact(int(l))
	}
	return bs, err
}

func (r *Reader) ReadExact(n int) ([]byte, error) {
	bs := make([]byte, n)
	_, err := io.ReadFull(r, bs)
	if err != nil {
		bs = nil
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}
	return bs, err
}

// Len returns the number of unread bytes. It panics unless the Reader was created by ReadPacket.
func (r *Reader) Len() int {
	if br, ok := r.Reader.(*bytes.Reader); ok {
		return br.Len()
	}

	// Reader was not set up to read remaining length
	panic(fmt.Errorf("unsupported operation on %T: Len", r.Reader))
}

func (r *Reader) ReadRemainingBytes() ([]byte, error) {
	return r.ReadExact(r.Len())
}

// ReadPacket reads pkLen bytes and returns a Reader that is limited to those bytes
func (r *Reader) ReadPacket(pkLen uint32) (*Reader, error) {
	var rdr *Reader
	pk, err := r.ReadExact(int(pkLen))
	if err == nil {
		rdr = &Reader{bytes.NewReader(pk)}
	}
	return rdr, err
}
