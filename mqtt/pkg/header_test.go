package pkg

import (
	"bytes"
	"io"
	"testing"

	"github.com/jkiot/orus-mqtt/mqtt"
	"github.com/jkiot/orus-mqtt/testutils"
	"github.com/tada/catch"
	"github.com/tada/jsonstream"
)

func readHeader(bs ...byte) (*FixedHeader, error) {
	return ReadFixedHeader(mqtt.NewReader(bytes.NewReader(bs)))
}

func TestReadFixedHeader(t *testing.T) {
	h, err := readHeader(0x32, 0x80, 0x01)
	testutils.CheckNotError(err, t)
	testutils.CheckEqual(&FixedHeader{Type: Publish, Flags: 2, RemainingLength: 128}, h, t)

	h, err = readHeader(0xc0, 0x00)
	testutils.CheckNotError(err, t)
	testutils.CheckEqual(PingReq, h.Type, t)
	testutils.CheckEqual(uint32(0), h.RemainingLength, t)
}

func TestReadFixedHeader_errors(t *testing.T) {
	_, err := readHeader()
	testutils.CheckErrorIs(io.EOF, err, t)

	_, err = readHeader(0x00, 0x00)
	testutils.CheckErrorIs(mqtt.MalformedPacket, err, t)

	_, err = readHeader(0x30)
	testutils.CheckErrorIs(io.ErrUnexpectedEOF, err, t)

	_, err = readHeader(0x30, 0xff, 0xff)
	testutils.CheckErrorIs(io.ErrUnexpectedEOF, err, t)

	_, err = readHeader(0x30, 0xff, 0xff, 0xff, 0xff, 0x01)
	testutils.CheckErrorIs(mqtt.MalformedPacket, err, t)
}

func TestFixedHeader_Write(t *testing.T) {
	h := &FixedHeader{Type: Subscribe, Flags: 2, RemainingLength: 16384}
	w := mqtt.NewWriter()
	testutils.CheckNotError(h.Write(w), t)
	testutils.CheckBytes([]byte{0x82, 0x80, 0x80, 0x01}, w.Bytes(), t)
	testutils.CheckEqual(w.Len(), h.Size(), t)

	h2, err := ReadFixedHeader(mqtt.NewReader(bytes.NewReader(w.Bytes())))
	testutils.CheckNotError(err, t)
	testutils.CheckTrue(h.Equals(h2), t)
}

func TestFixedHeader_Write_invalid(t *testing.T) {
	w := mqtt.NewWriter()
	h := &FixedHeader{Type: Publish, RemainingLength: mqtt.MaxVarIntValue + 1}
	testutils.CheckErrorIs(mqtt.MalformedPacket, h.Write(w), t)
	testutils.CheckEqual(0, h.Size(), t)

	h = &FixedHeader{Type: PacketType(0)}
	testutils.CheckErrorIs(mqtt.MalformedPacket, h.Write(w), t)
	testutils.CheckEqual(0, w.Len(), t)
}

func TestFixedHeader_String(t *testing.T) {
	h := &FixedHeader{Type: Publish, Flags: 0xb, RemainingLength: 12}
	testutils.CheckEqual("PUBLISH (flags 0xb, remaining length 12)", h.String(), t)
}

func TestFixedHeader_JSON(t *testing.T) {
	h := &FixedHeader{Type: Disconnect, RemainingLength: 2097152}
	buf := &bytes.Buffer{}
	testutils.CheckNotError(catch.Do(func() { h.MarshalToJSON(buf) }), t)
	testutils.CheckEqual(`{"type":"DISCONNECT","flags":0,"remainingLength":2097152}`, buf.String(), t)

	h2 := &FixedHeader{}
	err := catch.Do(func() {
		jsonstream.NewDecoder(bytes.NewReader(buf.Bytes())).ReadConsumer(h2)
	})
	testutils.CheckNotError(err, t)
	testutils.CheckTrue(h.Equals(h2), t)
}

func TestFixedHeader_JSON_flags(t *testing.T) {
	h := &FixedHeader{}
	err := catch.Do(func() {
		jsonstream.NewDecoder(bytes.NewReader([]byte(`{"type":"PUBLISH","flags":15}`))).ReadConsumer(h)
	})
	testutils.CheckNotError(err, t)
	testutils.CheckEqual(&FixedHeader{Type: Publish, Flags: 15}, h, t)
}

type failingWriter int

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestFixedHeader_MarshalToJSON_writeError(t *testing.T) {
	err := catch.Do(func() {
		(&FixedHeader{Type: Connect}).MarshalToJSON(failingWriter(0))
	})
	testutils.CheckError(err, t)
}

func TestFixedHeader_JSON_invalid(t *testing.T) {
	for _, js := range []string{
		`{"type":"NOPE"}`,
		`{"type":"PUBLISH","remainingLength":268435456}`,
		`{"type":"PUBLISH","remainingLength":-1}`,
		`{"type":"PUBLISH","flags":31}`,
		`{"type":"PUBLISH","flags":-1}`,
	} {
		err := catch.Do(func() {
			jsonstream.NewDecoder(bytes.NewReader([]byte(js))).ReadConsumer(&FixedHeader{})
		})
		testutils.CheckError(err, t)
	}
}
