package pkg

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jkiot/orus-mqtt/mqtt"
	"github.com/tada/catch"
	"github.com/tada/catch/pio"
	"github.com/tada/jsonstream"
)

const flagsMask = byte(0x0f)

// FixedHeader is the part that is present in all MQTT packets; the packet type, four bits of
// flags, and the Remaining Length, i.e. the number of bytes that follows the header.
type FixedHeader struct {
	Type            PacketType
	Flags           byte
	RemainingLength uint32
}

// ReadFixedHeader reads the packet type and flags byte followed by the Remaining Length.
func ReadFixedHeader(r *mqtt.Reader) (*FixedHeader, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	tp, err := ParsePacketType(b >> 4)
	if err != nil {
		return nil, err
	}
	rl, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return &FixedHeader{Type: tp, Flags: b & flagsMask, RemainingLength: rl}, nil
}

// Write writes the header on the given Writer. mqtt.MalformedPacket is returned if the type is
// invalid or if the Remaining Length cannot be represented. Nothing is written in that case.
func (h *FixedHeader) Write(w *mqtt.Writer) error {
	if _, err := ParsePacketType(byte(h.Type)); err != nil {
		return err
	}
	bs, err := mqtt.AppendVarInt([]byte{byte(h.Type)<<4 | h.Flags&flagsMask}, h.RemainingLength)
	if err == nil {
		_, _ = w.Write(bs)
	}
	return err
}

// Size returns the number of bytes that the header occupies on the wire or 0 if
// the Remaining Length is out of range.
func (h *FixedHeader) Size() int {
	n := mqtt.VarIntSize(h.RemainingLength)
	if n == 0 {
		return 0
	}
	return 1 + n
}

// Equals returns true if this instance is equal to the given instance, false if not
func (h *FixedHeader) Equals(oh *FixedHeader) bool {
	return *h == *oh
}

func (h *FixedHeader) String() string {
	return fmt.Sprintf("%s (flags 0x%x, remaining length %d)", h.Type, h.Flags, h.RemainingLength)
}

// MarshalToJSON streams the JSON encoded form of this instance onto the given io.Writer
func (h *FixedHeader) MarshalToJSON(w io.Writer) {
	pio.WriteString(`{"type":`, w)
	jsonstream.WriteString(h.Type.String(), w)
	pio.WriteString(`,"flags":`, w)
	pio.WriteString(strconv.Itoa(int(h.Flags)), w)
	pio.WriteString(`,"remainingLength":`, w)
	pio.WriteString(strconv.FormatUint(uint64(h.RemainingLength), 10), w)
	pio.WriteByte('}', w)
}

// UnmarshalFromJSON initializes this instance from the tokens stream provided by the json.Decoder. The
// first token has already been read and is passed as an argument.
func (h *FixedHeader) UnmarshalFromJSON(js jsonstream.Decoder, t json.Token) {
	jsonstream.AssertDelim(t, '{')
	for {
		k, ok := js.ReadStringOrEnd('}')
		if !ok {
			break
		}
		switch k {
		case "type":
			n := js.ReadString()
			tp, ok := ParsePacketTypeName(n)
			if !ok {
				panic(catch.Error(fmt.Errorf("unknown packet type %q", n)))
			}
			h.Type = tp
		case "flags":
			f := int64(js.ReadInt())
			if f < 0 || f > int64(flagsMask) {
				panic(catch.Error(mqtt.MalformedPacket))
			}
			h.Flags = byte(f)
		case "remainingLength":
			rl := int64(js.ReadInt())
			if rl < 0 || rl > int64(mqtt.MaxVarIntValue) {
				panic(catch.Error(mqtt.MalformedPacket))
			}
			h.RemainingLength = uint32(rl)
		}
	}
}
