// Package pkg contains the MQTT packet types and the fixed header that precedes every packet
package pkg

import (
	"strings"

	"github.com/jkiot/orus-mqtt/mqtt"
)

// PacketType is the MQTT control packet type found in the high nibble of the first packet byte
type PacketType byte

const (
	// Connect is the MQTT CONNECT type
	Connect = PacketType(iota + 1)

	// ConnAck is the MQTT CONNACK type
	ConnAck

	// Publish is the MQTT PUBLISH type
	Publish

	// PubAck is the MQTT PUBACK type
	PubAck

	// PubRec is the MQTT PUBREC type
	PubRec

	// PubRel is the MQTT PUBREL type
	PubRel

	// PubComp is the MQTT PUBCOMP type
	PubComp

	// Subscribe is the MQTT SUBSCRIBE type
	Subscribe

	// SubAck is the MQTT SUBACK type
	SubAck

	// Unsubscribe is the MQTT UNSUBSCRIBE type
	Unsubscribe

	// UnsubAck is the MQTT UNSUBACK type
	UnsubAck

	// PingReq is the MQTT PINGREQ type
	PingReq

	// PingResp is the MQTT PINGRESP type
	PingResp

	// Disconnect is the MQTT DISCONNECT type
	Disconnect

	// Auth is the MQTT AUTH type
	Auth
)

var packetTypeNames = [...]string{
	"", "CONNECT", "CONNACK", "PUBLISH", "PUBACK", "PUBREC", "PUBREL", "PUBCOMP", "SUBSCRIBE",
	"SUBACK", "UNSUBSCRIBE", "UNSUBACK", "PINGREQ", "PINGRESP", "DISCONNECT", "AUTH"}

// ParsePacketType returns the PacketType for the given value. The value must be in the
// range 1 - 15. mqtt.MalformedPacket is returned for all other values.
func ParsePacketType(b byte) (PacketType, error) {
	if b < byte(Connect) || b > byte(Auth) {
		return 0, mqtt.MalformedPacket
	}
	return PacketType(b), nil
}

// ParsePacketTypeName returns the PacketType with the given name. The comparison is
// case insensitive.
func ParsePacketTypeName(s string) (PacketType, bool) {
	s = strings.ToUpper(s)
	for i := Connect; i <= Auth; i++ {
		if packetTypeNames[i] == s {
			return i, true
		}
	}
	return 0, false
}

func (p PacketType) String() string {
	if p >= Connect && p <= Auth {
		return packetTypeNames[p]
	}
	return "UNKNOWN"
}
