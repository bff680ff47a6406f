package packet

import (
	"fmt"

	"github.com/essinghigh-org/ts-radius/pkg/crypto"
)

// Attribute represents a single RADIUS attribute per RFC 2865 Section 5
type Attribute struct {
	Type   uint8
	Length uint8
	Value  []byte
}

// NewAttribute creates a new attribute with the given type and value
func NewAttribute(attrType uint8, value []byte) *Attribute {
	return &Attribute{
		Type:   attrType,
		Length: uint8(len(value) + AttributeHeaderLength),
		Value:  value,
	}
}

// Packet represents an outgoing RADIUS packet as defined in RFC 2865
type Packet struct {
	Code          Code
	Identifier    uint8
	Authenticator crypto.Authenticator
	Attributes    []*Attribute
}

// New creates a new RADIUS packet with the specified code and identifier
func New(code Code, identifier uint8) *Packet {
	return &Packet{
		Code:       code,
		Identifier: identifier,
		Attributes: make([]*Attribute, 0),
	}
}

// AddAttribute appends an attribute to the packet
func (p *Packet) AddAttribute(attrType uint8, value []byte) {
	p.Attributes = append(p.Attributes, NewAttribute(attrType, value))
}

// Length returns the encoded length of the packet in bytes
func (p *Packet) Length() uint16 {
	length := PacketHeaderLength
	for _, attr := range p.Attributes {
		length += int(attr.Length)
	}
	return uint16(length)
}

// Encode converts the packet into its binary representation per RFC 2865 Section 3.
// The length field always equals the byte length of the serialized packet.
func (p *Packet) Encode() ([]byte, error) {
	length := p.Length()

	if length > MaxPacketLength {
		return nil, fmt.Errorf("packet too long: %d bytes", length)
	}

	data := make([]byte, length)

	// Header
	data[0] = byte(p.Code)
	data[1] = p.Identifier
	data[2] = byte(length >> 8)
	data[3] = byte(length)
	copy(data[4:PacketHeaderLength], p.Authenticator[:])

	// Attributes
	offset := PacketHeaderLength
	for _, attr := range p.Attributes {
		if attr.Length < AttributeHeaderLength || int(attr.Length) != len(attr.Value)+AttributeHeaderLength {
			return nil, fmt.Errorf("invalid length %d for attribute %d", attr.Length, attr.Type)
		}

		data[offset] = attr.Type
		data[offset+1] = attr.Length
		copy(data[offset+AttributeHeaderLength:offset+int(attr.Length)], attr.Value)
		offset += int(attr.Length)
	}

	return data, nil
}
