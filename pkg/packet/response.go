package packet

import (
	"fmt"

	"github.com/essinghigh-org/ts-radius/pkg/crypto"
)

// Response represents a parsed RADIUS response datagram.
// All bounds come from the received datagram size; the length field in the
// header is recorded but never trusted for slicing.
type Response struct {
	Code          Code
	Identifier    uint8
	HeaderLength  uint16
	Authenticator crypto.Authenticator
	Attributes    []*Attribute
	Raw           []byte
}

// ParseResponse splits a response datagram into header and attributes per
// RFC 2865 Section 3. Datagrams shorter than the fixed header are rejected.
// The attribute walk is lenient: it stops at the first attribute whose length
// is below 2 or runs past the end of the datagram, keeping everything parsed
// up to that point.
func ParseResponse(data []byte) (*Response, error) {
	if len(data) < MinPacketLength {
		return nil, fmt.Errorf("packet too short: %d bytes", len(data))
	}

	resp := &Response{
		Code:         Code(data[0]),
		Identifier:   data[1],
		HeaderLength: uint16(data[2])<<8 | uint16(data[3]),
		Attributes:   make([]*Attribute, 0),
		Raw:          data,
	}
	copy(resp.Authenticator[:], data[4:PacketHeaderLength])

	offset := PacketHeaderLength
	for offset+AttributeHeaderLength <= len(data) {
		attrType := data[offset]
		attrLength := int(data[offset+1])

		if attrLength < AttributeHeaderLength || offset+attrLength > len(data) {
			break
		}

		value := make([]byte, attrLength-AttributeHeaderLength)
		copy(value, data[offset+AttributeHeaderLength:offset+attrLength])

		resp.Attributes = append(resp.Attributes, &Attribute{
			Type:   attrType,
			Length: uint8(attrLength),
			Value:  value,
		})

		offset += attrLength
	}

	return resp, nil
}

// VerifyResponseAuthenticator checks the Response Authenticator of the
// datagram against the Request Authenticator of the originating request per
// RFC 2865 Section 3. The length input to the hash is the datagram length,
// re-encoded big-endian, not the value claimed by the header.
func (r *Response) VerifyResponseAuthenticator(sharedSecret []byte, requestAuth crypto.Authenticator) bool {
	return crypto.ValidateResponseAuthenticator(
		uint8(r.Code),
		r.Identifier,
		uint16(len(r.Raw)),
		requestAuth,
		r.Raw[PacketHeaderLength:],
		r.Authenticator,
		sharedSecret,
	)
}
