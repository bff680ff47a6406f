package packet

import "fmt"

// Code represents a RADIUS packet code as defined in RFC 2865
type Code uint8

// RADIUS packet codes understood by the client
const (
	// Access-Request packets (RFC 2865)
	CodeAccessRequest Code = 1
	// Access-Accept packets (RFC 2865)
	CodeAccessAccept Code = 2
	// Access-Reject packets (RFC 2865)
	CodeAccessReject Code = 3
	// Access-Challenge packets (RFC 2865)
	CodeAccessChallenge Code = 11
)

// String returns the string representation of the packet code
func (c Code) String() string {
	switch c {
	case CodeAccessRequest:
		return "Access-Request"
	case CodeAccessAccept:
		return "Access-Accept"
	case CodeAccessReject:
		return "Access-Reject"
	case CodeAccessChallenge:
		return "Access-Challenge"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}
