package client

import (
	"github.com/essinghigh-org/ts-radius/pkg/packet"
)

// ErrorKind classifies a non-accept authentication outcome.
// Transport faults are Go errors, not ErrorKind values.
type ErrorKind string

// The fixed outcome taxonomy. No other values exist.
const (
	// ErrorTimeout means no datagram arrived before the per-call timer fired
	ErrorTimeout ErrorKind = "timeout"
	// ErrorMalformedResponse means the datagram was shorter than the RADIUS header
	ErrorMalformedResponse ErrorKind = "malformed_response"
	// ErrorAuthenticatorMismatch means the Response Authenticator check failed
	ErrorAuthenticatorMismatch ErrorKind = "authenticator_mismatch"
	// ErrorAccessReject means the server returned Access-Reject
	ErrorAccessReject ErrorKind = "access_reject"
	// ErrorAccessChallenge means the server returned Access-Challenge
	ErrorAccessChallenge ErrorKind = "access_challenge"
	// ErrorUnknownCode means the server returned a code other than 2, 3 or 11
	ErrorUnknownCode ErrorKind = "unknown_code"
)

// Result is the outcome of one authentication transaction.
type Result struct {
	// Ok is true iff the server returned Access-Accept
	Ok bool

	// Class is the extracted assignment value; first match wins when the
	// response carries more than one matching attribute
	Class string

	// Attributes holds the decoded response attributes
	Attributes []packet.DecodedAttribute

	// Raw is the hex representation of the response datagram, set whenever
	// a datagram was received
	Raw string

	// Error is set on any non-accept outcome
	Error ErrorKind
}
