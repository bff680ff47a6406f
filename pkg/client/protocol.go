package client

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"time"

	"github.com/essinghigh-org/ts-radius/pkg/crypto"
	"github.com/essinghigh-org/ts-radius/pkg/dictionary"
	"github.com/essinghigh-org/ts-radius/pkg/log"
	"github.com/essinghigh-org/ts-radius/pkg/packet"
)

// exchangeOptions are immutable per transaction.
type exchangeOptions struct {
	secret       []byte
	port         int
	timeout      time.Duration
	assignmentID uint8
	vendorID     *uint32
	vendorType   *uint8
	valuePattern *regexp.Regexp
	dict         *dictionary.Dictionary
	logger       log.Logger
}

// exchange runs a single Access-Request transaction against host: build the
// packet, send it on a fresh UDP socket, wait for at most one datagram within
// the timeout, verify, decode and classify. Negative protocol outcomes come
// back in the Result; transport failures come back as errors.
func exchange(host, user, password string, opts exchangeOptions) (*Result, error) {
	if len(opts.secret) == 0 {
		return nil, fmt.Errorf("shared secret must not be empty")
	}

	request, requestAuth, err := buildAccessRequest(user, password, opts)
	if err != nil {
		return nil, err
	}

	conn, err := net.Dial("udp4", net.JoinHostPort(host, strconv.Itoa(opts.port)))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", host, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(opts.timeout)); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("failed to write packet: %w", err)
	}

	buffer := make([]byte, packet.MaxPacketLength)
	n, err := conn.Read(buffer)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return &Result{Error: ErrorTimeout}, nil
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return classifyResponse(buffer[:n], requestAuth, opts), nil
}

// buildAccessRequest assembles and serializes the Access-Request per RFC 2865
// Section 4.1 with the RFC 2869 Message-Authenticator. Attribute order is
// fixed: User-Name, User-Password, NAS-IP-Address, NAS-Port,
// Message-Authenticator.
func buildAccessRequest(user, password string, opts exchangeOptions) ([]byte, crypto.Authenticator, error) {
	identifier, err := crypto.GenerateIdentifier()
	if err != nil {
		return nil, crypto.Authenticator{}, err
	}

	requestAuth, err := crypto.GenerateRequestAuthenticator()
	if err != nil {
		return nil, crypto.Authenticator{}, err
	}

	pkt := packet.New(packet.CodeAccessRequest, identifier)
	pkt.Authenticator = requestAuth

	pkt.AddAttribute(packet.AttributeTypeUserName, []byte(user))
	pkt.AddAttribute(packet.AttributeTypeUserPassword, crypto.EncryptUserPassword([]byte(password), opts.secret, requestAuth))
	pkt.AddAttribute(packet.AttributeTypeNASIPAddress, []byte{127, 0, 0, 1})
	pkt.AddAttribute(packet.AttributeTypeNASPort, []byte{0, 0, 0, 0})
	pkt.AddAttribute(packet.AttributeTypeMessageAuthenticator, make([]byte, crypto.MessageAuthenticatorLength))

	data, err := pkt.Encode()
	if err != nil {
		return nil, crypto.Authenticator{}, fmt.Errorf("failed to encode packet: %w", err)
	}

	// Some servers do not require the attribute, so a signing failure
	// downgrades to sending the zero-filled placeholder.
	if err := crypto.SignMessageAuthenticator(data, opts.secret); err != nil {
		opts.logger.Warnf("failed to sign message authenticator: %v", err)
	}

	return data, requestAuth, nil
}

// classifyResponse validates and decodes a received datagram into a Result.
func classifyResponse(data []byte, requestAuth crypto.Authenticator, opts exchangeOptions) *Result {
	result := &Result{Raw: hex.EncodeToString(data)}

	resp, err := packet.ParseResponse(data)
	if err != nil {
		result.Error = ErrorMalformedResponse
		return result
	}

	if !resp.VerifyResponseAuthenticator(opts.secret, requestAuth) {
		result.Error = ErrorAuthenticatorMismatch
		return result
	}

	switch resp.Code {
	case packet.CodeAccessAccept:
		result.Ok = true
	case packet.CodeAccessReject:
		result.Error = ErrorAccessReject
	case packet.CodeAccessChallenge:
		result.Error = ErrorAccessChallenge
	default:
		result.Error = ErrorUnknownCode
		return result
	}

	matches := make([]string, 0)
	for _, attr := range resp.Attributes {
		result.Attributes = append(result.Attributes, packet.Decode(opts.dict, attr))

		if attr.Type == opts.assignmentID {
			if value, ok := extractAssignment(attr, opts); ok {
				matches = append(matches, value)
			}
		}
	}

	// RFC 2865 leaves multiple matching attributes undefined; first wins here.
	if len(matches) > 0 {
		result.Class = matches[0]
	}

	return result
}

// extractAssignment pulls the assignment value out of one matching attribute.
// For a Vendor-Specific target with both vendor ids configured, the value is
// the first nested sub-attribute and must match both; otherwise the whole
// attribute value is taken as UTF-8.
func extractAssignment(attr *packet.Attribute, opts exchangeOptions) (string, bool) {
	var value string

	if opts.assignmentID == packet.AttributeTypeVendorSpecific && opts.vendorID != nil && opts.vendorType != nil {
		payload := attr.Value
		if len(payload) < packet.VendorSpecificHeaderLength {
			return "", false
		}

		vendorID := binary.BigEndian.Uint32(payload[:4])
		vendorType := payload[4]
		vendorLength := int(payload[5])

		if vendorID != *opts.vendorID || vendorType != *opts.vendorType {
			return "", false
		}

		if vendorLength < packet.AttributeHeaderLength || 4+vendorLength > len(payload) {
			return "", false
		}

		value = string(payload[packet.VendorSpecificHeaderLength : 4+vendorLength])
	} else {
		value = string(attr.Value)
	}

	if opts.valuePattern != nil {
		groups := opts.valuePattern.FindStringSubmatch(value)
		if len(groups) < 2 {
			return "", false
		}
		return groups[1], true
	}

	return value, true
}
