package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"fmt"
)

// Message-Authenticator implementation as defined in RFC 2869

const (
	// MessageAuthenticatorLength is the length of the Message-Authenticator attribute value
	MessageAuthenticatorLength = 16

	// messageAuthenticatorType is the RADIUS attribute type for Message-Authenticator
	messageAuthenticatorType = 80

	packetHeaderLength = 20
)

// CalculateMessageAuthenticator calculates the Message-Authenticator for a RADIUS packet
// Message-Authenticator = HMAC-MD5(shared_secret, packet_with_zeroed_message_authenticator)
func CalculateMessageAuthenticator(packetData []byte, sharedSecret []byte) ([MessageAuthenticatorLength]byte, error) {
	var result [MessageAuthenticatorLength]byte

	if len(packetData) < packetHeaderLength {
		return result, fmt.Errorf("packet too short for Message-Authenticator calculation")
	}

	// Work on a copy so the caller's packet is untouched during hashing
	calcData := make([]byte, len(packetData))
	copy(calcData, packetData)

	if offset := FindMessageAuthenticatorOffset(calcData); offset != -1 {
		for i := 0; i < MessageAuthenticatorLength; i++ {
			calcData[offset+i] = 0
		}
	}

	mac := hmac.New(md5.New, sharedSecret)
	mac.Write(calcData)

	copy(result[:], mac.Sum(nil))
	return result, nil
}

// SignMessageAuthenticator computes the Message-Authenticator over the packet
// with its value field zeroed and writes the result in place. The packet must
// already contain a zero-filled Message-Authenticator attribute.
func SignMessageAuthenticator(packetData []byte, sharedSecret []byte) error {
	offset := FindMessageAuthenticatorOffset(packetData)
	if offset == -1 {
		return fmt.Errorf("packet has no Message-Authenticator attribute")
	}

	auth, err := CalculateMessageAuthenticator(packetData, sharedSecret)
	if err != nil {
		return err
	}

	copy(packetData[offset:offset+MessageAuthenticatorLength], auth[:])
	return nil
}

// FindMessageAuthenticatorOffset returns the offset of the Message-Authenticator
// value field within packetData, or -1 if the packet has no such attribute.
func FindMessageAuthenticatorOffset(packetData []byte) int {
	offset := packetHeaderLength

	for offset+2 <= len(packetData) {
		attrType := packetData[offset]
		attrLength := int(packetData[offset+1])

		if attrLength < 2 || offset+attrLength > len(packetData) {
			return -1
		}

		if attrType == messageAuthenticatorType && attrLength == MessageAuthenticatorLength+2 {
			return offset + 2
		}

		offset += attrLength
	}

	return -1
}
