package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AuthenticatorLength is the length of RADIUS authenticators in bytes
const AuthenticatorLength = 16

// Authenticator represents a 16-byte RADIUS authenticator
type Authenticator [AuthenticatorLength]byte

// GenerateRequestAuthenticator generates a random Request Authenticator.
// RFC 2865 Section 3 requires the value to be unpredictable, so the bytes
// come from crypto/rand.
func GenerateRequestAuthenticator() (Authenticator, error) {
	var auth Authenticator
	_, err := rand.Read(auth[:])
	if err != nil {
		return auth, fmt.Errorf("failed to generate random authenticator: %w", err)
	}
	return auth, nil
}

// GenerateIdentifier generates a random packet identifier from crypto/rand.
func GenerateIdentifier() (uint8, error) {
	identifier := make([]byte, 1)
	if _, err := rand.Read(identifier); err != nil {
		return 0, fmt.Errorf("failed to generate identifier: %w", err)
	}
	return identifier[0], nil
}

// CalculateResponseAuthenticator calculates the Response Authenticator as defined in RFC 2865
// Response Authenticator = MD5(Code + ID + Length + Request Authenticator + Response Attributes + Secret)
func CalculateResponseAuthenticator(code uint8, identifier uint8, length uint16, requestAuth Authenticator, responseData []byte, sharedSecret []byte) Authenticator {
	hash := md5.New()

	// Code (1 byte)
	hash.Write([]byte{code})

	// Identifier (1 byte)
	hash.Write([]byte{identifier})

	// Length (2 bytes, big-endian)
	hash.Write([]byte{byte(length >> 8), byte(length)})

	// Request Authenticator (16 bytes)
	hash.Write(requestAuth[:])

	// Response Attributes (variable length)
	hash.Write(responseData)

	// Shared Secret
	hash.Write(sharedSecret)

	var result Authenticator
	copy(result[:], hash.Sum(nil))
	return result
}

// ValidateResponseAuthenticator validates a Response Authenticator
func ValidateResponseAuthenticator(code uint8, identifier uint8, length uint16, requestAuth Authenticator, responseData []byte, receivedAuth Authenticator, sharedSecret []byte) bool {
	expected := CalculateResponseAuthenticator(code, identifier, length, requestAuth, responseData, sharedSecret)
	return hmac.Equal(expected[:], receivedAuth[:])
}

// EncryptUserPassword obfuscates a PAP password per RFC 2865 Section 5.2.
// The password is zero-padded to a multiple of 16 bytes (one full block for
// the empty password) and XORed block-wise against an MD5 keystream chained
// over the shared secret and the Request Authenticator.
func EncryptUserPassword(password, sharedSecret []byte, requestAuth Authenticator) []byte {
	paddedLen := len(password)
	if paddedLen == 0 || paddedLen%AuthenticatorLength != 0 {
		paddedLen = (paddedLen/AuthenticatorLength + 1) * AuthenticatorLength
	}

	plain := make([]byte, paddedLen)
	copy(plain, password)

	cipher := make([]byte, paddedLen)
	prev := requestAuth[:]

	for offset := 0; offset < paddedLen; offset += AuthenticatorLength {
		hash := md5.New()
		hash.Write(sharedSecret)
		hash.Write(prev)
		block := hash.Sum(nil)

		for i := 0; i < AuthenticatorLength; i++ {
			cipher[offset+i] = plain[offset+i] ^ block[i]
		}

		prev = cipher[offset : offset+AuthenticatorLength]
	}

	return cipher
}

// ZeroAuthenticator returns an authenticator filled with zeros
func ZeroAuthenticator() Authenticator {
	return Authenticator{}
}

// String returns a hex representation of the authenticator
func (a Authenticator) String() string {
	return hex.EncodeToString(a[:])
}
