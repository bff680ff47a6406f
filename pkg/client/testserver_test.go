package client

import (
	"bytes"
	"crypto/md5"
	"net"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/essinghigh-org/ts-radius/pkg/crypto"
	"github.com/essinghigh-org/ts-radius/pkg/packet"
)

// testServer is a minimal in-process RADIUS responder bound to one loopback
// address. The handler receives the raw request datagram and returns the full
// response datagram, or nil to stay silent. Responding can be toggled to
// simulate a host going away.
type testServer struct {
	t          *testing.T
	conn       net.PacketConn
	responding atomic.Bool
	handler    atomic.Value // func(req []byte) []byte
}

// startTestServer binds host:port (port 0 picks a free one) and serves until
// the test ends.
func startTestServer(t *testing.T, host string, port int, handler func(req []byte) []byte) *testServer {
	t.Helper()

	conn, err := net.ListenPacket("udp4", net.JoinHostPort(host, strconv.Itoa(port)))
	require.NoError(t, err)

	srv := &testServer{t: t, conn: conn}
	srv.responding.Store(true)
	srv.handler.Store(handler)

	t.Cleanup(func() { conn.Close() })

	go srv.serve()
	return srv
}

func (s *testServer) serve() {
	buffer := make([]byte, packet.MaxPacketLength)

	for {
		n, addr, err := s.conn.ReadFrom(buffer)
		if err != nil {
			return
		}

		if !s.responding.Load() {
			continue
		}

		req := make([]byte, n)
		copy(req, buffer[:n])

		handler := s.handler.Load().(func(req []byte) []byte)
		if resp := handler(req); resp != nil {
			s.conn.WriteTo(resp, addr)
		}
	}
}

func (s *testServer) port() int {
	return s.conn.LocalAddr().(*net.UDPAddr).Port
}

func (s *testServer) setResponding(responding bool) {
	s.responding.Store(responding)
}

func (s *testServer) setHandler(handler func(req []byte) []byte) {
	s.handler.Store(handler)
}

// requestAuthOf extracts the Request Authenticator from a request datagram.
func requestAuthOf(req []byte) crypto.Authenticator {
	var auth crypto.Authenticator
	copy(auth[:], req[4:20])
	return auth
}

// buildServerResponse assembles a well-formed response to req with the given
// code and attribute bytes, including a correct Response Authenticator.
func buildServerResponse(secret []byte, req []byte, code packet.Code, attrs []byte) []byte {
	length := uint16(packet.PacketHeaderLength + len(attrs))

	resp := make([]byte, length)
	resp[0] = byte(code)
	resp[1] = req[1]
	resp[2] = byte(length >> 8)
	resp[3] = byte(length)

	auth := crypto.CalculateResponseAuthenticator(byte(code), req[1], length, requestAuthOf(req), attrs, secret)
	copy(resp[4:packet.PacketHeaderLength], auth[:])
	copy(resp[packet.PacketHeaderLength:], attrs)

	return resp
}

// attrBytes encodes one attribute as {type, length, value}.
func attrBytes(attrType uint8, value []byte) []byte {
	out := make([]byte, 0, len(value)+2)
	out = append(out, attrType, uint8(len(value)+2))
	return append(out, value...)
}

// requestAttribute finds the first attribute of the given type in a request
// datagram.
func requestAttribute(req []byte, attrType uint8) ([]byte, bool) {
	offset := packet.PacketHeaderLength

	for offset+2 <= len(req) {
		length := int(req[offset+1])
		if length < 2 || offset+length > len(req) {
			break
		}

		if req[offset] == attrType {
			return req[offset+2 : offset+length], true
		}

		offset += length
	}

	return nil, false
}

// decryptUserPassword inverts the RFC 2865 Section 5.2 obfuscation so the
// test server can check submitted credentials.
func decryptUserPassword(cipher, secret []byte, requestAuth crypto.Authenticator) []byte {
	plain := make([]byte, len(cipher))
	prev := requestAuth[:]

	for offset := 0; offset < len(cipher); offset += 16 {
		hash := md5.New()
		hash.Write(secret)
		hash.Write(prev)
		block := hash.Sum(nil)

		for i := 0; i < 16 && offset+i < len(cipher); i++ {
			plain[offset+i] = cipher[offset+i] ^ block[i]
		}

		prev = cipher[offset : offset+16]
	}

	return bytes.TrimRight(plain, "\x00")
}

// acceptHandler returns Access-Accept when the submitted credentials match,
// Access-Reject otherwise, with the given response attributes on accept.
func acceptHandler(secret []byte, user, password string, acceptAttrs []byte) func(req []byte) []byte {
	return func(req []byte) []byte {
		name, _ := requestAttribute(req, packet.AttributeTypeUserName)
		cipher, _ := requestAttribute(req, packet.AttributeTypeUserPassword)

		if string(name) == user && string(decryptUserPassword(cipher, secret, requestAuthOf(req))) == password {
			return buildServerResponse(secret, req, packet.CodeAccessAccept, acceptAttrs)
		}

		return buildServerResponse(secret, req, packet.CodeAccessReject, nil)
	}
}

// rejectHandler always returns Access-Reject.
func rejectHandler(secret []byte) func(req []byte) []byte {
	return func(req []byte) []byte {
		return buildServerResponse(secret, req, packet.CodeAccessReject, nil)
	}
}
