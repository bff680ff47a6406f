package packet

// RADIUS packet structure constants per RFC 2865 Section 3
const (
	// PacketHeaderLength is the length of the RADIUS packet header (Code + ID + Length + Authenticator)
	PacketHeaderLength = 20
	// MaxPacketLength is the maximum allowed RADIUS packet length per RFC 2865 Section 3
	MaxPacketLength = 4096
	// MinPacketLength is the minimum allowed RADIUS packet length (header only)
	MinPacketLength = PacketHeaderLength
	// AuthenticatorLength is the length of the authenticator field per RFC 2865 Section 3
	AuthenticatorLength = 16
	// AttributeHeaderLength is the length of attribute header (Type + Length) per RFC 2865 Section 5
	AttributeHeaderLength = 2
	// VendorSpecificHeaderLength is the length of the VSA payload header (Vendor-Id + Type + Length) per RFC 2865 Section 5.26
	VendorSpecificHeaderLength = 6
)

// Standard attribute types used by the request builder and the decoder
const (
	// AttributeTypeUserName is the type for User-Name (RFC 2865)
	AttributeTypeUserName = 1
	// AttributeTypeUserPassword is the type for User-Password (RFC 2865)
	AttributeTypeUserPassword = 2
	// AttributeTypeNASIPAddress is the type for NAS-IP-Address (RFC 2865)
	AttributeTypeNASIPAddress = 4
	// AttributeTypeNASPort is the type for NAS-Port (RFC 2865)
	AttributeTypeNASPort = 5
	// AttributeTypeClass is the type for Class (RFC 2865)
	AttributeTypeClass = 25
	// AttributeTypeVendorSpecific is the type for Vendor-Specific Attributes (RFC 2865)
	AttributeTypeVendorSpecific = 26
	// AttributeTypeMessageAuthenticator is the type for Message-Authenticator (RFC 2869)
	AttributeTypeMessageAuthenticator = 80
)
