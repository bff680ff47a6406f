package packet

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/essinghigh-org/ts-radius/pkg/dictionary"
)

// DecodedAttribute is a response attribute resolved against the dictionary.
// Value holds the dictionary-typed form. Unknown attributes, invalid UTF-8
// strings and ill-sized ipv6prefix/ifid values hold the hex string of the raw
// bytes; ill-sized integer, integer64, date, ipaddr and ipv6addr values hold
// the zero value of their type (0, the epoch, "0.0.0.0", "::").
type DecodedAttribute struct {
	ID    uint8
	Name  string
	Value interface{}
	Raw   string

	// VendorID is populated for Vendor-Specific attributes only
	VendorID uint32
}

// VendorSubAttribute is one nested {type, length, value} tuple inside a
// Vendor-Specific attribute payload. The value is kept as hex.
type VendorSubAttribute struct {
	VendorType uint8
	Value      string
}

// Decode resolves a raw attribute into its typed form using the dictionary.
// Decoding never fails: values that cannot be interpreted fall back to the
// hex representation of the raw bytes or to the zero value of the declared
// type, as described on DecodedAttribute.
func Decode(dict *dictionary.Dictionary, attr *Attribute) DecodedAttribute {
	decoded := DecodedAttribute{
		ID:  attr.Type,
		Raw: hex.EncodeToString(attr.Value),
	}

	if attr.Type == AttributeTypeVendorSpecific {
		decoded.Name = "Vendor-Specific"
		decoded.VendorID, decoded.Value = decodeVendorSpecific(attr.Value)
		return decoded
	}

	def, ok := dict.LookupByID(attr.Type)
	if !ok {
		decoded.Name = fmt.Sprintf("Unknown-Attribute-%d", attr.Type)
		decoded.Value = decoded.Raw
		return decoded
	}

	decoded.Name = def.Name
	decoded.Value = decodeValue(attr.Value, def.DataType)
	return decoded
}

// decodeVendorSpecific parses a VSA payload per RFC 2865 Section 5.26.
// The payload begins with a 4-byte vendor id; the remainder is walked as
// nested {type, length, value} tuples. When the walk does not consume the
// payload cleanly, the value falls back to the raw payload hex.
func decodeVendorSpecific(payload []byte) (uint32, interface{}) {
	if len(payload) < 4 {
		return 0, hex.EncodeToString(payload)
	}

	vendorID := binary.BigEndian.Uint32(payload[:4])

	subs := make([]VendorSubAttribute, 0)
	offset := 4
	for offset+AttributeHeaderLength <= len(payload) {
		subLength := int(payload[offset+1])
		if subLength < AttributeHeaderLength || offset+subLength > len(payload) {
			return vendorID, hex.EncodeToString(payload)
		}

		subs = append(subs, VendorSubAttribute{
			VendorType: payload[offset],
			Value:      hex.EncodeToString(payload[offset+AttributeHeaderLength : offset+subLength]),
		})
		offset += subLength
	}

	if len(subs) == 0 || offset != len(payload) {
		return vendorID, hex.EncodeToString(payload)
	}

	return vendorID, subs
}

func decodeValue(data []byte, dataType dictionary.DataType) interface{} {
	switch dataType {
	case dictionary.DataTypeString:
		if utf8.Valid(data) {
			return string(data)
		}
		return hex.EncodeToString(data)

	case dictionary.DataTypeInteger:
		if len(data) != 4 {
			return uint32(0)
		}
		return binary.BigEndian.Uint32(data)

	case dictionary.DataTypeInteger64:
		if len(data) != 8 {
			return uint64(0)
		}
		return binary.BigEndian.Uint64(data)

	case dictionary.DataTypeDate:
		if len(data) != 4 {
			return time.Unix(0, 0).UTC()
		}
		return time.Unix(int64(binary.BigEndian.Uint32(data)), 0).UTC()

	case dictionary.DataTypeIPAddr:
		if len(data) != 4 {
			return "0.0.0.0"
		}
		return fmt.Sprintf("%d.%d.%d.%d", data[0], data[1], data[2], data[3])

	case dictionary.DataTypeIPv6Addr:
		if len(data) != 16 {
			return "::"
		}
		return formatIPv6Groups(data)

	case dictionary.DataTypeIPv6Prefix:
		if len(data) < 2 {
			return hex.EncodeToString(data)
		}
		prefixLength := data[1]
		prefix := make([]byte, 16)
		copy(prefix, data[2:])
		return fmt.Sprintf("%s/%d", formatIPv6Groups(prefix), prefixLength)

	case dictionary.DataTypeIfID:
		if len(data) != 8 {
			return hex.EncodeToString(data)
		}
		groups := make([]string, len(data))
		for i, b := range data {
			groups[i] = fmt.Sprintf("%02x", b)
		}
		return strings.Join(groups, ":")

	default:
		return hex.EncodeToString(data)
	}
}

// formatIPv6Groups renders 16 bytes as eight colon-separated lowercase hex
// groups without RFC 5952 zero compression.
func formatIPv6Groups(data []byte) string {
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		groups[i] = fmt.Sprintf("%x", binary.BigEndian.Uint16(data[i*2:i*2+2]))
	}
	return strings.Join(groups, ":")
}
