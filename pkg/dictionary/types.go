package dictionary

// DataType represents the decoded form of an attribute value per RFC 2865 Section 5
type DataType string

const (
	DataTypeString     DataType = "string"     // Text (RFC 2865 Section 5)
	DataTypeInteger    DataType = "integer"    // 32-bit unsigned integer (RFC 2865 Section 5)
	DataTypeInteger64  DataType = "integer64"  // 64-bit unsigned integer (RFC 6929)
	DataTypeDate       DataType = "date"       // Unix timestamp (RFC 2865 Section 5)
	DataTypeIPAddr     DataType = "ipaddr"     // IPv4 address (RFC 2865 Section 5)
	DataTypeIPv6Addr   DataType = "ipv6addr"   // IPv6 address (RFC 3162)
	DataTypeIPv6Prefix DataType = "ipv6prefix" // IPv6 prefix (RFC 3162)
	DataTypeIfID       DataType = "ifid"       // 64-bit interface identifier (RFC 3162)
)

// AttributeDefinition defines a RADIUS attribute per RFC 2865 Section 5
type AttributeDefinition struct {
	ID          uint8    `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	DataType    DataType `yaml:"data_type" json:"data_type"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}
