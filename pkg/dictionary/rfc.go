package dictionary

// StandardRFCAttributes contains the standard RFC attribute table consumed by
// the response decoder. Attributes carrying opaque octets (State, Class,
// Proxy-State) are declared as strings; the string decoder falls back to hex
// for values that are not valid UTF-8.
var StandardRFCAttributes = []*AttributeDefinition{
	{ID: 1, Name: "User-Name", DataType: DataTypeString},                 // RFC2865
	{ID: 2, Name: "User-Password", DataType: DataTypeString},             // RFC2865
	{ID: 3, Name: "CHAP-Password", DataType: DataTypeString},             // RFC2865
	{ID: 4, Name: "NAS-IP-Address", DataType: DataTypeIPAddr},            // RFC2865
	{ID: 5, Name: "NAS-Port", DataType: DataTypeInteger},                 // RFC2865
	{ID: 6, Name: "Service-Type", DataType: DataTypeInteger},             // RFC2865
	{ID: 7, Name: "Framed-Protocol", DataType: DataTypeInteger},          // RFC2865
	{ID: 8, Name: "Framed-IP-Address", DataType: DataTypeIPAddr},         // RFC2865
	{ID: 9, Name: "Framed-IP-Netmask", DataType: DataTypeIPAddr},         // RFC2865
	{ID: 10, Name: "Framed-Routing", DataType: DataTypeInteger},          // RFC2865
	{ID: 11, Name: "Filter-Id", DataType: DataTypeString},                // RFC2865
	{ID: 12, Name: "Framed-MTU", DataType: DataTypeInteger},              // RFC2865
	{ID: 13, Name: "Framed-Compression", DataType: DataTypeInteger},      // RFC2865
	{ID: 14, Name: "Login-IP-Host", DataType: DataTypeIPAddr},            // RFC2865
	{ID: 15, Name: "Login-Service", DataType: DataTypeInteger},           // RFC2865
	{ID: 16, Name: "Login-TCP-Port", DataType: DataTypeInteger},          // RFC2865
	{ID: 18, Name: "Reply-Message", DataType: DataTypeString},            // RFC2865
	{ID: 19, Name: "Callback-Number", DataType: DataTypeString},          // RFC2865
	{ID: 20, Name: "Callback-Id", DataType: DataTypeString},              // RFC2865
	{ID: 22, Name: "Framed-Route", DataType: DataTypeString},             // RFC2865
	{ID: 23, Name: "Framed-IPX-Network", DataType: DataTypeIPAddr},       // RFC2865
	{ID: 24, Name: "State", DataType: DataTypeString},                    // RFC2865
	{ID: 25, Name: "Class", DataType: DataTypeString},                    // RFC2865
	{ID: 26, Name: "Vendor-Specific", DataType: DataTypeString},          // RFC2865
	{ID: 27, Name: "Session-Timeout", DataType: DataTypeInteger},         // RFC2865
	{ID: 28, Name: "Idle-Timeout", DataType: DataTypeInteger},            // RFC2865
	{ID: 29, Name: "Termination-Action", DataType: DataTypeInteger},      // RFC2865
	{ID: 30, Name: "Called-Station-Id", DataType: DataTypeString},        // RFC2865
	{ID: 31, Name: "Calling-Station-Id", DataType: DataTypeString},       // RFC2865
	{ID: 32, Name: "NAS-Identifier", DataType: DataTypeString},           // RFC2865
	{ID: 33, Name: "Proxy-State", DataType: DataTypeString},              // RFC2865
	{ID: 34, Name: "Login-LAT-Service", DataType: DataTypeString},        // RFC2865
	{ID: 35, Name: "Login-LAT-Node", DataType: DataTypeString},           // RFC2865
	{ID: 36, Name: "Login-LAT-Group", DataType: DataTypeString},          // RFC2865
	{ID: 37, Name: "Framed-AppleTalk-Link", DataType: DataTypeInteger},   // RFC2865
	{ID: 38, Name: "Framed-AppleTalk-Network", DataType: DataTypeInteger}, // RFC2865
	{ID: 39, Name: "Framed-AppleTalk-Zone", DataType: DataTypeString},    // RFC2865
	{ID: 40, Name: "Acct-Status-Type", DataType: DataTypeInteger},        // RFC2866
	{ID: 41, Name: "Acct-Delay-Time", DataType: DataTypeInteger},         // RFC2866
	{ID: 42, Name: "Acct-Input-Octets", DataType: DataTypeInteger},       // RFC2866
	{ID: 43, Name: "Acct-Output-Octets", DataType: DataTypeInteger},      // RFC2866
	{ID: 44, Name: "Acct-Session-Id", DataType: DataTypeString},          // RFC2866
	{ID: 45, Name: "Acct-Authentic", DataType: DataTypeInteger},          // RFC2866
	{ID: 46, Name: "Acct-Session-Time", DataType: DataTypeInteger},       // RFC2866
	{ID: 47, Name: "Acct-Input-Packets", DataType: DataTypeInteger},      // RFC2866
	{ID: 48, Name: "Acct-Output-Packets", DataType: DataTypeInteger},     // RFC2866
	{ID: 49, Name: "Acct-Terminate-Cause", DataType: DataTypeInteger},    // RFC2866
	{ID: 50, Name: "Acct-Multi-Session-Id", DataType: DataTypeString},    // RFC2866
	{ID: 51, Name: "Acct-Link-Count", DataType: DataTypeInteger},         // RFC2866
	{ID: 52, Name: "Acct-Input-Gigawords", DataType: DataTypeInteger},    // RFC2869
	{ID: 53, Name: "Acct-Output-Gigawords", DataType: DataTypeInteger},   // RFC2869
	{ID: 55, Name: "Event-Timestamp", DataType: DataTypeDate},            // RFC2869
	{ID: 60, Name: "CHAP-Challenge", DataType: DataTypeString},           // RFC2865
	{ID: 61, Name: "NAS-Port-Type", DataType: DataTypeInteger},           // RFC2865
	{ID: 62, Name: "Port-Limit", DataType: DataTypeInteger},              // RFC2865
	{ID: 63, Name: "Login-LAT-Port", DataType: DataTypeString},           // RFC2865
	{ID: 64, Name: "Tunnel-Type", DataType: DataTypeInteger},             // RFC2868
	{ID: 65, Name: "Tunnel-Medium-Type", DataType: DataTypeInteger},      // RFC2868
	{ID: 66, Name: "Tunnel-Client-Endpoint", DataType: DataTypeString},   // RFC2868
	{ID: 67, Name: "Tunnel-Server-Endpoint", DataType: DataTypeString},   // RFC2868
	{ID: 69, Name: "Tunnel-Password", DataType: DataTypeString},          // RFC2868
	{ID: 70, Name: "ARAP-Password", DataType: DataTypeString},            // RFC2869
	{ID: 71, Name: "ARAP-Features", DataType: DataTypeString},            // RFC2869
	{ID: 72, Name: "ARAP-Zone-Access", DataType: DataTypeInteger},        // RFC2869
	{ID: 73, Name: "ARAP-Security", DataType: DataTypeInteger},           // RFC2869
	{ID: 74, Name: "ARAP-Security-Data", DataType: DataTypeString},       // RFC2869
	{ID: 75, Name: "Password-Retry", DataType: DataTypeInteger},          // RFC2869
	{ID: 76, Name: "Prompt", DataType: DataTypeInteger},                  // RFC2869
	{ID: 77, Name: "Connect-Info", DataType: DataTypeString},             // RFC2869
	{ID: 78, Name: "Configuration-Token", DataType: DataTypeString},      // RFC2869
	{ID: 79, Name: "EAP-Message", DataType: DataTypeString},              // RFC2869
	{ID: 80, Name: "Message-Authenticator", DataType: DataTypeString},    // RFC2869
	{ID: 81, Name: "Tunnel-Private-Group-Id", DataType: DataTypeString},  // RFC2868
	{ID: 82, Name: "Tunnel-Assignment-Id", DataType: DataTypeString},     // RFC2868
	{ID: 83, Name: "Tunnel-Preference", DataType: DataTypeInteger},       // RFC2868
	{ID: 84, Name: "ARAP-Challenge-Response", DataType: DataTypeString},  // RFC2869
	{ID: 85, Name: "Acct-Interim-Interval", DataType: DataTypeInteger},   // RFC2869
	{ID: 87, Name: "NAS-Port-Id", DataType: DataTypeString},              // RFC2869
	{ID: 88, Name: "Framed-Pool", DataType: DataTypeString},              // RFC2869
	{ID: 90, Name: "Tunnel-Client-Auth-Id", DataType: DataTypeString},    // RFC2868
	{ID: 91, Name: "Tunnel-Server-Auth-Id", DataType: DataTypeString},    // RFC2868
	{ID: 95, Name: "NAS-IPv6-Address", DataType: DataTypeIPv6Addr},       // RFC3162
	{ID: 96, Name: "Framed-Interface-Id", DataType: DataTypeIfID},        // RFC3162
	{ID: 97, Name: "Framed-IPv6-Prefix", DataType: DataTypeIPv6Prefix},   // RFC3162
	{ID: 98, Name: "Login-IPv6-Host", DataType: DataTypeIPv6Addr},        // RFC3162
	{ID: 99, Name: "Framed-IPv6-Route", DataType: DataTypeString},        // RFC3162
	{ID: 100, Name: "Framed-IPv6-Pool", DataType: DataTypeString},        // RFC3162
	{ID: 101, Name: "Error-Cause", DataType: DataTypeInteger},            // RFC5176
	{ID: 123, Name: "Delegated-IPv6-Prefix", DataType: DataTypeIPv6Prefix}, // RFC4818
	{ID: 168, Name: "Framed-IPv6-Address", DataType: DataTypeIPv6Addr},   // RFC6911
}
