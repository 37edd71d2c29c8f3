package drivercaps

import (
	"fmt"
	"strings"
)

// unknownStr is the string representation for unknown enum values.
const unknownStr = "unknown"

// ProxyType selects which proxy configuration scheme a Proxy record
// describes.
type ProxyType int

const (
	// ProxyUnspecified is the zero value: the record has not been pinned
	// to a scheme yet. It is what a fresh Proxy reports.
	ProxyUnspecified ProxyType = iota

	// ProxyDirect is a direct connection with no proxy.
	ProxyDirect

	// ProxyManual is manually listed proxy hosts (httpProxy, sslProxy, ...).
	ProxyManual

	// ProxyPAC is proxy autoconfiguration from a PAC URL.
	ProxyPAC

	// ProxyReserved1 is a legacy protocol slot that was never used. It is
	// kept in the vocabulary so lookup accepts it.
	ProxyReserved1

	// ProxyAutodetect is proxy autodetection, presumably with WPAD.
	ProxyAutodetect

	// ProxySystem uses the operating system's proxy settings.
	ProxySystem
)

// proxyTypes lists every variant, used by lookup.
var proxyTypes = []ProxyType{
	ProxyUnspecified,
	ProxyDirect,
	ProxyManual,
	ProxyPAC,
	ProxyReserved1,
	ProxyAutodetect,
	ProxySystem,
}

// String returns the lowercase canonical identifier of a ProxyType. The
// uppercase form of this identifier is the registry ID matched by
// LookupProxyType, and the lowercase form is what Capabilities emits.
func (t ProxyType) String() string {
	switch t {
	case ProxyUnspecified:
		return "unspecified"
	case ProxyDirect:
		return "direct"
	case ProxyManual:
		return "manual"
	case ProxyPAC:
		return "pac"
	case ProxyReserved1:
		return "reserved1"
	case ProxyAutodetect:
		return "autodetect"
	case ProxySystem:
		return "system"
	default:
		return unknownStr
	}
}

// LegacyValue returns the numeric value this type had in the legacy
// browser-preference protocol.
func (t ProxyType) LegacyValue() int {
	switch t {
	case ProxyDirect:
		return 0
	case ProxyManual:
		return 1
	case ProxyPAC:
		return 2
	case ProxyReserved1:
		return 3
	case ProxyAutodetect:
		return 4
	case ProxySystem:
		return 5
	case ProxyUnspecified:
		return 6
	default:
		return -1
	}
}

// valid reports whether t is one of the declared variants.
func (t ProxyType) valid() bool {
	return t >= ProxyUnspecified && t <= ProxySystem
}

// LookupProxyType resolves a value to a ProxyType variant. It accepts a
// ProxyType, the wrapped-record mapping form carrying a "string" key, or
// any value whose fmt.Sprint rendering matches a canonical identifier
// case-insensitively. Unresolvable values fail with an
// *UnknownProxyTypeError; there is no silent default.
func LookupProxyType(v any) (ProxyType, error) {
	switch val := v.(type) {
	case ProxyType:
		if val.valid() {
			return val, nil
		}
		return ProxyUnspecified, &UnknownProxyTypeError{Value: v}
	case map[string]any:
		if s, ok := val["string"]; ok {
			return LookupProxyType(s)
		}
	case map[string]string:
		if s, ok := val["string"]; ok {
			return LookupProxyType(s)
		}
	}

	id := strings.ToUpper(fmt.Sprint(v))
	for _, t := range proxyTypes {
		if id == strings.ToUpper(t.String()) {
			return t, nil
		}
	}
	return ProxyUnspecified, &UnknownProxyTypeError{Value: v}
}
