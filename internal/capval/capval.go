// Package capval interprets raw capability values as received from the
// wire-level mapping, where presence, truthiness, and numeric shape all
// carry meaning.
package capval

// Truthy reports whether a raw capability value counts as provided.
// Empty strings, false, zero numbers, and nil are all treated as absent,
// matching the wire protocol's truthy-only round-trip semantics.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case int8:
		return val != 0
	case int16:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	case uint:
		return val != 0
	case uint8:
		return val != 0
	case uint16:
		return val != 0
	case uint32:
		return val != 0
	case uint64:
		return val != 0
	case float32:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

// AsString returns the value as a string. Only genuine strings convert;
// there is no stringification of other shapes.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsBool returns the value as a bool. Only genuine booleans convert.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsInt returns the value as an int. Integer kinds convert directly;
// floats convert only when they carry an integral value, which covers
// numbers decoded from JSON.
func AsInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case uint:
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case uint64:
		return int(val), true
	case float32:
		if float32(int(val)) == val {
			return int(val), true
		}
	case float64:
		if float64(int(val)) == val {
			return int(val), true
		}
	}
	return 0, false
}
