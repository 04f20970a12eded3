package types

// ValueType used to define the kind of value an option holds (such as String, SignedInt, Toggle)
type ValueType int

const (
	Invalid     ValueType = iota // Invalid denotes an undeclared value type
	String      ValueType = 1    // String denotes an option accepting any text
	UnsignedInt ValueType = 2    // UnsignedInt denotes an option accepting a non-negative integer (0x, 0 and 0b prefixes select the base)
	SignedInt   ValueType = 3    // SignedInt denotes an option accepting a signed integer (0x, 0 and 0b prefixes select the base)
	Float       ValueType = 4    // Float denotes an option accepting a decimal or scientific floating point number
	Bool        ValueType = 5    // Bool denotes an option accepting the literal true or false (case-insensitive)
	Toggle      ValueType = 6    // Toggle denotes a boolean option which takes no value - presence sets it to true
	Time        ValueType = 7    // Time denotes an option accepting a date or timestamp in any common layout
)

// String returns the string representation of a ValueType
func (v ValueType) String() string {
	switch v {
	case String:
		return "string"
	case UnsignedInt:
		return "uint"
	case SignedInt:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Toggle:
		return "toggle"
	case Time:
		return "time"
	case Invalid:
		fallthrough
	default:
		return "invalid"
	}
}

// IsValid returns true when v is one of the declared value types
func (v ValueType) IsValid() bool {
	return v >= String && v <= Time
}

// TakesValue returns true when an option of this type consumes value text
func (v ValueType) TakesValue() bool {
	return v.IsValid() && v != Toggle
}

// Result is the outcome of a parse
type Result int

const (
	// Ok parsing succeeded, the caller proceeds
	Ok Result = iota
	// RequestExit help or version was shown, or validation failed - the caller should terminate
	RequestExit
	// ParseError the input was malformed
	ParseError
)

// String returns the string representation of a Result
func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case RequestExit:
		return "request-exit"
	case ParseError:
		return "parse-error"
	}
	return "unknown"
}
