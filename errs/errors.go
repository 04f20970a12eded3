// Package errs contains the sentinel errors returned by goarg. Errors returned by the library
// wrap one of these values and should be tested with errors.Is.
package errs

import "errors"

// FmtErrorWithString is the layout used to attach detail to a sentinel error
const FmtErrorWithString = "%w: %s"

// Declaration errors
var (
	ErrEmptyFlag               = errors.New("option long name must not be empty")
	ErrFlagAlreadyExists       = errors.New("option already exists")
	ErrShortFlagConflict       = errors.New("short option already in use")
	ErrInvalidShortFlag        = errors.New("invalid short option")
	ErrInvalidAttributeForType = errors.New("attribute not supported by type")
	ErrTypeMismatch            = errors.New("value does not match declared type")
	ErrUnsupportedType         = errors.New("unsupported value type")
	ErrFlagNotFound            = errors.New("option not found")
	ErrValueNotSet             = errors.New("option has no value")
	ErrUnsupportedShell        = errors.New("unsupported shell")
	ErrNoCompletionScript      = errors.New("no completion script generated")
)

// Session errors
var (
	ErrMissingProgramName = errors.New("argument vector is empty, program name missing")
	ErrAlreadyParsed      = errors.New("session has already been parsed")
	ErrReleased           = errors.New("session has been released")
)

// Parsing and validation errors
var (
	ErrShortFlagCluster = errors.New("short option must be a single character")
	ErrUnknownFlag      = errors.New("unknown option")
	ErrFlagExpectsValue = errors.New("option expects a value")
	ErrRequiredFlag     = errors.New("missing required value")
	ErrParseBool        = errors.New("invalid boolean value, expected true or false")
	ErrParseUint        = errors.New("invalid unsigned integer")
	ErrParseInt         = errors.New("invalid integer")
	ErrParseFloat       = errors.New("invalid float")
	ErrParseTime        = errors.New("invalid time")
)
