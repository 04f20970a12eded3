package goarg

import (
	"io"
	"log/slog"

	"github.com/napalu/goarg/types"
)

// Result is the outcome of Parse
type Result = types.Result

const (
	// Ok parsing succeeded, the caller proceeds
	Ok = types.Ok
	// RequestExit help or version was printed, or a required option is missing
	RequestExit = types.RequestExit
	// ParseError the command line was malformed
	ParseError = types.ParseError
)

// Exit codes passed to the exit function when exit-on-error is enabled
const (
	ExitOk         = 0
	ExitValidation = 1
	ExitUsage      = 2
)

// ColorMode controls ANSI styling of help and error output
type ColorMode int

const (
	// ColorNever plain text output
	ColorNever ColorMode = iota
	// ColorAuto style output when the writer is a terminal
	ColorAuto
	// ColorAlways style output regardless of the writer
	ColorAlways
)

// UnknownOptionPolicy determines how tokens which match no option are treated
type UnknownOptionPolicy int

const (
	// UnknownIgnore silently skips unmatched options
	UnknownIgnore UnknownOptionPolicy = iota
	// UnknownWarn skips unmatched options and logs a warning
	UnknownWarn
	// UnknownError fails the parse with errs.ErrUnknownFlag
	UnknownError
)

// DuplicatePolicy determines how AddOption treats a long or short name which is already registered
type DuplicatePolicy int

const (
	// DuplicateIgnore keeps both options, lookups resolve to the first
	DuplicateIgnore DuplicatePolicy = iota
	// DuplicateWarn behaves like DuplicateIgnore and logs a warning
	DuplicateWarn
	// DuplicateError rejects the option
	DuplicateError
)

// State is the lifecycle stage of a Parser
type State int

const (
	StateCreated       State = iota // StateCreated options may be added, Parse has not run
	StateValidated                  // StateValidated Parse returned Ok
	StateExitRequested              // StateExitRequested Parse returned RequestExit
	StateErrored                    // StateErrored Parse returned ParseError
	StateReleased                   // StateReleased Release was called
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateValidated:
		return "validated"
	case StateExitRequested:
		return "exit-requested"
	case StateErrored:
		return "errored"
	case StateReleased:
		return "released"
	}
	return "unknown"
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureOptionFunc is used when defining Option attributes
type ConfigureOptionFunc func(option *Option, err *error)

// ExitFunc terminates the program with code
type ExitFunc func(code int)

// Parser declares options, parses a command line once and exposes the typed results
type Parser struct {
	programName     string
	version         string
	description     string
	footer          string
	positionalName  string
	positionalDesc  string
	showVersion     bool
	colorMode       ColorMode
	exitOnError     bool
	exitFunc        ExitFunc
	unknownPolicy   UnknownOptionPolicy
	duplicatePolicy DuplicatePolicy
	allowAssign     bool
	separateValues  bool
	strictNumbers   bool
	registry        *Registry
	helpOption      *Option
	versionOption   *Option
	positionals     []string
	state           State
	exitCode        int
	stdout          io.Writer
	stderr          io.Writer
	logger          *slog.Logger
}
