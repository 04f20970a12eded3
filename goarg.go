// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goarg provides declaration and parsing of command-line options.
//
// Options have a long name, an optional single-character short name, a description, a value type
// and optionally a default (shown in help) and a required marker. Supported value types:
//
//	String - any text
//	UnsignedInt - a non-negative integer, 0x/0/0b prefixes select the base
//	SignedInt - a signed integer, 0x/0/0b prefixes select the base
//	Float - a decimal or scientific floating point number
//	Bool - the literal true or false
//	Toggle - takes no value, presence sets it
//	Time - a date or timestamp in any common layout
//
// Values are attached directly to the long name (--count42) unless assignment (--count=42) or
// separate values (--count 42) are enabled. The first bare token, or everything after "--", is
// captured as positional arguments. A Parser parses exactly once.
package goarg

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/napalu/goarg/completion"
	"github.com/napalu/goarg/errs"
	"github.com/napalu/goarg/internal/lex"
	"github.com/napalu/goarg/types"
)

// NewParser convenience initialization method. Use NewParserWith to
// configure Parser using option functions.
func NewParser() *Parser {
	return &Parser{
		registry: NewRegistry(),
		exitFunc: os.Exit,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   slog.Default(),
	}
}

// AddOption registers opt. Configuration errors recorded on opt are returned, as are empty long
// names. Names already in use are handled according to the DuplicatePolicy.
func (s *Parser) AddOption(opt *Option) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if opt == nil {
		return fmt.Errorf(errs.FmtErrorWithString, errs.ErrEmptyFlag, "nil option")
	}
	if opt.configErr != nil {
		return opt.configErr
	}
	if opt.Long == "" {
		return errs.ErrEmptyFlag
	}
	if !opt.Type.IsValid() {
		return fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedType, opt.Type)
	}
	if opt.Type == types.Toggle && opt.Default.IsSet() {
		return fmt.Errorf("%w: toggle %s cannot have a default", errs.ErrInvalidAttributeForType, opt.Long)
	}
	if opt.Default.IsSet() && opt.Default.Kind() != opt.Type {
		return fmt.Errorf("%w: default of %s is a %s, not a %s", errs.ErrTypeMismatch, opt.Long,
			opt.Default.Kind(), opt.Type)
	}

	if s.duplicatePolicy == DuplicateError {
		if _, found := s.registry.Find(opt.Long); found {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrFlagAlreadyExists, opt.Long)
		}
		if _, found := s.registry.FindShort(opt.Short); found {
			return fmt.Errorf("%w: -%c (option %s)", errs.ErrShortFlagConflict, opt.Short, opt.Long)
		}
	}

	if opt.Required && opt.Default.IsSet() {
		s.logger.Warn("required option has a default which will never be used", "option", opt.Long)
	}

	if s.registry.Add(opt) && s.duplicatePolicy == DuplicateWarn {
		s.logger.Warn("option name already registered, first declaration wins", "option", opt.Long)
	}

	return nil
}

// Parse parses args, where args[0] is the program path (typically os.Args). A Parser can only be
// parsed once.
//
// The Result is Ok when parsing and validation succeeded. RequestExit means help or version text
// was printed, or a required option is missing (the returned error wraps errs.ErrRequiredFlag).
// ParseError means the command line was malformed and the error describes the first problem; a
// --help or --version anywhere on the command line still yields RequestExit. When exit-on-error
// is configured every non-Ok result terminates the program through the exit function.
func (s *Parser) Parse(args []string) (Result, error) {
	switch s.state {
	case StateCreated:
	case StateReleased:
		return ParseError, errs.ErrReleased
	default:
		return ParseError, errs.ErrAlreadyParsed
	}

	result, err := s.parse(args)
	s.finish(result, err)

	return result, err
}

// ParseString splits cmdline with shell quoting rules and calls Parse. The first word is the
// program name.
func (s *Parser) ParseString(cmdline string) (Result, error) {
	args, err := lex.Split(cmdline)
	if err != nil {
		if s.state == StateCreated {
			s.finish(ParseError, err)
		}
		return ParseError, err
	}

	return s.Parse(args)
}

// Lookup returns the option registered under long. Built-in options are found once Parse has run.
func (s *Parser) Lookup(long string) (*Option, bool) {
	return s.registry.Find(long)
}

// Options returns the registered options in registration order
func (s *Parser) Options() []*Option {
	return s.registry.All()
}

// Value returns the parsed value of long. The second result is false when the option is unknown
// or was not supplied; defaults are not consulted.
func (s *Parser) Value(long string) (types.Value, bool) {
	opt, found := s.registry.Find(long)
	if !found {
		return types.Value{}, false
	}

	return opt.Value()
}

// ValueOrDefault returns the parsed value of long, falling back to the declared default
func (s *Parser) ValueOrDefault(long string) (types.Value, bool) {
	opt, found := s.registry.Find(long)
	if !found {
		return types.Value{}, false
	}
	if v, ok := opt.Value(); ok {
		return v, true
	}

	return opt.Default, opt.Default.IsSet()
}

// IsSet returns true when long was supplied on the command line
func (s *Parser) IsSet(long string) bool {
	_, found := s.Value(long)
	return found
}

// GetString returns the value of a String option
func (s *Parser) GetString(long string) (string, error) {
	v, err := s.typedValue(long, types.String)
	if err != nil {
		return "", err
	}
	str, _ := v.AsString()

	return str, nil
}

// GetUint returns the value of an UnsignedInt option
func (s *Parser) GetUint(long string) (uint64, error) {
	v, err := s.typedValue(long, types.UnsignedInt)
	if err != nil {
		return 0, err
	}
	u, _ := v.AsUint()

	return u, nil
}

// GetInt returns the value of a SignedInt option
func (s *Parser) GetInt(long string) (int64, error) {
	v, err := s.typedValue(long, types.SignedInt)
	if err != nil {
		return 0, err
	}
	i, _ := v.AsInt()

	return i, nil
}

// GetFloat returns the value of a Float option
func (s *Parser) GetFloat(long string) (float64, error) {
	v, err := s.typedValue(long, types.Float)
	if err != nil {
		return 0, err
	}
	f, _ := v.AsFloat()

	return f, nil
}

// GetBool returns the value of a Bool or Toggle option. An unset Toggle reports false without error.
func (s *Parser) GetBool(long string) (bool, error) {
	opt, found := s.registry.Find(long)
	if !found {
		return false, fmt.Errorf(errs.FmtErrorWithString, errs.ErrFlagNotFound, long)
	}
	if opt.Type == types.Toggle {
		return opt.IsSet(), nil
	}

	v, err := s.typedValue(long, types.Bool)
	if err != nil {
		return false, err
	}
	b, _ := v.AsBool()

	return b, nil
}

// GetTime returns the value of a Time option
func (s *Parser) GetTime(long string) (time.Time, error) {
	v, err := s.typedValue(long, types.Time)
	if err != nil {
		return time.Time{}, err
	}
	t, _ := v.AsTime()

	return t, nil
}

// Positionals returns the tokens captured after the first bare token or after "--"
func (s *Parser) Positionals() []string {
	return s.positionals
}

// ProgramName returns the base name of args[0] once Parse has run
func (s *Parser) ProgramName() string {
	return s.programName
}

// State returns the lifecycle stage of the Parser
func (s *Parser) State() State {
	return s.state
}

// ExitCode returns the process exit code matching the outcome of Parse: 0 after success, help or
// version, 1 when a required option is missing and 2 for malformed input
func (s *Parser) ExitCode() int {
	return s.exitCode
}

// Release drops every parsed value, default and option. The Parser cannot be used afterwards.
func (s *Parser) Release() {
	for _, opt := range s.registry.All() {
		opt.Default = types.Value{}
	}
	s.registry.Reset()
	s.helpOption = nil
	s.versionOption = nil
	s.positionals = nil
	s.state = StateReleased
}

// PrintHelp writes the help text to w
func (s *Parser) PrintHelp(w io.Writer) {
	s.renderer(w).Help(w)
}

// HelpString returns the help text without styling
func (s *Parser) HelpString() string {
	return NewRenderer(s, false).HelpString()
}

// CompletionData describes the registered options for shell completion scripts
func (s *Parser) CompletionData() completion.Data {
	var data completion.Data
	for _, opt := range s.registry.All() {
		if found, _ := s.registry.Find(opt.Long); found != opt {
			continue
		}
		data.Flags = append(data.Flags, completion.Flag{
			Long:        opt.Long,
			Short:       opt.Short,
			Description: opt.Description,
			TakesValue:  opt.TakesValue(),
			Type:        opt.Type.String(),
		})
	}

	return data
}

// SetVersion sets the version printed by --version
func (s *Parser) SetVersion(version string) {
	s.version = version
}

// SetDescription sets the line printed above the usage line
func (s *Parser) SetDescription(description string) {
	s.description = description
}

// SetFooter sets the text printed after the option list
func (s *Parser) SetFooter(footer string) {
	s.footer = footer
}

// SetPositionals names the positional arguments in help output
func (s *Parser) SetPositionals(name, description string) {
	s.positionalName = name
	s.positionalDesc = description
}

// SetShowVersion enables the built-in --version/-v option
func (s *Parser) SetShowVersion(show bool) {
	s.showVersion = show
}

// SetColor sets when help and error output is styled
func (s *Parser) SetColor(mode ColorMode) {
	s.colorMode = mode
}

// SetExitOnError when true, Parse terminates the program through the exit function on any non-Ok result
func (s *Parser) SetExitOnError(exit bool) {
	s.exitOnError = exit
}

// SetExitFunc replaces os.Exit as the function called when exit-on-error is enabled
func (s *Parser) SetExitFunc(exit ExitFunc) {
	if exit == nil {
		exit = os.Exit
	}
	s.exitFunc = exit
}

// SetStdout sets the writer receiving help and version text
func (s *Parser) SetStdout(w io.Writer) {
	s.stdout = w
}

// SetStderr sets the writer receiving error text
func (s *Parser) SetStderr(w io.Writer) {
	s.stderr = w
}

// SetLogger sets the structured logger used for warnings and parse tracing
func (s *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// SetUnknownOptionPolicy sets how options which match nothing are treated
func (s *Parser) SetUnknownOptionPolicy(policy UnknownOptionPolicy) {
	s.unknownPolicy = policy
}

// SetDuplicatePolicy sets how AddOption treats names already in use
func (s *Parser) SetDuplicatePolicy(policy DuplicatePolicy) {
	s.duplicatePolicy = policy
}

// SetAssignment when true, --name=value is accepted and the '=' is not part of the value
func (s *Parser) SetAssignment(allow bool) {
	s.allowAssign = allow
}

// SetSeparateValues when true, an option given without attached value takes the following argument
func (s *Parser) SetSeparateValues(allow bool) {
	s.separateValues = allow
}

// SetStrictNumbers when true, numeric and time values which fail to parse are reported instead of
// becoming zero
func (s *Parser) SetStrictNumbers(strict bool) {
	s.strictNumbers = strict
}
