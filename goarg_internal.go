package goarg

import (
	"fmt"
	"path/filepath"

	"github.com/napalu/goarg/errs"
	"github.com/napalu/goarg/internal/convert"
	"github.com/napalu/goarg/internal/lex"
	"github.com/napalu/goarg/types"
)

func (s *Parser) ensureMutable() error {
	switch s.state {
	case StateCreated:
		return nil
	case StateReleased:
		return errs.ErrReleased
	}

	return errs.ErrAlreadyParsed
}

func (s *Parser) parse(args []string) (Result, error) {
	if len(args) == 0 {
		return ParseError, errs.ErrMissingProgramName
	}

	s.programName = filepath.Base(args[0])
	s.injectBuiltins()
	s.logger.Debug("parse started", "program", s.programName, "args", len(args)-1)

	// a malformed token does not stop the walk: a later --help or --version takes precedence over it
	var parseErr error
	record := func(err error) {
		if err != nil && parseErr == nil {
			parseErr = err
		}
	}

	l := lex.New(args[1:])
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}

		switch tok.Kind {
		case lex.Empty:
			continue
		case lex.Separator:
			s.capturePositionals(tok, l.Rest())
		case lex.Positional:
			s.capturePositionals(tok, append([]string{tok.Raw}, l.Rest()...))
		case lex.Long:
			record(s.evalLong(l, tok))
		case lex.Short:
			record(s.evalShort(l, tok))
		case lex.Cluster:
			record(fmt.Errorf(errs.FmtErrorWithString, errs.ErrShortFlagCluster, tok.Raw))
		}
	}

	if s.helpOption != nil && s.helpOption.IsSet() {
		s.discard(parseErr)
		s.PrintHelp(s.stdout)
		return RequestExit, nil
	}
	if s.versionOption != nil && s.versionOption.IsSet() {
		s.discard(parseErr)
		s.renderer(s.stdout).Version(s.stdout)
		return RequestExit, nil
	}
	if parseErr != nil {
		return ParseError, parseErr
	}

	return s.validateRequired()
}

func (s *Parser) discard(err error) {
	if err != nil {
		s.logger.Debug("parse error superseded by built-in option", "error", err)
	}
}

// injectBuiltins appends --help/-h and, when enabled, --version/-v. A built-in whose long name is
// already declared is left out; one whose short name is taken loses its short form.
func (s *Parser) injectBuiltins() {
	s.helpOption = s.builtin("help", 'h', "Shows this help text")
	if s.showVersion {
		s.versionOption = s.builtin("version", 'v', "Shows the program version")
	}
}

func (s *Parser) builtin(long string, short rune, description string) *Option {
	if _, found := s.registry.Find(long); found {
		s.logger.Debug("built-in option replaced by declared option", "option", long)
		return nil
	}
	if _, found := s.registry.FindShort(short); found {
		short = 0
	}

	opt := &Option{Long: long, Short: short, Description: description, Type: types.Toggle}
	s.registry.Add(opt)

	return opt
}

func (s *Parser) capturePositionals(tok lex.Token, rest []string) {
	s.logger.Debug("positional capture", "token", tok.Raw, "count", len(rest))
	if len(rest) > 0 {
		s.positionals = rest
	}
}

func (s *Parser) evalLong(l *lex.Lexer, tok lex.Token) error {
	opt, text, found := s.registry.MatchLong(tok.Body, s.allowAssign)
	if !found {
		return s.unknownOption(tok)
	}

	if opt.Long == tok.Body && opt.TakesValue() && s.separateValues {
		next, ok := l.TakeValue()
		if !ok {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrFlagExpectsValue, "--"+opt.Long)
		}
		text = next
	}

	return s.assign(opt, text, tok)
}

// evalShort matches -x. Without separate values a non-toggle option receives the flag character as
// its value text.
func (s *Parser) evalShort(l *lex.Lexer, tok lex.Token) error {
	opt, found := s.registry.FindShort(tok.Rune)
	if !found {
		return s.unknownOption(tok)
	}

	text := string(tok.Rune)
	if opt.TakesValue() && s.separateValues {
		next, ok := l.TakeValue()
		if !ok {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrFlagExpectsValue, tok.Raw)
		}
		text = next
	}

	return s.assign(opt, text, tok)
}

func (s *Parser) assign(opt *Option, text string, tok lex.Token) error {
	v, err := convert.Convert(opt.Type, text, s.strictNumbers)
	if err != nil {
		return fmt.Errorf("--%s: %w", opt.Long, err)
	}

	if opt.IsSet() {
		s.logger.Debug("option repeated, previous value replaced", "option", opt.Long, "token", tok.Raw)
	}
	opt.setValue(v)
	s.logger.Debug("option matched", "option", opt.Long, "token", tok.Raw)

	return nil
}

func (s *Parser) unknownOption(tok lex.Token) error {
	switch s.unknownPolicy {
	case UnknownWarn:
		s.logger.Warn("unknown option ignored", "token", tok.Raw)
	case UnknownError:
		return fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnknownFlag, tok.Raw)
	default:
		s.logger.Debug("unknown option ignored", "token", tok.Raw)
	}

	return nil
}

// validateRequired reports the first required option without a value
func (s *Parser) validateRequired() (Result, error) {
	for _, opt := range s.registry.All() {
		if !opt.Required || opt.IsSet() {
			continue
		}

		s.PrintHelp(s.stdout)
		s.renderer(s.stderr).Error(s.stderr, "Missing required value --"+opt.Long)

		return RequestExit, fmt.Errorf(errs.FmtErrorWithString, errs.ErrRequiredFlag, "--"+opt.Long)
	}

	return Ok, nil
}

func (s *Parser) finish(result Result, err error) {
	switch result {
	case Ok:
		s.state = StateValidated
		s.exitCode = ExitOk
	case RequestExit:
		s.state = StateExitRequested
		s.exitCode = ExitOk
		if err != nil {
			s.exitCode = ExitValidation
		}
	default:
		s.state = StateErrored
		s.exitCode = ExitUsage
		if err != nil {
			s.renderer(s.stderr).Error(s.stderr, err.Error())
		}
	}

	s.logger.Debug("parse finished", "program", s.programName, "result", result.String(), "code", s.exitCode)

	if s.exitOnError && result != Ok {
		s.exitFunc(s.exitCode)
	}
}

func (s *Parser) typedValue(long string, kind types.ValueType) (types.Value, error) {
	opt, found := s.registry.Find(long)
	if !found {
		return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrFlagNotFound, long)
	}
	if opt.Type != kind {
		return types.Value{}, fmt.Errorf("%w: %s is a %s option, not %s", errs.ErrTypeMismatch, long, opt.Type, kind)
	}

	v, ok := opt.Value()
	if !ok {
		return types.Value{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrValueNotSet, long)
	}

	return v, nil
}
