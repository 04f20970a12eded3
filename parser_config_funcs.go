package goarg

import (
	"io"
	"log/slog"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProgramDescription("copies files somewhere else"),
//		WithVersion("1.2.0"),
//		WithShowVersion(true),
//		WithOption(NewOption("name",
//			WithShort('n'),
//			WithDescription("who to greet"),
//			SetRequired(true))),
//		WithOption(NewOption("count",
//			WithShort('c'),
//			WithType(types.SignedInt),
//			WithDefault(3),
//			WithDescription("how many times"))),
//		WithPositionals("files", "files to process"))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithOption is a wrapper for AddOption
func WithOption(option *Option) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddOption(option)
	}
}

// WithVersion sets the version printed by --version
func WithVersion(version string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetVersion(version)
	}
}

// WithProgramDescription sets the line printed above the usage line in help output
func WithProgramDescription(description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetDescription(description)
	}
}

// WithFooter sets the text printed at the end of help output
func WithFooter(footer string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetFooter(footer)
	}
}

// WithPositionals names the positional arguments for help output
func WithPositionals(name, description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetPositionals(name, description)
	}
}

// WithShowVersion enables the built-in --version/-v option
func WithShowVersion(show bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetShowVersion(show)
	}
}

// WithColor sets when help and error output is styled
func WithColor(mode ColorMode) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetColor(mode)
	}
}

// WithExitOnError terminates the program after Parse returns RequestExit or ParseError
func WithExitOnError(exit bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetExitOnError(exit)
	}
}

// WithExitFunc replaces os.Exit as the function used by WithExitOnError
func WithExitFunc(exit ExitFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetExitFunc(exit)
	}
}

// WithStdout sets the writer receiving help and version text
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetStdout(w)
	}
}

// WithStderr sets the writer receiving error text
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetStderr(w)
	}
}

// WithLogger sets the structured logger, slog.Default() is used otherwise
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetLogger(logger)
	}
}

// WithUnknownOptionPolicy sets how options matching no declaration are treated
func WithUnknownOptionPolicy(policy UnknownOptionPolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetUnknownOptionPolicy(policy)
	}
}

// WithDuplicatePolicy sets how names already in use are treated. Apply it before the options it
// should govern.
func WithDuplicatePolicy(policy DuplicatePolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetDuplicatePolicy(policy)
	}
}

// WithAssignment accepts --name=value
func WithAssignment(allow bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetAssignment(allow)
	}
}

// WithSeparateValues accepts --name value and -n value
func WithSeparateValues(allow bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetSeparateValues(allow)
	}
}

// WithStrictNumbers reports malformed numeric and time values instead of storing zero
func WithStrictNumbers(strict bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetStrictNumbers(strict)
	}
}
