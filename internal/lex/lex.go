// Package lex classifies command-line tokens for the parser.
package lex

import (
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
)

// Kind identifies the shape of a token
type Kind int

const (
	Empty      Kind = iota // Empty an empty string
	Separator              // Separator the "--" end-of-options marker
	Long                   // Long a token starting with "--" followed by a body
	Short                  // Short a "-" followed by exactly one character
	Cluster                // Cluster a "-" followed by two or more characters
	Positional             // Positional anything else, including a lone "-"
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Separator:
		return "separator"
	case Long:
		return "long"
	case Short:
		return "short"
	case Cluster:
		return "cluster"
	case Positional:
		return "positional"
	}
	return "unknown"
}

// Token is a classified argument
type Token struct {
	Kind Kind
	Raw  string // Raw the token as it appeared on the command line
	Body string // Body the text after "--" for Long tokens, after "-" for Cluster tokens
	Rune rune   // Rune the flag character of a Short token
}

// Classify determines the Kind of a single argument
func Classify(arg string) Token {
	tok := Token{Raw: arg}
	switch {
	case arg == "":
		tok.Kind = Empty
	case arg == "--":
		tok.Kind = Separator
	case strings.HasPrefix(arg, "--"):
		tok.Kind = Long
		tok.Body = arg[2:]
	case len(arg) > 1 && arg[0] == '-':
		body := arg[1:]
		if utf8.RuneCountInString(body) == 1 {
			tok.Kind = Short
			tok.Rune, _ = utf8.DecodeRuneInString(body)
		} else {
			tok.Kind = Cluster
			tok.Body = body
		}
	default:
		tok.Kind = Positional
	}

	return tok
}

// Lexer walks an argument list front to back
type Lexer struct {
	args *deque.Deque
}

// New creates a Lexer over args. The program name must already be removed.
func New(args []string) *Lexer {
	d := deque.New()
	for _, a := range args {
		d.PushBack(a)
	}

	return &Lexer{args: d}
}

// Next pops and classifies the front token. ok is false when the arguments are exhausted.
func (l *Lexer) Next() (tok Token, ok bool) {
	v, ok := l.args.PopFront()
	if !ok {
		return Token{}, false
	}

	return Classify(v.(string)), true
}

// TakeValue pops the front token verbatim, for options whose value is the following argument
func (l *Lexer) TakeValue() (string, bool) {
	v, ok := l.args.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Rest drains and returns every remaining token verbatim
func (l *Lexer) Rest() []string {
	rest := make([]string, 0, l.args.Len())
	for l.args.Len() > 0 {
		v, _ := l.args.PopFront()
		rest = append(rest, v.(string))
	}

	return rest
}

// Len returns the number of tokens not yet consumed
func (l *Lexer) Len() int {
	return l.args.Len()
}

// Split breaks a command line into arguments using shell quoting rules
func Split(cmdline string) ([]string, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return nil, err
	}

	return args, nil
}
