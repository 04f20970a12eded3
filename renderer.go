package goarg

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultRenderer produces the help, version and error text of a Parser
type DefaultRenderer struct {
	parser  *Parser
	styled  bool
	heading *color.Color
	flag    *color.Color
	alert   *color.Color
}

// NewRenderer creates a renderer for parser. When styled is true headings, option names and error
// labels carry ANSI attributes.
func NewRenderer(parser *Parser, styled bool) *DefaultRenderer {
	r := &DefaultRenderer{
		parser:  parser,
		styled:  styled,
		heading: color.New(color.Bold, color.Underline),
		flag:    color.New(color.Bold),
		alert:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.heading, r.flag, r.alert} {
		if styled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func (s *Parser) renderer(w io.Writer) *DefaultRenderer {
	return NewRenderer(s, s.useColor(w))
}

func (s *Parser) useColor(w io.Writer) bool {
	switch s.colorMode {
	case ColorAlways:
		return true
	case ColorAuto:
		if f, ok := w.(interface{ Fd() uintptr }); ok {
			return term.IsTerminal(int(f.Fd()))
		}
	}

	return false
}

// FlagName returns the option as it appears in help: -s, --long plus <LONG> for required options
func (r *DefaultRenderer) FlagName(o *Option) string {
	var b strings.Builder
	if o.Short != 0 {
		b.WriteString(r.flag.Sprint("-" + string(o.Short)))
		b.WriteString(", ")
	} else {
		b.WriteString("    ")
	}
	b.WriteString(r.flag.Sprint("--" + o.Long))
	if o.Required {
		b.WriteString(" <" + upper(o.Long) + ">")
	}

	return b.String()
}

// FlagUsage returns the help row of o, padding the name to column width
func (r *DefaultRenderer) FlagUsage(o *Option, width int) string {
	row := "    " + r.FlagName(o)
	row += strings.Repeat(" ", max(width-nameWidth(o), 0)+1)
	row += o.Description
	if o.HasDefault() && o.TakesValue() {
		row += " [default: " + o.Default.Format() + "]"
	}

	return strings.TrimRight(row, " ")
}

// Usage returns the usage line: program name, required options, then the generic markers
func (r *DefaultRenderer) Usage() string {
	var b strings.Builder
	b.WriteString(r.heading.Sprint("Usage") + ": " + r.parser.programName)
	for _, o := range r.parser.registry.All() {
		if o.Required {
			b.WriteString(" " + r.flag.Sprint("--"+o.Long) + " <" + upper(o.Long) + ">")
		}
	}
	b.WriteString(" [options]")
	if r.parser.positionalName != "" {
		b.WriteString(" [args]...")
	}

	return b.String()
}

// HelpString returns the complete help text
func (r *DefaultRenderer) HelpString() string {
	p := r.parser
	var b strings.Builder

	if p.description != "" {
		b.WriteString(p.description + "\n")
	}
	b.WriteString(r.Usage() + "\n\n")

	if p.positionalName != "" && p.positionalDesc != "" {
		b.WriteString(r.heading.Sprint("Arguments:") + "\n")
		fmt.Fprintf(&b, "    [%s]... %s\n\n", p.positionalName, p.positionalDesc)
	}

	options := p.registry.All()
	if len(options) > 0 {
		width := 0
		for _, o := range options {
			width = max(width, nameWidth(o))
		}
		b.WriteString(r.heading.Sprint("Options:") + "\n")
		for _, o := range options {
			b.WriteString(r.FlagUsage(o, width) + "\n")
		}
	}

	if p.footer != "" {
		b.WriteString("\n" + p.footer + "\n")
	}

	return b.String()
}

// Help writes the help text to w
func (r *DefaultRenderer) Help(w io.Writer) {
	_, _ = io.WriteString(w, r.HelpString())
}

// Version writes "<program> version <version>" to w, None standing in for an unset version
func (r *DefaultRenderer) Version(w io.Writer) {
	version := r.parser.version
	if version == "" {
		version = "None"
	}
	_, _ = fmt.Fprintf(w, "%s version %s\n", r.parser.programName, version)
}

// Error writes msg to w prefixed with the [ERROR] label
func (r *DefaultRenderer) Error(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "[%s] %s\n", r.alert.Sprint("ERROR"), msg)
}

// nameWidth is the alignment width of an option: the long name length, or twice that plus three for
// required options which also show <LONG>
func nameWidth(o *Option) int {
	n := utf8.RuneCountInString(o.Long)
	if o.Required {
		return n*2 + 3
	}
	return n
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
