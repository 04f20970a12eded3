package goarg

import (
	"io"
	"strings"
	"testing"

	"github.com/napalu/goarg/internal/lex"
	"github.com/napalu/goarg/types"
	"github.com/stretchr/testify/assert"
)

func fuzzParser(t *testing.T) *Parser {
	p, err := NewParserWith(
		WithStdout(io.Discard),
		WithStderr(io.Discard),
		WithLogger(quietLogger()),
		WithShowVersion(true),
		WithOption(NewOption("a", WithShort('a'))),
		WithOption(NewOption("xtra", WithShort('x'), WithType(types.Toggle))),
		WithOption(NewOption("count", WithShort('c'), WithType(types.UnsignedInt))),
		WithOption(NewOption("offset", WithType(types.SignedInt))),
		WithOption(NewOption("ratio", WithType(types.Float))),
		WithOption(NewOption("dry", WithType(types.Bool))),
		WithOption(NewOption("since", WithType(types.Time))),
		WithOption(NewOption("漢字")))
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func FuzzParse(f *testing.F) {
	f.Add("-a2こんにちは")
	f.Add("--long")
	f.Add("-vxffile")
	f.Add("-- value")
	f.Add("   --xtra ok   ")
	f.Add("--漢字こんにちは こんにち")
	f.Add("0")
	f.Add("-")
	f.Add("--count0x1f --offset-3 --ratio1e3")
	f.Add("--drytrue --since2024-01-02")
	f.Add("-h -v")
	f.Fuzz(func(t *testing.T, raw string) {
		args, err := lex.Split(raw)
		if err != nil {
			return
		}

		p := fuzzParser(t)
		res, err := p.Parse(append([]string{"prog"}, args...))

		switch res {
		case Ok:
			assert.NoError(t, err)
			assert.Equal(t, StateValidated, p.State())
			assert.Equal(t, ExitOk, p.ExitCode())
		case RequestExit:
			assert.Equal(t, StateExitRequested, p.State())
		case ParseError:
			assert.Error(t, err)
			assert.Equal(t, StateErrored, p.State())
			assert.Equal(t, ExitUsage, p.ExitCode())
		default:
			t.Fatalf("unexpected result %d", res)
		}

		for _, opt := range p.Options() {
			if v, ok := opt.Value(); ok {
				assert.Equal(t, opt.Type, v.Kind())
			}
		}
	})
}

func FuzzHelpText(f *testing.F) {
	f.Add("flag", "desc!@#$%^&*()")
	f.Add("漢字", "説明")

	f.Fuzz(func(t *testing.T, long, desc string) {
		p := NewParser()
		p.SetLogger(quietLogger())
		if err := p.AddOption(NewOption(long, WithDescription(desc))); err != nil {
			return
		}

		help := p.HelpString()
		assert.True(t, strings.HasPrefix(help, "Usage: "))
		assert.Contains(t, help, "--"+long)
		assert.Contains(t, help, strings.TrimRight(desc, " "))
	})
}
