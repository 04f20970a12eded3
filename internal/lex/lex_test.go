package lex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_Classify(t *testing.T) {
	tests := []struct {
		arg  string
		want Token
	}{
		{arg: "", want: Token{Kind: Empty}},
		{arg: "--", want: Token{Kind: Separator, Raw: "--"}},
		{arg: "--name", want: Token{Kind: Long, Raw: "--name", Body: "name"}},
		{arg: "--count42", want: Token{Kind: Long, Raw: "--count42", Body: "count42"}},
		{arg: "---x", want: Token{Kind: Long, Raw: "---x", Body: "-x"}},
		{arg: "-v", want: Token{Kind: Short, Raw: "-v", Rune: 'v'}},
		{arg: "-é", want: Token{Kind: Short, Raw: "-é", Rune: 'é'}},
		{arg: "-xyz", want: Token{Kind: Cluster, Raw: "-xyz", Body: "xyz"}},
		{arg: "-", want: Token{Kind: Positional, Raw: "-"}},
		{arg: "file.txt", want: Token{Kind: Positional, Raw: "file.txt"}},
	}

	for _, tt := range tests {
		got := Classify(tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}
}

func TestLex_Lexer(t *testing.T) {
	l := New([]string{"--name", "Ada", "-v", "a", "b"})
	assert.Equal(t, 5, l.Len())

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, Long, tok.Kind)

	val, ok := l.TakeValue()
	require.True(t, ok)
	assert.Equal(t, "Ada", val)

	tok, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, Short, tok.Kind)
	assert.Equal(t, 'v', tok.Rune)

	if diff := cmp.Diff([]string{"a", "b"}, l.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}

	_, ok = l.Next()
	assert.False(t, ok)
	_, ok = l.TakeValue()
	assert.False(t, ok)
	assert.Empty(t, l.Rest())
}

func TestLex_Split(t *testing.T) {
	args, err := Split(`prog --name "Ada Lovelace" -v 'quoted arg'`)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"prog", "--name", "Ada Lovelace", "-v", "quoted arg"}, args); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}

	_, err = Split(`prog "unterminated`)
	assert.Error(t, err)
}
