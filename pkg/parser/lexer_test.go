package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphstack-labs/graphadmin/pkg/token"
)

func TestLexerTokenStream(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "grant statement",
			input: "GRANT WRITE (*) ON GRAPH foo TO admin",
			want: []token.Token{
				{Type: token.GRANT, Literal: "GRANT"},
				{Type: token.WRITE, Literal: "WRITE"},
				{Type: token.LPAREN, Literal: "("},
				{Type: token.STAR, Literal: "*"},
				{Type: token.RPAREN, Literal: ")"},
				{Type: token.ON, Literal: "ON"},
				{Type: token.GRAPH, Literal: "GRAPH"},
				{Type: token.IDENT, Literal: "foo"},
				{Type: token.TO, Literal: "TO"},
				{Type: token.IDENT, Literal: "admin"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "punctuation and wildcard",
			input: "(*, ); *",
			want: []token.Token{
				{Type: token.LPAREN, Literal: "("},
				{Type: token.STAR, Literal: "*"},
				{Type: token.COMMA, Literal: ","},
				{Type: token.RPAREN, Literal: ")"},
				{Type: token.SEMICOLON, Literal: ";"},
				{Type: token.STAR, Literal: "*"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "parameter and string",
			input: "SET PASSWORD $secret 'p4ss'",
			want: []token.Token{
				{Type: token.SET, Literal: "SET"},
				{Type: token.PASSWORD, Literal: "PASSWORD"},
				{Type: token.PARAM, Literal: "secret"},
				{Type: token.STRING, Literal: "p4ss"},
				{Type: token.EOF, Literal: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Type, tokens[i].Type, "token %d type", i)
				if want.Type == token.IDENT || want.Type == token.STRING || want.Type == token.PARAM {
					assert.Equal(t, want.Literal, tokens[i].Literal, "token %d literal", i)
				}
			}
		})
	}
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"GRANT", "grant", "Grant", "gRaNt"} {
		t.Run(input, func(t *testing.T) {
			l := NewLexer(input)
			tok := l.NextToken()
			assert.Equal(t, token.GRANT, tok.Type)
		})
	}
}

func TestLexerIdentifiersCaseSensitive(t *testing.T) {
	l := NewLexer("myRole MyRole")
	first := l.NextToken()
	second := l.NextToken()
	require.Equal(t, token.IDENT, first.Type)
	require.Equal(t, token.IDENT, second.Type)
	assert.Equal(t, "myRole", first.Literal)
	assert.Equal(t, "MyRole", second.Literal)
}

func TestLexerQuotedIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "`role`", want: "role"},
		{name: "colon inside", input: "`r:ole`", want: "r:ole"},
		{name: "spaces inside", input: "`my role`", want: "my role"},
		{name: "keyword inside", input: "`GRANT`", want: "GRANT"},
		{name: "empty", input: "``", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			tok := l.NextToken()
			require.Equal(t, token.IDENT, tok.Type)
			assert.Equal(t, tt.want, tok.Literal)
			require.NoError(t, errOrNil(l.Err()))
		})
	}
}

func TestLexerUnterminatedQuote(t *testing.T) {
	l := NewLexer("GRANT WRITE (*) ON GRAPH * TO `role")
	var last token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			last = tok
			break
		}
	}
	require.Equal(t, token.ILLEGAL, last.Type)

	err := l.Err()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unterminated backtick-quoted identifier")
	assert.Equal(t, 1, err.Pos.Line)
	assert.Equal(t, 31, err.Pos.Column)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer("'secret")
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.NotNil(t, l.Err())
	assert.Contains(t, l.Err().Error(), "unterminated string literal")
}

func TestLexerStringEscapedQuote(t *testing.T) {
	l := NewLexer("'it''s'")
	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "it's", tok.Literal)
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := NewLexer("ro:le")
	first := l.NextToken()
	second := l.NextToken()
	require.Equal(t, token.IDENT, first.Type)
	assert.Equal(t, "ro", first.Literal)
	assert.Equal(t, token.ILLEGAL, second.Type)
	assert.Equal(t, ":", second.Literal)
}

func TestLexerPositions(t *testing.T) {
	input := "GRANT\n  WRITE"
	l := NewLexer(input)

	grant := l.NextToken()
	assert.Equal(t, 1, grant.Pos.Line)
	assert.Equal(t, 1, grant.Pos.Column)
	assert.Equal(t, 0, grant.Pos.Offset)

	write := l.NextToken()
	assert.Equal(t, 2, write.Pos.Line)
	assert.Equal(t, 3, write.Pos.Column)
	assert.Equal(t, 8, write.Pos.Offset)
}

// errOrNil converts a typed nil-able error pointer into a plain error.
func errOrNil(err *LexError) error {
	if err == nil {
		return nil
	}
	return err
}
