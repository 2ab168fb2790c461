// Package parser parses administrative commands for the graph database:
// privilege statements (GRANT/DENY/REVOKE) and database, role and user
// management commands.
//
// # Usage
//
//	stmt, err := parser.Parse("GRANT WRITE (*) ON GRAPH foo TO admin")
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the command
// language:
//
//	statement      → privilege_stmt | admin_cmd [";"]
//	privilege_stmt → action privilege ON scope_kw scope_target
//	                 [qualifier_clause] (TO|FROM) role_list
//	action         → GRANT | DENY | REVOKE
//	admin_cmd      → SHOW ... | CREATE ... | DROP ... | START ... | STOP ...
//
// See each file for detailed grammar rules for that section.
//
// Parsing is a pure function of its input: no shared mutable state, so
// independent inputs may be parsed concurrently.
package parser

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
	"github.com/graphstack-labs/graphadmin/pkg/token"
)

// Parser parses command text into an AST.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given command text.
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a single statement and returns the AST.
// A trailing semicolon is permitted; anything else after the statement
// is an error.
func Parse(input string) (ast.Statement, error) {
	p := NewParser(input)
	stmt := p.parseStatement()
	p.match(token.SEMICOLON)
	if !p.check(token.EOF) {
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "end of statement")
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

// ParseScript parses a sequence of semicolon-separated statements.
func ParseScript(input string) ([]ast.Statement, error) {
	p := NewParser(input)

	var stmts []ast.Statement
	for !p.check(token.EOF) {
		if p.match(token.SEMICOLON) {
			continue
		}
		stmt := p.parseStatement()
		if len(p.errors) > 0 {
			return nil, p.errors[0]
		}
		stmts = append(stmts, stmt)
		if !p.check(token.EOF) && !p.match(token.SEMICOLON) {
			p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), ";")
			return nil, p.errors[0]
		}
	}
	return stmts, nil
}

// parseStatement dispatches on the leading keyword.
func (p *Parser) parseStatement() ast.Statement {
	switch p.token.Type {
	case token.GRANT, token.DENY, token.REVOKE:
		return p.parsePrivilegeStatement()
	case token.SHOW:
		return p.parseShow()
	case token.CREATE:
		return p.parseCreate()
	case token.DROP:
		return p.parseDrop()
	case token.START, token.STOP:
		return p.parseStartStop()
	default:
		p.addError(fmt.Sprintf("unrecognized command starting with %s", p.describeToken(p.token)))
		return nil
	}
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. The first time an ILLEGAL
// token becomes current, the underlying lexical error (or an
// unexpected-character error) is recorded.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()

	if p.token.Type == token.ILLEGAL {
		if lexErr := p.lexer.Err(); lexErr != nil {
			p.errors = append(p.errors, lexErr)
		} else {
			p.errors = append(p.errors, &SyntaxError{
				Pos:     p.token.Pos,
				Message: fmt.Sprintf("unexpected character %q", p.token.Literal),
			})
		}
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an
// error with the expected token as a hint.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), t.String())
	return false
}

// parseName consumes an identifier (bare or backtick-quoted) and
// returns its value. The what argument names the identifier's role in
// the grammar for diagnostics ("role name", "database name", ...).
func (p *Parser) parseName(what string) (string, bool) {
	if p.check(token.IDENT) {
		name := p.token.Literal
		p.nextToken()
		return name, true
	}
	p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), what)
	return "", false
}

// describeToken renders a token for diagnostics, quoting identifiers.
func (p *Parser) describeToken(tok token.Token) string {
	switch tok.Type {
	case token.IDENT:
		return fmt.Sprintf("%q", tok.Literal)
	case token.EOF:
		return "end of input"
	default:
		return tok.Type.String()
	}
}

// addError adds a syntax error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &SyntaxError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// errorExpected adds a syntax error with an expected-token hint.
func (p *Parser) errorExpected(msg, expected string) {
	p.errors = append(p.errors, &SyntaxError{
		Pos:      p.token.Pos,
		Message:  msg,
		Expected: expected,
	})
}

// spanFrom builds a span from a start position to the current token.
func (p *Parser) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: p.token.Pos}
}
