package parser

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
	"github.com/graphstack-labs/graphadmin/pkg/token"
)

// parseShow parses the SHOW introspection commands:
//
//	SHOW USERS
//	SHOW [ALL] ROLES [WITH USERS]
//	SHOW DATABASES
//	SHOW DATABASE name
func (p *Parser) parseShow() ast.Statement {
	start := p.token.Pos
	p.nextToken() // SHOW

	switch p.token.Type {
	case token.USERS:
		p.nextToken()
		return &ast.ShowUsers{NodeInfo: ast.NodeInfo{Span: p.spanFrom(start)}}

	case token.ALL, token.ROLES:
		stmt := &ast.ShowRoles{}
		if p.match(token.ALL) {
			stmt.ShowAll = true
		}
		if !p.expect(token.ROLES) {
			return stmt
		}
		if p.match(token.WITH) {
			if !p.expect(token.USERS) {
				return stmt
			}
			stmt.WithUsers = true
		}
		stmt.Span = p.spanFrom(start)
		return stmt

	case token.DATABASES:
		p.nextToken()
		return &ast.ShowDatabases{NodeInfo: ast.NodeInfo{Span: p.spanFrom(start)}}

	case token.DATABASE:
		p.nextToken()
		stmt := &ast.ShowDatabase{}
		name, ok := p.parseName("database name")
		if !ok {
			return stmt
		}
		stmt.Name = name
		stmt.Span = p.spanFrom(start)
		return stmt

	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "USERS, ROLES, DATABASE or DATABASES")
		return nil
	}
}

// parseCreate parses CREATE USER, CREATE ROLE and CREATE DATABASE.
func (p *Parser) parseCreate() ast.Statement {
	start := p.token.Pos
	p.nextToken() // CREATE

	switch p.token.Type {
	case token.USER:
		p.nextToken()
		return p.parseCreateUser(start)

	case token.ROLE:
		p.nextToken()
		stmt := &ast.CreateRole{}
		name, ok := p.parseName("role name")
		if !ok {
			return stmt
		}
		stmt.Name = name
		if p.match(token.FROM) {
			from, ok := p.parseName("role name")
			if !ok {
				return stmt
			}
			stmt.From = from
		}
		stmt.Span = p.spanFrom(start)
		return stmt

	case token.DATABASE:
		p.nextToken()
		stmt := &ast.CreateDatabase{}
		name, ok := p.parseName("database name")
		if !ok {
			return stmt
		}
		stmt.Name = name
		stmt.Span = p.spanFrom(start)
		return stmt

	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "USER, ROLE or DATABASE")
		return nil
	}
}

// parseCreateUser parses the clauses after CREATE USER:
//
//	name SET PASSWORD (string|$param) [CHANGE [NOT] REQUIRED] [SET STATUS (ACTIVE|SUSPENDED)]
//
// The password-change requirement defaults to true when the CHANGE
// clause is omitted.
func (p *Parser) parseCreateUser(start token.Position) ast.Statement {
	stmt := &ast.CreateUser{RequirePasswordChange: true}

	name, ok := p.parseName("user name")
	if !ok {
		return stmt
	}
	stmt.Name = name

	if !p.expect(token.SET) || !p.expect(token.PASSWORD) {
		return stmt
	}
	switch p.token.Type {
	case token.STRING:
		stmt.Password = ast.Password{Value: p.token.Literal}
		p.nextToken()
	case token.PARAM:
		stmt.Password = ast.Password{Value: p.token.Literal, Param: true}
		p.nextToken()
	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "a password string or $parameter")
		return stmt
	}

	for {
		switch {
		case p.match(token.CHANGE):
			stmt.RequirePasswordChange = !p.match(token.NOT)
			if !p.expect(token.REQUIRED) {
				return stmt
			}
		case p.match(token.SET):
			if !p.expect(token.STATUS) {
				return stmt
			}
			switch p.token.Type {
			case token.ACTIVE:
				stmt.Suspended = false
			case token.SUSPENDED:
				stmt.Suspended = true
			default:
				p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "ACTIVE or SUSPENDED")
				return stmt
			}
			p.nextToken()
		default:
			stmt.Span = p.spanFrom(start)
			return stmt
		}
	}
}

// parseDrop parses DROP USER, DROP ROLE and DROP DATABASE.
func (p *Parser) parseDrop() ast.Statement {
	start := p.token.Pos
	p.nextToken() // DROP

	var kind token.TokenType
	switch p.token.Type {
	case token.USER, token.ROLE, token.DATABASE:
		kind = p.token.Type
		p.nextToken()
	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "USER, ROLE or DATABASE")
		return nil
	}

	what := map[token.TokenType]string{
		token.USER:     "user name",
		token.ROLE:     "role name",
		token.DATABASE: "database name",
	}[kind]
	name, ok := p.parseName(what)
	if !ok {
		return nil
	}

	info := ast.NodeInfo{Span: p.spanFrom(start)}
	switch kind {
	case token.USER:
		return &ast.DropUser{NodeInfo: info, Name: name}
	case token.ROLE:
		return &ast.DropRole{NodeInfo: info, Name: name}
	default:
		return &ast.DropDatabase{NodeInfo: info, Name: name}
	}
}

// parseStartStop parses START DATABASE and STOP DATABASE.
func (p *Parser) parseStartStop() ast.Statement {
	start := p.token.Pos
	stop := p.check(token.STOP)
	p.nextToken() // START or STOP

	if !p.expect(token.DATABASE) {
		return nil
	}
	name, ok := p.parseName("database name")
	if !ok {
		return nil
	}

	info := ast.NodeInfo{Span: p.spanFrom(start)}
	if stop {
		return &ast.StopDatabase{NodeInfo: info, Name: name}
	}
	return &ast.StartDatabase{NodeInfo: info, Name: name}
}
