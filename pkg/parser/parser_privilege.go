package parser

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
	"github.com/graphstack-labs/graphadmin/pkg/token"
)

// parsePrivilegeStatement parses GRANT/DENY/REVOKE of a privilege.
//
//	privilege_stmt → action privilege ON (GRAPH|GRAPHS) ("*"|name)
//	                 [element_clause] (TO|FROM) role_list
//	privilege      → (WRITE|READ|MATCH) "(" resource ")" | TRAVERSE
//	resource       → "*" | prop ("," prop)*
//	element_clause → element_kw ("*"|name) ["(" "*" ")"]
//	role_list      → name ("," name)*
//
// GRANT and DENY take TO, REVOKE takes FROM. Exactly one graph per
// statement; a comma after the graph target is rejected here rather
// than at the next clause so the diagnostic names the actual mistake.
func (p *Parser) parsePrivilegeStatement() ast.Statement {
	start := p.token.Pos

	var action ast.PrivilegeAction
	switch p.token.Type {
	case token.GRANT:
		action = ast.ActionGrant
	case token.DENY:
		action = ast.ActionDeny
	case token.REVOKE:
		action = ast.ActionRevoke
	}
	p.nextToken()

	stmt := &ast.PrivilegeStatement{
		Action:    action,
		Resource:  ast.AllResource{},
		Scope:     ast.AllGraphsScope{},
		Qualifier: ast.AllQualifier{},
	}

	// Privilege keyword and, except for TRAVERSE, the mandatory
	// parenthesized resource. WRITE without "(...)" is a syntax error,
	// never an implicit all-resource grant.
	switch p.token.Type {
	case token.WRITE:
		stmt.Privilege = ast.PrivilegeWrite
		p.nextToken()
		stmt.Resource = p.parseResource()
	case token.READ:
		stmt.Privilege = ast.PrivilegeRead
		p.nextToken()
		stmt.Resource = p.parseResource()
	case token.MATCH:
		stmt.Privilege = ast.PrivilegeMatch
		p.nextToken()
		stmt.Resource = p.parseResource()
	case token.TRAVERSE:
		stmt.Privilege = ast.PrivilegeTraverse
		p.nextToken()
	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "a privilege (WRITE, READ, MATCH or TRAVERSE)")
		return stmt
	}

	if !p.expect(token.ON) {
		return stmt
	}
	if !p.check(token.GRAPH) && !p.check(token.GRAPHS) {
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "GRAPH or GRAPHS")
		return stmt
	}
	p.nextToken()
	stmt.Scope = p.parseGraphScope()

	if isElementKeyword(p.token.Type) {
		stmt.Qualifier = p.parseQualifierClause()
	}

	// Preposition is tied to the action.
	required := token.TO
	if action == ast.ActionRevoke {
		required = token.FROM
	}
	if p.check(token.TO) || p.check(token.FROM) {
		if !p.check(required) {
			p.errorExpected(fmt.Sprintf("%s uses %s", action, required), required.String())
			return stmt
		}
		p.nextToken()
	} else {
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), required.String())
		return stmt
	}

	stmt.Roles = p.parseRoleList()
	stmt.Span = p.spanFrom(start)
	return stmt
}

// parseResource parses the parenthesized resource after a privilege
// keyword: "(" ("*" | prop ("," prop)*) ")".
func (p *Parser) parseResource() ast.Resource {
	if !p.expect(token.LPAREN) {
		return ast.AllResource{}
	}
	if p.match(token.STAR) {
		p.expect(token.RPAREN)
		return ast.AllResource{}
	}

	var props []string
	for {
		prop, ok := p.parseName("property name")
		if !ok {
			return ast.AllResource{}
		}
		props = append(props, prop)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return ast.PropertiesResource{Properties: props}
}

// parseGraphScope parses the scope target after GRAPH/GRAPHS.
// Exactly one graph: a comma here is a syntax error, not a list.
func (p *Parser) parseGraphScope() ast.GraphScope {
	var scope ast.GraphScope
	switch {
	case p.match(token.STAR):
		scope = ast.AllGraphsScope{}
	case p.check(token.IDENT):
		scope = ast.NamedGraphScope{Name: p.token.Literal}
		p.nextToken()
	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "* or a graph name")
		return ast.AllGraphsScope{}
	}

	if p.check(token.COMMA) {
		p.addError("a privilege applies to exactly one graph; multiple graph names are not allowed")
	}
	return scope
}

// parseQualifierClause parses the optional element clause:
// element_kw ("*"|name) ["(" "*" ")"]. The trailing "(*)" is a
// no-op property sub-qualifier kept for compatibility.
func (p *Parser) parseQualifierClause() ast.Qualifier {
	kw := p.token.Type
	p.nextToken()

	var qual ast.Qualifier
	switch {
	case p.match(token.STAR):
		qual = ast.AllQualifier{}
	case p.check(token.IDENT):
		name := p.token.Literal
		p.nextToken()
		switch kw {
		case token.NODE, token.NODES:
			qual = ast.LabelQualifier{Label: name}
		case token.RELATIONSHIP, token.RELATIONSHIPS:
			qual = ast.RelTypeQualifier{RelType: name}
		default:
			qual = ast.ElementsQualifier{Name: name}
		}
	default:
		p.errorExpected(fmt.Sprintf(errUnexpectedToken, p.describeToken(p.token)), "* or an element name")
		return ast.AllQualifier{}
	}

	if p.match(token.LPAREN) {
		p.expect(token.STAR)
		p.expect(token.RPAREN)
	}
	return qual
}

// parseRoleList parses one or more comma-separated role names.
func (p *Parser) parseRoleList() []ast.RoleRef {
	var roles []ast.RoleRef
	for {
		name, ok := p.parseName("role name")
		if !ok {
			return roles
		}
		roles = append(roles, ast.RoleRef(name))
		if !p.match(token.COMMA) {
			return roles
		}
	}
}

// isElementKeyword reports whether t starts an element clause.
func isElementKeyword(t token.TokenType) bool {
	switch t {
	case token.ELEMENT, token.ELEMENTS, token.NODE, token.NODES, token.RELATIONSHIP, token.RELATIONSHIPS:
		return true
	}
	return false
}
