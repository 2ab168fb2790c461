// Package token defines the lexical tokens of the administrative
// command language (privilege statements and database/role/user
// management commands).
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // bare or `backtick-quoted` name
	STRING // 'secret'
	PARAM  // $password

	// Punctuation
	STAR      // *
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	SEMICOLON // ;

	// Keywords (alphabetical)
	ACTIVE
	ALL
	CHANGE
	CREATE
	DATABASE
	DATABASES
	DENY
	DROP
	ELEMENT
	ELEMENTS
	FROM
	GRANT
	GRAPH
	GRAPHS
	MATCH
	NODE
	NODES
	NOT
	ON
	PASSWORD
	READ
	RELATIONSHIP
	RELATIONSHIPS
	REQUIRED
	REVOKE
	ROLE
	ROLES
	SET
	SHOW
	START
	STATUS
	STOP
	SUSPENDED
	TO
	TRAVERSE
	USER
	USERS
	WITH
	WRITE
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	STRING: "STRING",
	PARAM:  "PARAM",

	STAR:      "*",
	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	SEMICOLON: ";",

	ACTIVE:        "ACTIVE",
	ALL:           "ALL",
	CHANGE:        "CHANGE",
	CREATE:        "CREATE",
	DATABASE:      "DATABASE",
	DATABASES:     "DATABASES",
	DENY:          "DENY",
	DROP:          "DROP",
	ELEMENT:       "ELEMENT",
	ELEMENTS:      "ELEMENTS",
	FROM:          "FROM",
	GRANT:         "GRANT",
	GRAPH:         "GRAPH",
	GRAPHS:        "GRAPHS",
	MATCH:         "MATCH",
	NODE:          "NODE",
	NODES:         "NODES",
	NOT:           "NOT",
	ON:            "ON",
	PASSWORD:      "PASSWORD",
	READ:          "READ",
	RELATIONSHIP:  "RELATIONSHIP",
	RELATIONSHIPS: "RELATIONSHIPS",
	REQUIRED:      "REQUIRED",
	REVOKE:        "REVOKE",
	ROLE:          "ROLE",
	ROLES:         "ROLES",
	SET:           "SET",
	SHOW:          "SHOW",
	START:         "START",
	STATUS:        "STATUS",
	STOP:          "STOP",
	SUSPENDED:     "SUSPENDED",
	TO:            "TO",
	TRAVERSE:      "TRAVERSE",
	USER:          "USER",
	USERS:         "USERS",
	WITH:          "WITH",
	WRITE:         "WRITE",
}

// keywords maps lowercase keyword strings to their token types.
// Keyword matching is case-insensitive; identifiers are case-sensitive.
var keywords = map[string]TokenType{
	"active":        ACTIVE,
	"all":           ALL,
	"change":        CHANGE,
	"create":        CREATE,
	"database":      DATABASE,
	"databases":     DATABASES,
	"deny":          DENY,
	"drop":          DROP,
	"element":       ELEMENT,
	"elements":      ELEMENTS,
	"from":          FROM,
	"grant":         GRANT,
	"graph":         GRAPH,
	"graphs":        GRAPHS,
	"match":         MATCH,
	"node":          NODE,
	"nodes":         NODES,
	"not":           NOT,
	"on":            ON,
	"password":      PASSWORD,
	"read":          READ,
	"relationship":  RELATIONSHIP,
	"relationships": RELATIONSHIPS,
	"required":      REQUIRED,
	"revoke":        REVOKE,
	"role":          ROLE,
	"roles":         ROLES,
	"set":           SET,
	"show":          SHOW,
	"start":         START,
	"status":        STATUS,
	"stop":          STOP,
	"suspended":     SUSPENDED,
	"to":            TO,
	"traverse":      TRAVERSE,
	"user":          USER,
	"users":         USERS,
	"with":          WITH,
	"write":         WRITE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword (compared case-insensitively by the
// caller passing a lowercase form), the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= ACTIVE && t <= WRITE
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
