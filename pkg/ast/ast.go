// Package ast defines the abstract syntax tree for the administrative
// command language. Statements form a closed discriminated union: every
// consumer switches exhaustively over the variants, so adding a command
// kind is a compile-time-checked change at each consumer.
//
// Nodes are constructed once by the parser and never mutated afterwards.
package ast

import "github.com/graphstack-labs/graphadmin/pkg/token"

// Node is the base interface for all AST nodes.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() token.Position
	// End returns the position of the character immediately after the node.
	End() token.Position
}

// Statement is a marker interface for statement nodes.
type Statement interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// NodeInfo provides common position fields for AST nodes.
// Embed this in node types that need source-span tracking.
type NodeInfo struct {
	Span token.Span
}

// Pos implements Node.
func (n *NodeInfo) Pos() token.Position { return n.Span.Start }

// End implements Node.
func (n *NodeInfo) End() token.Position { return n.Span.End }
