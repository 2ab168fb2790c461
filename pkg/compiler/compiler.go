// Package compiler ties the pipeline together: parse, validate, lower.
// It is the entry point for callers that want plan nodes from command
// text without driving the stages themselves.
package compiler

import (
	"github.com/graphstack-labs/graphadmin/pkg/ast"
	"github.com/graphstack-labs/graphadmin/pkg/parser"
	"github.com/graphstack-labs/graphadmin/pkg/plan"
	"github.com/graphstack-labs/graphadmin/pkg/semantics"
)

// Compiler compiles administrative command text into logical plan
// nodes. The zero value is not usable; construct with New.
//
// A Compiler is safe for concurrent use on independent inputs: every
// stage is a pure function of its input, and the shared ID source is
// the only mutable state.
type Compiler struct {
	ids plan.IDSource
}

// New creates a Compiler drawing plan node identifiers from ids.
// Pass plan.NewCounter() unless the caller manages identity itself.
func New(ids plan.IDSource) *Compiler {
	return &Compiler{ids: ids}
}

// Compile compiles a single statement. The first lexical, syntax or
// semantic error aborts compilation; no partial plan is produced.
func (c *Compiler) Compile(input string) (plan.Node, error) {
	stmt, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return c.lower(stmt)
}

// CompileScript compiles a sequence of semicolon-separated statements.
// Statements are compiled in order; the first error aborts the run and
// no nodes are returned.
func (c *Compiler) CompileScript(input string) ([]plan.Node, error) {
	stmts, err := parser.ParseScript(input)
	if err != nil {
		return nil, err
	}
	nodes := make([]plan.Node, 0, len(stmts))
	for _, stmt := range stmts {
		node, err := c.lower(stmt)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (c *Compiler) lower(stmt ast.Statement) (plan.Node, error) {
	if err := semantics.Check(stmt); err != nil {
		return nil, err
	}
	return plan.Lower(stmt, c.ids)
}
