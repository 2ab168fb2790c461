// Package semantics validates parsed administrative statements.
//
// The checks here cover structural legality the grammar alone cannot
// express, such as which resource and qualifier combinations a
// privilege supports. Validation is pure and total: it reads the
// statement, never rewrites it, and performs no catalog lookups (role
// and database existence is the executor's concern).
package semantics

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
)

// SemanticError reports a grammatically valid but disallowed
// combination. Field names the offending statement field.
type SemanticError struct {
	Field   string
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error in %s: %s", e.Field, e.Message)
}

// Check validates a statement, returning the first violation found.
// Statements built programmatically get the same checks as parsed ones.
func Check(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.PrivilegeStatement:
		return checkPrivilege(s)
	default:
		return nil
	}
}

// checkPrivilege enforces the privilege combination rules. WRITE is
// currently all-or-nothing: it cannot be scoped to a property list or
// to a subset of graph elements.
func checkPrivilege(s *ast.PrivilegeStatement) error {
	if s.Privilege == ast.PrivilegeWrite {
		if _, ok := s.Resource.(ast.AllResource); !ok {
			return &SemanticError{
				Field:   "resource",
				Message: "write privilege does not yet support property-scoped resources",
			}
		}
		if _, ok := s.Qualifier.(ast.AllQualifier); !ok {
			return &SemanticError{
				Field:   "qualifier",
				Message: "write privilege does not yet support element-scoped qualifiers",
			}
		}
	}
	if len(s.Roles) == 0 {
		return &SemanticError{
			Field:   "roles",
			Message: "privilege statement must name at least one role",
		}
	}
	return nil
}
