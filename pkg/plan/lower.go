package plan

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
)

// Lower builds the logical plan node for a validated statement.
//
// Lowering is a purely structural transform: it performs no semantic
// re-validation, preserves role and property order, and copies every
// slice so the plan never aliases the AST. Each node gets a fresh
// identifier from ids.
func Lower(stmt ast.Statement, ids IDSource) (Node, error) {
	if stmt == nil {
		return nil, fmt.Errorf("cannot lower a nil statement")
	}

	base := Base{NodeID: ids.NextID()}

	switch s := stmt.(type) {
	case *ast.PrivilegeStatement:
		return lowerPrivilege(s, base), nil
	case *ast.ShowUsers:
		return &ShowUsers{Base: base}, nil
	case *ast.CreateUser:
		return &CreateUser{
			Base:                  base,
			Name:                  s.Name,
			Password:              s.Password.Value,
			PasswordParam:         s.Password.Param,
			RequirePasswordChange: s.RequirePasswordChange,
			Suspended:             s.Suspended,
		}, nil
	case *ast.DropUser:
		return &DropUser{Base: base, Name: s.Name}, nil
	case *ast.ShowRoles:
		return &ShowRoles{Base: base, WithUsers: s.WithUsers, ShowAll: s.ShowAll}, nil
	case *ast.CreateRole:
		return &CreateRole{Base: base, Name: s.Name, From: s.From}, nil
	case *ast.DropRole:
		return &DropRole{Base: base, Name: s.Name}, nil
	case *ast.ShowDatabases:
		return &ShowDatabases{Base: base}, nil
	case *ast.ShowDatabase:
		return &ShowDatabase{Base: base, Name: s.Name}, nil
	case *ast.CreateDatabase:
		return &CreateDatabase{Base: base, Name: s.Name}, nil
	case *ast.DropDatabase:
		return &DropDatabase{Base: base, Name: s.Name}, nil
	case *ast.StartDatabase:
		return &StartDatabase{Base: base, Name: s.Name}, nil
	case *ast.StopDatabase:
		return &StopDatabase{Base: base, Name: s.Name}, nil
	default:
		return nil, fmt.Errorf("cannot lower statement type %T", stmt)
	}
}

func lowerPrivilege(s *ast.PrivilegeStatement, base Base) *Privilege {
	node := &Privilege{
		Base:      base,
		Action:    s.Action,
		Privilege: s.Privilege,
		Roles:     make([]string, len(s.Roles)),
	}
	for i, role := range s.Roles {
		node.Roles[i] = string(role)
	}

	switch r := s.Resource.(type) {
	case ast.AllResource:
		node.Resource = Resource{AllProperties: true}
	case ast.PropertiesResource:
		props := make([]string, len(r.Properties))
		copy(props, r.Properties)
		node.Resource = Resource{Properties: props}
	}

	switch sc := s.Scope.(type) {
	case ast.AllGraphsScope:
		node.Scope = GraphScope{AllGraphs: true}
	case ast.NamedGraphScope:
		node.Scope = GraphScope{Graph: sc.Name}
	}

	switch q := s.Qualifier.(type) {
	case ast.AllQualifier:
		node.Qualifier = Qualifier{Kind: AllElements}
	case ast.ElementsQualifier:
		node.Qualifier = Qualifier{Kind: Elements, Name: q.Name}
	case ast.LabelQualifier:
		node.Qualifier = Qualifier{Kind: Label, Name: q.Label}
	case ast.RelTypeQualifier:
		node.Qualifier = Qualifier{Kind: RelType, Name: q.RelType}
	}

	return node
}
