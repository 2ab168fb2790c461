// Package plan defines the logical plan nodes produced from validated
// administrative statements, and the lowering that builds them.
//
// Plan nodes carry normalized fields: the executor consumes them
// as-is, without re-deriving intent from the statement text or
// re-checking grammar-level legality. Nodes are handed off by value
// and never alias the AST they were lowered from.
package plan

import "github.com/graphstack-labs/graphadmin/pkg/ast"

// Node is a logical plan node.
type Node interface {
	ID() NodeID
	planNode()
}

// Base provides the identifier common to all plan nodes.
type Base struct {
	NodeID NodeID
}

// ID returns the plan node identifier.
func (b Base) ID() NodeID { return b.NodeID }

// Resource is the normalized property set a privilege applies to.
type Resource struct {
	AllProperties bool
	Properties    []string // ordered, nil when AllProperties
}

// GraphScope is the normalized graph target of a privilege.
type GraphScope struct {
	AllGraphs bool
	Graph     string // empty when AllGraphs
}

// QualifierKind discriminates the normalized element qualifier.
type QualifierKind int

// Qualifier kinds.
const (
	AllElements QualifierKind = iota
	Elements
	Label
	RelType
)

// String returns the name of the qualifier kind.
func (k QualifierKind) String() string {
	switch k {
	case AllElements:
		return "all elements"
	case Elements:
		return "elements"
	case Label:
		return "label"
	case RelType:
		return "relationship type"
	default:
		return "qualifier(?)"
	}
}

// Qualifier is the normalized element restriction of a privilege.
type Qualifier struct {
	Kind QualifierKind
	Name string // label, type or element name; empty for AllElements
}

// Privilege is the plan node for GRANT/DENY/REVOKE of a privilege.
type Privilege struct {
	Base
	Action    ast.PrivilegeAction
	Privilege ast.PrivilegeType
	Resource  Resource
	Scope     GraphScope
	Qualifier Qualifier
	Roles     []string // non-empty, statement order preserved
}

func (*Privilege) planNode() {}

// ShowUsers is the plan node for SHOW USERS.
type ShowUsers struct {
	Base
}

func (*ShowUsers) planNode() {}

// CreateUser is the plan node for CREATE USER.
type CreateUser struct {
	Base
	Name                  string
	Password              string
	PasswordParam         bool
	RequirePasswordChange bool
	Suspended             bool
}

func (*CreateUser) planNode() {}

// DropUser is the plan node for DROP USER.
type DropUser struct {
	Base
	Name string
}

func (*DropUser) planNode() {}

// ShowRoles is the plan node for SHOW [ALL] ROLES [WITH USERS].
type ShowRoles struct {
	Base
	WithUsers bool
	ShowAll   bool
}

func (*ShowRoles) planNode() {}

// CreateRole is the plan node for CREATE ROLE [FROM source].
type CreateRole struct {
	Base
	Name string
	From string
}

func (*CreateRole) planNode() {}

// DropRole is the plan node for DROP ROLE.
type DropRole struct {
	Base
	Name string
}

func (*DropRole) planNode() {}

// ShowDatabases is the plan node for SHOW DATABASES.
type ShowDatabases struct {
	Base
}

func (*ShowDatabases) planNode() {}

// ShowDatabase is the plan node for SHOW DATABASE name.
type ShowDatabase struct {
	Base
	Name string
}

func (*ShowDatabase) planNode() {}

// CreateDatabase is the plan node for CREATE DATABASE.
type CreateDatabase struct {
	Base
	Name string
}

func (*CreateDatabase) planNode() {}

// DropDatabase is the plan node for DROP DATABASE.
type DropDatabase struct {
	Base
	Name string
}

func (*DropDatabase) planNode() {}

// StartDatabase is the plan node for START DATABASE.
type StartDatabase struct {
	Base
	Name string
}

func (*StartDatabase) planNode() {}

// StopDatabase is the plan node for STOP DATABASE.
type StopDatabase struct {
	Base
	Name string
}

func (*StopDatabase) planNode() {}
