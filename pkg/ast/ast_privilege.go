package ast

// ---------- Privilege Statement Types ----------

// PrivilegeAction is what a privilege statement does with a privilege.
type PrivilegeAction int

// Privilege actions.
const (
	ActionGrant PrivilegeAction = iota
	ActionDeny
	ActionRevoke
)

// String returns the keyword form of the action.
func (a PrivilegeAction) String() string {
	switch a {
	case ActionGrant:
		return "GRANT"
	case ActionDeny:
		return "DENY"
	case ActionRevoke:
		return "REVOKE"
	default:
		return "ACTION(?)"
	}
}

// PrivilegeType is the kind of privilege being granted, denied or revoked.
type PrivilegeType int

// Privilege types.
const (
	PrivilegeWrite PrivilegeType = iota
	PrivilegeRead
	PrivilegeMatch
	PrivilegeTraverse
)

// String returns the keyword form of the privilege type.
func (p PrivilegeType) String() string {
	switch p {
	case PrivilegeWrite:
		return "WRITE"
	case PrivilegeRead:
		return "READ"
	case PrivilegeMatch:
		return "MATCH"
	case PrivilegeTraverse:
		return "TRAVERSE"
	default:
		return "PRIVILEGE(?)"
	}
}

// Resource is the property set a privilege applies to.
type Resource interface {
	resourceNode()
}

// AllResource applies the privilege to all properties: WRITE (*).
type AllResource struct{}

func (AllResource) resourceNode() {}

// PropertiesResource applies the privilege to an explicit, ordered
// property list: READ (name, age).
type PropertiesResource struct {
	Properties []string
}

func (PropertiesResource) resourceNode() {}

// GraphScope is the graph a privilege statement applies to.
// Exactly one scope per statement; the grammar rejects lists.
type GraphScope interface {
	scopeNode()
}

// AllGraphsScope applies the privilege to every graph: ON GRAPHS *.
type AllGraphsScope struct{}

func (AllGraphsScope) scopeNode() {}

// NamedGraphScope applies the privilege to a single named graph.
type NamedGraphScope struct {
	Name string
}

func (NamedGraphScope) scopeNode() {}

// Qualifier restricts a privilege to a subset of graph elements.
// When the element clause is omitted, the qualifier is AllQualifier.
type Qualifier interface {
	qualifierNode()
}

// AllQualifier applies the privilege to all elements: ELEMENTS *.
type AllQualifier struct{}

func (AllQualifier) qualifierNode() {}

// ElementsQualifier restricts the privilege to elements (nodes or
// relationships) with the given label or type: ELEMENTS Foo.
type ElementsQualifier struct {
	Name string
}

func (ElementsQualifier) qualifierNode() {}

// LabelQualifier restricts the privilege to nodes with the given label:
// NODES Foo.
type LabelQualifier struct {
	Label string
}

func (LabelQualifier) qualifierNode() {}

// RelTypeQualifier restricts the privilege to relationships of the
// given type: RELATIONSHIPS KNOWS.
type RelTypeQualifier struct {
	RelType string
}

func (RelTypeQualifier) qualifierNode() {}

// RoleRef is a validated role name.
type RoleRef string

// PrivilegeStatement represents GRANT/DENY/REVOKE of a privilege on a
// graph scope to one or more roles.
type PrivilegeStatement struct {
	NodeInfo
	Action    PrivilegeAction
	Privilege PrivilegeType
	Resource  Resource
	Scope     GraphScope
	Qualifier Qualifier
	Roles     []RoleRef // non-empty, order significant
}

func (*PrivilegeStatement) stmtNode() {}
