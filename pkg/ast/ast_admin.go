package ast

// ---------- Administrative Command Types ----------

// Password is the initial password of a new user: either a literal
// string or a parameter reference ($secret) resolved at execution time.
type Password struct {
	Value string
	Param bool
}

// ShowUsers represents SHOW USERS.
type ShowUsers struct {
	NodeInfo
}

func (*ShowUsers) stmtNode() {}

// CreateUser represents CREATE USER name SET PASSWORD ...
// with optional CHANGE [NOT] REQUIRED and SET STATUS clauses.
type CreateUser struct {
	NodeInfo
	Name                  string
	Password              Password
	RequirePasswordChange bool // default true
	Suspended             bool
}

func (*CreateUser) stmtNode() {}

// DropUser represents DROP USER name.
type DropUser struct {
	NodeInfo
	Name string
}

func (*DropUser) stmtNode() {}

// ShowRoles represents SHOW [ALL] ROLES [WITH USERS].
type ShowRoles struct {
	NodeInfo
	WithUsers bool
	ShowAll   bool // explicit ALL keyword
}

func (*ShowRoles) stmtNode() {}

// CreateRole represents CREATE ROLE name [FROM source].
type CreateRole struct {
	NodeInfo
	Name string
	From string // empty when no FROM clause
}

func (*CreateRole) stmtNode() {}

// DropRole represents DROP ROLE name.
type DropRole struct {
	NodeInfo
	Name string
}

func (*DropRole) stmtNode() {}

// ShowDatabases represents SHOW DATABASES.
type ShowDatabases struct {
	NodeInfo
}

func (*ShowDatabases) stmtNode() {}

// ShowDatabase represents SHOW DATABASE name.
type ShowDatabase struct {
	NodeInfo
	Name string
}

func (*ShowDatabase) stmtNode() {}

// CreateDatabase represents CREATE DATABASE name.
type CreateDatabase struct {
	NodeInfo
	Name string
}

func (*CreateDatabase) stmtNode() {}

// DropDatabase represents DROP DATABASE name.
type DropDatabase struct {
	NodeInfo
	Name string
}

func (*DropDatabase) stmtNode() {}

// StartDatabase represents START DATABASE name.
type StartDatabase struct {
	NodeInfo
	Name string
}

func (*StartDatabase) stmtNode() {}

// StopDatabase represents STOP DATABASE name.
type StopDatabase struct {
	NodeInfo
	Name string
}

func (*StopDatabase) stmtNode() {}
