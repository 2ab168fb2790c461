package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
)

// parsePrivilege is a test helper asserting the input parses to a
// privilege statement.
func parsePrivilege(t *testing.T, input string) *ast.PrivilegeStatement {
	t.Helper()
	stmt, err := Parse(input)
	require.NoError(t, err, "input: %s", input)
	priv, ok := stmt.(*ast.PrivilegeStatement)
	require.True(t, ok, "expected *ast.PrivilegeStatement, got %T", stmt)
	return priv
}

func TestParsePrivilegeBasic(t *testing.T) {
	stmt := parsePrivilege(t, "GRANT WRITE (*) ON GRAPH foo ELEMENT * TO role")

	assert.Equal(t, ast.ActionGrant, stmt.Action)
	assert.Equal(t, ast.PrivilegeWrite, stmt.Privilege)
	assert.Equal(t, ast.AllResource{}, stmt.Resource)
	assert.Equal(t, ast.NamedGraphScope{Name: "foo"}, stmt.Scope)
	assert.Equal(t, ast.AllQualifier{}, stmt.Qualifier)
	assert.Equal(t, []ast.RoleRef{"role"}, stmt.Roles)
}

// Each action crossed with each graph-keyword synonym and scope target
// must produce the matching AST regardless of the surface combination.
func TestParsePrivilegeActionScopeCrossProduct(t *testing.T) {
	actions := map[string]ast.PrivilegeAction{
		"GRANT":  ast.ActionGrant,
		"DENY":   ast.ActionDeny,
		"REVOKE": ast.ActionRevoke,
	}
	scopeKeywords := []string{"GRAPH", "GRAPHS"}
	scopes := map[string]ast.GraphScope{
		"*":   ast.AllGraphsScope{},
		"foo": ast.NamedGraphScope{Name: "foo"},
	}

	for actionKw, action := range actions {
		preposition := "TO"
		if action == ast.ActionRevoke {
			preposition = "FROM"
		}
		for _, scopeKw := range scopeKeywords {
			for target, scope := range scopes {
				input := fmt.Sprintf("%s WRITE (*) ON %s %s %s admin", actionKw, scopeKw, target, preposition)
				t.Run(input, func(t *testing.T) {
					stmt := parsePrivilege(t, input)
					assert.Equal(t, action, stmt.Action)
					assert.Equal(t, scope, stmt.Scope)
					assert.Equal(t, ast.AllQualifier{}, stmt.Qualifier)
					assert.Equal(t, []ast.RoleRef{"admin"}, stmt.Roles)
				})
			}
		}
	}
}

// The explicit wildcard element clause, with or without the trailing
// "(*)" sub-qualifier, and the omitted clause are structurally
// identical.
func TestParsePrivilegeQualifierDefaultEquivalence(t *testing.T) {
	elementForms := []string{"", "ELEMENT *", "ELEMENTS *", "ELEMENT * (*)", "ELEMENTS * (*)"}
	scopeForms := []string{"GRAPH *", "GRAPH foo", "GRAPHS *", "GRAPHS foo"}

	for _, scope := range scopeForms {
		baseline := parsePrivilege(t, fmt.Sprintf("GRANT WRITE (*) ON %s TO role", scope))
		require.Equal(t, ast.AllQualifier{}, baseline.Qualifier)

		for _, element := range elementForms {
			input := fmt.Sprintf("GRANT WRITE (*) ON %s %s TO role", scope, element)
			t.Run(input, func(t *testing.T) {
				stmt := parsePrivilege(t, input)
				assert.Equal(t, baseline.Qualifier, stmt.Qualifier)
				assert.Equal(t, baseline.Scope, stmt.Scope)
				assert.Equal(t, baseline.Resource, stmt.Resource)
				assert.Equal(t, baseline.Roles, stmt.Roles)
			})
		}
	}
}

func TestParsePrivilegeReadResources(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Resource
	}{
		{
			name:  "wildcard",
			input: "GRANT READ (*) ON GRAPH foo TO role",
			want:  ast.AllResource{},
		},
		{
			name:  "single property",
			input: "GRANT READ (name) ON GRAPH foo TO role",
			want:  ast.PropertiesResource{Properties: []string{"name"}},
		},
		{
			name:  "property list keeps order",
			input: "GRANT READ (name, age, email) ON GRAPH foo TO role",
			want:  ast.PropertiesResource{Properties: []string{"name", "age", "email"}},
		},
		{
			name:  "quoted property",
			input: "GRANT MATCH (`weird prop`) ON GRAPH foo TO role",
			want:  ast.PropertiesResource{Properties: []string{"weird prop"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parsePrivilege(t, tt.input)
			assert.Equal(t, tt.want, stmt.Resource)
		})
	}
}

func TestParsePrivilegeTraverseTakesNoResource(t *testing.T) {
	stmt := parsePrivilege(t, "GRANT TRAVERSE ON GRAPH foo NODES Person TO role")
	assert.Equal(t, ast.PrivilegeTraverse, stmt.Privilege)
	assert.Equal(t, ast.AllResource{}, stmt.Resource)
	assert.Equal(t, ast.LabelQualifier{Label: "Person"}, stmt.Qualifier)
}

func TestParsePrivilegeQualifierVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Qualifier
	}{
		{
			name:  "elements with name",
			input: "GRANT READ (*) ON GRAPH foo ELEMENTS Thing TO role",
			want:  ast.ElementsQualifier{Name: "Thing"},
		},
		{
			name:  "singular element with name",
			input: "GRANT READ (*) ON GRAPH foo ELEMENT Thing TO role",
			want:  ast.ElementsQualifier{Name: "Thing"},
		},
		{
			name:  "node label",
			input: "GRANT READ (*) ON GRAPH foo NODES Person TO role",
			want:  ast.LabelQualifier{Label: "Person"},
		},
		{
			name:  "singular node label",
			input: "GRANT READ (*) ON GRAPH foo NODE Person TO role",
			want:  ast.LabelQualifier{Label: "Person"},
		},
		{
			name:  "relationship type",
			input: "GRANT READ (*) ON GRAPH foo RELATIONSHIPS KNOWS TO role",
			want:  ast.RelTypeQualifier{RelType: "KNOWS"},
		},
		{
			name:  "node wildcard",
			input: "GRANT READ (*) ON GRAPH foo NODES * TO role",
			want:  ast.AllQualifier{},
		},
		{
			name:  "relationship wildcard with sub-qualifier",
			input: "GRANT READ (*) ON GRAPH foo RELATIONSHIPS * (*) TO role",
			want:  ast.AllQualifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parsePrivilege(t, tt.input)
			assert.Equal(t, tt.want, stmt.Qualifier)
		})
	}
}

func TestParsePrivilegeRoleList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.RoleRef
	}{
		{
			name:  "single role",
			input: "GRANT WRITE (*) ON GRAPH * TO admin",
			want:  []ast.RoleRef{"admin"},
		},
		{
			name:  "multiple roles keep order",
			input: "GRANT WRITE (*) ON GRAPH * TO admin, operator, reader",
			want:  []ast.RoleRef{"admin", "operator", "reader"},
		},
		{
			name:  "quoted role with colon",
			input: "REVOKE WRITE (*) ON GRAPH * ELEMENT * FROM `r:ole`",
			want:  []ast.RoleRef{"r:ole"},
		},
		{
			name:  "mixed quoted and bare",
			input: "GRANT WRITE (*) ON GRAPH * TO `first role`, second",
			want:  []ast.RoleRef{"first role", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parsePrivilege(t, tt.input)
			assert.Equal(t, tt.want, stmt.Roles)
		})
	}
}

func TestParsePrivilegeSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "missing resource clause",
			input:   "GRANT WRITE ON GRAPH * ELEMENT * TO role",
			wantMsg: "expected (",
		},
		{
			name:    "missing ON",
			input:   "GRANT WRITE (*) GRAPH * TO role",
			wantMsg: "expected ON",
		},
		{
			name:    "missing role list",
			input:   "GRANT WRITE (*) ON GRAPH * TO",
			wantMsg: "expected role name",
		},
		{
			name:    "multiple graph names",
			input:   "GRANT WRITE (*) ON GRAPH foo, baz ELEMENT * (*) TO role",
			wantMsg: "multiple graph names are not allowed",
		},
		{
			name:    "revoke with TO",
			input:   "REVOKE WRITE (*) ON GRAPH * TO role",
			wantMsg: "REVOKE uses FROM",
		},
		{
			name:    "grant with FROM",
			input:   "GRANT WRITE (*) ON GRAPH * FROM role",
			wantMsg: "GRANT uses TO",
		},
		{
			name:    "missing preposition",
			input:   "GRANT WRITE (*) ON GRAPH * role",
			wantMsg: "expected TO",
		},
		{
			name:    "unknown privilege",
			input:   "GRANT DELETE (*) ON GRAPH * TO role",
			wantMsg: "expected a privilege",
		},
		{
			name:    "unquoted colon in role name",
			input:   "GRANT WRITE (*) ON GRAPH * TO r:ole",
			wantMsg: "unexpected character \":\"",
		},
		{
			name:    "unterminated quoted role",
			input:   "GRANT WRITE (*) ON GRAPH * TO `role",
			wantMsg: "unterminated backtick-quoted identifier",
		},
		{
			name:    "trailing garbage",
			input:   "GRANT WRITE (*) ON GRAPH * TO role role2",
			wantMsg: "expected end of statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// Each mandatory clause must independently cause failure when omitted:
// restoring only the missing clause (holding the others fixed) turns
// the failure into a success.
func TestParsePrivilegeMissingClauseIsolation(t *testing.T) {
	complete := "GRANT WRITE (*) ON GRAPH * TO role"
	broken := []string{
		"GRANT WRITE ON GRAPH * TO role",  // no resource
		"GRANT WRITE (*) GRAPH * TO role", // no ON
		"GRANT WRITE (*) ON GRAPH * TO",   // no role list
	}

	_, err := Parse(complete)
	require.NoError(t, err)

	for _, input := range broken {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestParsePrivilegeSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("GRANT WRITE (*) GRAPH * TO role")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 1, synErr.Pos.Line)
	assert.Equal(t, 17, synErr.Pos.Column)
	assert.Equal(t, "ON", synErr.Expected)
}

func TestParsePrivilegeTrailingSemicolon(t *testing.T) {
	stmt := parsePrivilege(t, "GRANT WRITE (*) ON GRAPH foo TO role;")
	assert.Equal(t, ast.NamedGraphScope{Name: "foo"}, stmt.Scope)
}
