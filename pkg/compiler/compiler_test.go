package compiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphstack-labs/graphadmin/pkg/ast"
	"github.com/graphstack-labs/graphadmin/pkg/parser"
	"github.com/graphstack-labs/graphadmin/pkg/plan"
	"github.com/graphstack-labs/graphadmin/pkg/semantics"
	"golang.org/x/sync/errgroup"
)

func TestCompileGrant(t *testing.T) {
	c := New(plan.NewCounter())

	node, err := c.Compile("GRANT WRITE (*) ON GRAPH foo ELEMENT * TO role")
	require.NoError(t, err)

	priv, ok := node.(*plan.Privilege)
	require.True(t, ok, "expected *plan.Privilege, got %T", node)
	assert.Equal(t, ast.ActionGrant, priv.Action)
	assert.Equal(t, ast.PrivilegeWrite, priv.Privilege)
	assert.Equal(t, plan.Resource{AllProperties: true}, priv.Resource)
	assert.Equal(t, plan.GraphScope{Graph: "foo"}, priv.Scope)
	assert.Equal(t, plan.Qualifier{Kind: plan.AllElements}, priv.Qualifier)
	assert.Equal(t, []string{"role"}, priv.Roles)
}

func TestCompileErrorKinds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		checkKind func(t *testing.T, err error)
	}{
		{
			name:  "lexical error",
			input: "GRANT WRITE (*) ON GRAPH * TO `role",
			checkKind: func(t *testing.T, err error) {
				var target *parser.LexError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "syntax error",
			input: "GRANT WRITE ON GRAPH * TO role",
			checkKind: func(t *testing.T, err error) {
				var target *parser.SyntaxError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "semantic error",
			input: "GRANT WRITE (*) ON GRAPH foo ELEMENT A TO role",
			checkKind: func(t *testing.T, err error) {
				var target *semantics.SemanticError
				assert.ErrorAs(t, err, &target)
			},
		},
	}

	c := New(plan.NewCounter())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := c.Compile(tt.input)
			require.Error(t, err)
			assert.Nil(t, node, "no partial plan on failure")
			tt.checkKind(t, err)
		})
	}
}

func TestCompileScript(t *testing.T) {
	c := New(plan.NewCounter())

	nodes, err := c.CompileScript(`
		CREATE DATABASE movies;
		CREATE ROLE reader;
		GRANT TRAVERSE ON GRAPH movies TO reader;
	`)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.IsType(t, &plan.CreateDatabase{}, nodes[0])
	assert.IsType(t, &plan.CreateRole{}, nodes[1])
	assert.IsType(t, &plan.Privilege{}, nodes[2])

	seen := map[plan.NodeID]bool{}
	for _, node := range nodes {
		assert.False(t, seen[node.ID()])
		seen[node.ID()] = true
	}
}

func TestCompileScriptFailsAsWhole(t *testing.T) {
	c := New(plan.NewCounter())

	nodes, err := c.CompileScript("CREATE DATABASE movies; GRANT WRITE (name) ON GRAPH * TO role")
	require.Error(t, err)
	assert.Nil(t, nodes)
}

func TestCompileDeterministic(t *testing.T) {
	c := New(plan.NewCounter())
	input := "GRANT WRITE ON GRAPH * TO role"

	first := func() string {
		_, err := c.Compile(input)
		require.Error(t, err)
		return err.Error()
	}()
	for i := 0; i < 3; i++ {
		_, err := c.Compile(input)
		require.Error(t, err)
		assert.Equal(t, first, err.Error())
	}
}

// Independent inputs may be compiled concurrently against one shared
// Compiler; the atomic ID source is the only shared state.
func TestCompileConcurrent(t *testing.T) {
	c := New(plan.NewCounter())

	var g errgroup.Group
	ids := make(chan plan.NodeID, 64)
	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			node, err := c.Compile(fmt.Sprintf("CREATE DATABASE db%d", i))
			if err != nil {
				return err
			}
			ids <- node.ID()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(ids)

	seen := map[plan.NodeID]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 64)
}
