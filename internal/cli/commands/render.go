package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/graphstack-labs/graphadmin/pkg/plan"
	"github.com/graphstack-labs/graphadmin/pkg/token"
)

// planRow is the flattened form of a plan node used for rendering.
type planRow struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Details string `json:"details"`
}

// describeNode flattens a plan node into a renderable row.
func describeNode(node plan.Node) planRow {
	row := planRow{ID: int64(node.ID())}

	switch n := node.(type) {
	case *plan.Privilege:
		row.Kind = fmt.Sprintf("%s %s", n.Action, n.Privilege)
		row.Details = describePrivilege(n)
	case *plan.ShowUsers:
		row.Kind = "SHOW USERS"
	case *plan.CreateUser:
		row.Kind = "CREATE USER"
		details := []string{"user " + n.Name}
		if n.PasswordParam {
			details = append(details, "password $"+n.Password)
		} else {
			details = append(details, "password ***")
		}
		if !n.RequirePasswordChange {
			details = append(details, "change not required")
		}
		if n.Suspended {
			details = append(details, "suspended")
		}
		row.Details = strings.Join(details, ", ")
	case *plan.DropUser:
		row.Kind = "DROP USER"
		row.Details = "user " + n.Name
	case *plan.ShowRoles:
		row.Kind = "SHOW ROLES"
		var details []string
		if n.ShowAll {
			details = append(details, "all")
		}
		if n.WithUsers {
			details = append(details, "with users")
		}
		row.Details = strings.Join(details, ", ")
	case *plan.CreateRole:
		row.Kind = "CREATE ROLE"
		row.Details = "role " + n.Name
		if n.From != "" {
			row.Details += ", from " + n.From
		}
	case *plan.DropRole:
		row.Kind = "DROP ROLE"
		row.Details = "role " + n.Name
	case *plan.ShowDatabases:
		row.Kind = "SHOW DATABASES"
	case *plan.ShowDatabase:
		row.Kind = "SHOW DATABASE"
		row.Details = "database " + n.Name
	case *plan.CreateDatabase:
		row.Kind = "CREATE DATABASE"
		row.Details = "database " + n.Name
	case *plan.DropDatabase:
		row.Kind = "DROP DATABASE"
		row.Details = "database " + n.Name
	case *plan.StartDatabase:
		row.Kind = "START DATABASE"
		row.Details = "database " + n.Name
	case *plan.StopDatabase:
		row.Kind = "STOP DATABASE"
		row.Details = "database " + n.Name
	default:
		row.Kind = fmt.Sprintf("%T", node)
	}

	return row
}

func describePrivilege(n *plan.Privilege) string {
	resource := "all properties"
	if !n.Resource.AllProperties {
		resource = "properties " + strings.Join(n.Resource.Properties, ", ")
	}

	scope := "all graphs"
	if !n.Scope.AllGraphs {
		scope = "graph " + n.Scope.Graph
	}

	qualifier := "all elements"
	if n.Qualifier.Kind != plan.AllElements {
		qualifier = fmt.Sprintf("%s %s", n.Qualifier.Kind, n.Qualifier.Name)
	}

	return fmt.Sprintf("%s on %s, %s, roles %s",
		resource, scope, qualifier, strings.Join(n.Roles, ", "))
}

// renderPlan renders plan nodes in the requested format.
func renderPlan(w io.Writer, nodes []plan.Node, format string) error {
	rows := make([]planRow, len(nodes))
	for i, node := range nodes {
		rows[i] = describeNode(node)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "text":
		for _, row := range rows {
			if row.Details == "" {
				_, _ = fmt.Fprintf(w, "#%d %s\n", row.ID, row.Kind)
				continue
			}
			_, _ = fmt.Fprintf(w, "#%d %s: %s\n", row.ID, row.Kind, row.Details)
		}
		return nil
	default:
		return renderPlanTable(w, rows)
	}
}

func renderPlanTable(w io.Writer, rows []planRow) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 plans)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Plan", "Details"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.ID, row.Kind, row.Details})
	}
	t.Render()
	return nil
}

// tokenRow is the flattened form of a token used for rendering.
type tokenRow struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// renderTokens renders a token stream in the requested format.
func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	rows := make([]tokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = tokenRow{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "text":
		for _, row := range rows {
			_, _ = fmt.Fprintf(w, "%d:%d\t%s\t%q\n", row.Line, row.Column, row.Type, row.Literal)
		}
		return nil
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Type", "Literal", "Line", "Column"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Type, row.Literal, row.Line, row.Column})
		}
		t.Render()
		return nil
	}
}
