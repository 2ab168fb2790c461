// Package commands implements the graphadmin subcommands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/graphstack-labs/graphadmin/internal/cli/config"
	"github.com/graphstack-labs/graphadmin/pkg/compiler"
	"github.com/graphstack-labs/graphadmin/pkg/plan"
)

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	Expression string // Inline statement instead of files
	Format     string // Output format: table, json, text
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}
	cmd := &cobra.Command{
		Use:   "compile [file...]",
		Short: "Compile administrative commands into logical plans",
		Long: `Compile administrative command scripts into logical plan nodes.

Each file is a sequence of semicolon-separated statements. Files are
compiled independently and in parallel; plan output keeps the file
argument order. With -e, a single inline statement is compiled instead.`,
		Example: `  # Compile an inline statement
  graphadmin compile -e "GRANT WRITE (*) ON GRAPH movies TO admin"

  # Compile scripts
  graphadmin compile setup.gadm grants.gadm

  # JSON output
  graphadmin compile -e "SHOW DATABASES" --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Expression, "expression", "e", "", "Compile an inline statement instead of files")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, text")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string, opts *CompileOptions) error {
	ctx := cmd.Context()
	logger := config.GetLogger(ctx)
	format := resolveFormat(ctx, opts.Format)

	runID := uuid.NewString()
	logger.Debug("starting compilation", "run_id", runID, "files", len(args))

	c := compiler.New(plan.NewCounter())

	if opts.Expression != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine -e with file arguments")
		}
		node, err := c.Compile(opts.Expression)
		if err != nil {
			return err
		}
		return renderPlan(cmd.OutOrStdout(), []plan.Node{node}, format)
	}

	if len(args) == 0 {
		return fmt.Errorf("no input: pass script files or use -e")
	}

	// Compile files in parallel against the shared ID counter; render
	// in argument order once everything succeeded.
	results := make([][]plan.Node, len(args))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			nodes, err := c.CompileScript(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("compiled script", "run_id", runID, "file", path, "plans", len(nodes))
			results[i] = nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var nodes []plan.Node
	for _, fileNodes := range results {
		nodes = append(nodes, fileNodes...)
	}
	return renderPlan(cmd.OutOrStdout(), nodes, format)
}

// resolveFormat picks the output format: the command flag wins, then
// the loaded config, then the default.
func resolveFormat(ctx context.Context, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg := config.FromContext(ctx); cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return config.DefaultOutput
}
