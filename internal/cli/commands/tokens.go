package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphstack-labs/graphadmin/pkg/parser"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Expression string
	Format     string
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream for a command",
		Long: `Tokenize administrative command text and print the token stream.

Useful for debugging quoting and keyword issues: the dump shows each
token's type, literal value and source position.`,
		Example: `  # Tokenize an inline statement
  graphadmin tokens -e "GRANT WRITE (*) ON GRAPH movies TO admin"

  # Tokenize a script file as JSON
  graphadmin tokens setup.gadm --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := opts.Expression
			if len(args) == 1 {
				if input != "" {
					return fmt.Errorf("cannot combine -e with a file argument")
				}
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[0], err)
				}
				input = string(data)
			}
			if input == "" {
				return fmt.Errorf("no input: pass a script file or use -e")
			}

			format := resolveFormat(cmd.Context(), opts.Format)
			return renderTokens(cmd.OutOrStdout(), parser.Tokenize(input), format)
		},
	}

	cmd.Flags().StringVarP(&opts.Expression, "expression", "e", "", "Tokenize an inline statement instead of a file")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, text")

	return cmd
}
