package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/graphstack-labs/graphadmin/internal/cli/config"
	"github.com/graphstack-labs/graphadmin/pkg/compiler"
	"github.com/graphstack-labs/graphadmin/pkg/plan"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	Format string
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile administrative commands",
		Long: `Start an interactive session that compiles each statement and
prints the resulting logical plan.

Statements end with a semicolon and may span multiple lines. History is
kept across sessions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, text")

	return cmd
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	format := resolveFormat(ctx, opts.Format)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "graphadmin> ",
		HistoryFile:     cfg.HistoryPath(),
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, bannerStyle.Render("graphadmin"))
	_, _ = fmt.Fprintln(out, hintStyle.Render("Type .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(out)

	c := compiler.New(plan.NewCounter())

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("graphadmin> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if buffer.Len() == 0 && strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, line, &format); quit {
				break
			}
			continue
		}

		// Accumulate multi-line input until semicolon
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString(" ")
			rl.SetPrompt("       ...> ")
			continue
		}
		rl.SetPrompt("graphadmin> ")

		input := buffer.String()
		buffer.Reset()

		nodes, err := c.CompileScript(input)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if err := renderPlan(out, nodes, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

// handleDotCommand processes a REPL dot-command. Returns true when the
// session should end.
func handleDotCommand(cmd *cobra.Command, line string, format *string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".format":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Current format: %s\n", *format)
			return false
		}
		switch parts[1] {
		case "table", "json", "text":
			*format = parts[1]
		default:
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .format table|json|text")
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .format [fmt]     Show or set the output format (table|json|text)
  .clear            Clear the screen
  .quit / .exit     Exit the REPL

Tips:
  - Statements must end with a semicolon (;)
  - Keywords are case-insensitive; identifiers are not
  - Quote names containing special characters with backticks
`
	_, _ = fmt.Fprintln(w, help)
}

// newKeywordCompleter creates a readline completer for statement
// keywords and dot-commands.
func newKeywordCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("GRANT"),
		readline.PcItem("DENY"),
		readline.PcItem("REVOKE"),
		readline.PcItem("SHOW",
			readline.PcItem("USERS"),
			readline.PcItem("ROLES"),
			readline.PcItem("DATABASES"),
			readline.PcItem("DATABASE"),
		),
		readline.PcItem("CREATE",
			readline.PcItem("USER"),
			readline.PcItem("ROLE"),
			readline.PcItem("DATABASE"),
		),
		readline.PcItem("DROP",
			readline.PcItem("USER"),
			readline.PcItem("ROLE"),
			readline.PcItem("DATABASE"),
		),
		readline.PcItem("START", readline.PcItem("DATABASE")),
		readline.PcItem("STOP", readline.PcItem("DATABASE")),
		readline.PcItem(".help"),
		readline.PcItem(".format"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
