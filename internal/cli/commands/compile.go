package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/cli/config"
	"github.com/conlangtools/chronlang-engine/pkg/chronlang"
)

// NewCompileCommand creates the compile command: parse and semantically
// check a source file, reporting every diagnostic it accumulates.
func NewCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a chronlang source file and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0])
		},
	}
}

func runCompile(cmd *cobra.Command, path string) error {
	cfg := cliConfig(cmd)
	logger := config.NewLogger(cfg.Verbose)

	parser, err := requireParser()
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	res, err := newResolver(cfg.SourcesDir, cfg.ManifestPath, parser, logger)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	m := chronlang.Compile(string(data), path, parser, res, logger)
	printDiagnostics(cmd, m)

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d language(s), %d word(s), %d sound change(s), %d error(s)\n",
		path, len(m.Languages), len(m.Words), len(m.SoundChanges), len(m.Errors))

	if err := m.Err(); err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, m *chronlang.Module) {
	for _, d := range m.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %s\n", d.Span, d.Message)
	}
	for _, d := range m.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", d.Span, d.Message)
	}
}

func cliConfig(cmd *cobra.Command) *config.Config {
	if c, ok := cmd.Context().Value(config.ContextKey{}).(*config.Config); ok {
		return c
	}
	defaults := config.Defaults()
	return &defaults
}
