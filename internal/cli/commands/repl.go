package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/cli/config"
	"github.com/conlangtools/chronlang-engine/pkg/chronlang"
)

// NewReplCommand creates the repl command: an interactive shell that
// recompiles a module from an in-memory buffer as statements are typed.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive compilation shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	cfg := cliConfig(cmd)
	logger := config.NewLogger(cfg.Verbose)

	parser, err := requireParser()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chronlang> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "chronlang REPL. Type .help for commands, .quit to exit.")

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		switch line {
		case ".quit", ".exit":
			return nil
		case ".help":
			fmt.Fprintln(cmd.OutOrStdout(), ".run       recompile everything typed so far\n.clear     discard the buffer\n.quit      exit")
			continue
		case ".clear":
			buffer.Reset()
			continue
		case ".run":
			res, err := newResolver(cfg.SourcesDir, cfg.ManifestPath, parser, logger)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "repl: %v\n", err)
				continue
			}
			m := chronlang.Compile(buffer.String(), "<repl>", parser, res, logger)
			printDiagnostics(cmd, m)
			fmt.Fprintf(cmd.OutOrStdout(), "%d word(s), %d sound change(s), %d error(s)\n", len(m.Words), len(m.SoundChanges), len(m.Errors))
			continue
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")
	}
}
