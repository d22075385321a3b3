package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/cli/config"
	"github.com/conlangtools/chronlang-engine/pkg/chronlang"
)

// NewSnapshotCommand creates the snapshot command: compile a source
// file and print the lexicon of one language at one point in time.
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot <file> <language-id> <time>",
		Short: "Print a language's lexicon at a point in time",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, args[0], args[1], args[2])
		},
	}
	return cmd
}

func runSnapshot(cmd *cobra.Command, path, langID, timeStr string) error {
	cfg := cliConfig(cmd)
	logger := config.NewLogger(cfg.Verbose)

	parser, err := requireParser()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	time, err := strconv.Atoi(timeStr)
	if err != nil {
		return fmt.Errorf("snapshot: invalid time %q: %w", timeStr, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	res, err := newResolver(cfg.SourcesDir, cfg.ManifestPath, parser, logger)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	m := chronlang.Compile(string(data), path, parser, res, logger)
	printDiagnostics(cmd, m)
	if err := m.Err(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	lang, ok := m.Languages[langID]
	if !ok {
		return fmt.Errorf("snapshot: unknown language %q", langID)
	}

	snap := chronlang.SnapshotAt(m, lang, time)
	renderSnapshot(cmd, snap, cfg.OutputFormat)
	return nil
}

func renderSnapshot(cmd *cobra.Command, snap chronlang.Snapshot, format string) {
	if format == "json" {
		renderSnapshotJSON(cmd, snap)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Gloss", "Pronunciation", "Definitions"})
	for _, w := range snap.Words {
		defs := ""
		for i, d := range w.Definitions {
			if i > 0 {
				defs += "; "
			}
			defs += d.Text
		}
		t.AppendRow(table.Row{w.Gloss, w.Render(), defs})
	}
	t.Render()
}

func renderSnapshotJSON(cmd *cobra.Command, snap chronlang.Snapshot) {
	fmt.Fprintln(cmd.OutOrStdout(), "[")
	for i, w := range snap.Words {
		comma := ","
		if i == len(snap.Words)-1 {
			comma = ""
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  {\"gloss\": %q, \"pronunciation\": %q}%s\n", w.Gloss, w.Render(), comma)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "]")
}
