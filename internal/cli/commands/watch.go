package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/cli/config"
	"github.com/conlangtools/chronlang-engine/pkg/chronlang"
)

// NewWatchCommand creates the watch command: recompile a source file
// every time it is written or re-created on disk. Its directory is
// watched, but events for other files in it are ignored.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompile a source file on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, path string) error {
	cfg := cliConfig(cmd)
	logger := config.NewLogger(cfg.Verbose)

	parser, err := requireParser()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	compileOnce := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
			return
		}
		res, err := newResolver(cfg.SourcesDir, cfg.ManifestPath, parser, logger)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
			return
		}
		m := chronlang.Compile(string(data), path, parser, res, logger)
		printDiagnostics(cmd, m)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d error(s)\n", path, len(m.Errors))
	}

	compileOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				compileOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}
