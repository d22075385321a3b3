// Package commands implements the chronlang CLI's subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/conlangtools/chronlang-engine/internal/compiler"
	"github.com/conlangtools/chronlang-engine/internal/resolver"
)

// Parser is the surface-syntax parser the compile/snapshot/watch/repl
// commands drive. The lexer and grammar live outside this module; an
// embedding program assigns a concrete implementation here before
// calling cli.Execute (cmd/chronlang assigns none). Left nil, commands
// fail fast with a clear error instead of silently compiling nothing.
var Parser compiler.Parser

func requireParser() (compiler.Parser, error) {
	if Parser == nil {
		return nil, fmt.Errorf("no surface-syntax parser configured")
	}
	return Parser, nil
}

func newResolver(sourcesDir, manifestPath string, parser compiler.Parser, logger *slog.Logger) (compiler.Resolver, error) {
	manifest := resolver.Manifest{}
	if manifestPath != "" {
		loaded, err := resolver.LoadManifest(manifestPath)
		if err == nil {
			manifest = loaded
		}
	}
	root := sourcesDir
	if root == "" {
		root = "."
	}
	return resolver.NewFSResolver(root, manifest, parser, logger), nil
}
