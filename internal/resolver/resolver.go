// Package resolver implements the compiler's module-resolution
// collaborator: given a scoped or local import path it produces an
// already-compiled module, detecting import cycles along the way.
package resolver

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/conlangtools/chronlang-engine/internal/compiler"
	"github.com/conlangtools/chronlang-engine/internal/dag"
)

// chain tracks the modules currently being resolved within one
// top-level compilation, reusing the dependency graph to detect a
// cycle the moment it closes rather than only at the end.
type chain struct {
	graph *dag.Graph
	stack []string
	cache map[string]compiler.Result
}

func newChain() *chain {
	return &chain{graph: dag.NewGraph(), cache: make(map[string]compiler.Result)}
}

// enter records that key depends on the top of the stack (if any),
// reporting a cycle error instead of pushing if doing so would close
// one. The returned done func must be deferred by the caller.
func (c *chain) enter(key string) (cyclic bool, err string, done func()) {
	c.graph.AddNode(key, nil)
	if len(c.stack) > 0 {
		parent := c.stack[len(c.stack)-1]
		c.graph.AddEdge(parent, key)
		if hasCycle, path := c.graph.HasCycle(); hasCycle {
			return true, fmt.Sprintf("import cycle: %s", strings.Join(path, " -> ")), func() {}
		}
	}
	c.stack = append(c.stack, key)
	return false, "", func() { c.stack = c.stack[:len(c.stack)-1] }
}

func noopLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
