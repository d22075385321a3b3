// Package main provides the CLI entry point for chronlang.
package main

import (
	"os"

	"github.com/conlangtools/chronlang-engine/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
