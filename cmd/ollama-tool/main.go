// Package main is the entrypoint for ollama-tool, a helper that lists,
// pulls, runs and removes models for a local Ollama installation.
package main

import "github.com/tutu-network/ollama-tool/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
