// Package cli implements the ollama-tool command-line interface using Cobra.
// Each subcommand maps to one model-management action; everything except
// "list" and "generate" is delegated to the ollama binary.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ollama-tool",
	Short: "ollama-tool — manage Ollama models",
	Long: `ollama-tool is a small helper around a local Ollama installation.
It lists the public model library, and pulls, runs and removes models
through the ollama command already on your PATH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $OLLAMA_TOOL_HOME/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and exits with its status. Called from main.go.
func Execute(version string) {
	os.Exit(run(version, os.Stderr))
}

// run executes the root command and returns the process exit code,
// reporting any error on stderr.
func run(version string, stderr io.Writer) int {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
