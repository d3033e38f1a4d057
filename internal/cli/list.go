package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ollama-tool/internal/infra/catalog"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [QUERY]",
	Short: "List available models from the Ollama library",
	Long: `List every model published in the Ollama library.
An optional QUERY fuzzy-filters the names, e.g. "ollama-tool list llama".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Fetching available models...")
	models, err := a.Catalog.FetchModels(cmd.Context())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		models = catalog.Filter(models, args[0])
		if len(models) == 0 {
			fmt.Fprintf(out, "No models match %q.\n", args[0])
			return nil
		}
	}

	fmt.Fprintln(out, "Available models:")
	for _, m := range models {
		fmt.Fprintf(out, "- %s\n", m)
	}
	return nil
}
