package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pullCmd)
}

var pullCmd = &cobra.Command{
	Use:   "pull MODEL",
	Short: "Download a model with ollama pull",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func runPull(cmd *cobra.Command, args []string) error {
	modelName, err := modelArg(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Pulling model: %s\n", modelName)
	if err := a.Runner.Run(cmd.Context(), "pull", modelName); err != nil {
		return err
	}
	fmt.Fprintf(out, "Model %s pulled successfully.\n", modelName)
	return nil
}
