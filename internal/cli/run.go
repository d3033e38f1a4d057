package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runSystem string

func init() {
	runCmd.Flags().StringVar(&runSystem, "system", "", "system prompt passed through to ollama run")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run MODEL",
	Short: "Run a model and start an interactive chat",
	Long: `Run a model with ollama run. The chat session takes over the terminal
until you leave it (/bye or Ctrl-D).`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	modelName, err := modelArg(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Running model: %s\n", modelName)
	return a.Runner.Run(cmd.Context(), runArgs(modelName, runSystem)...)
}

// runArgs builds the ollama argv for an interactive session.
func runArgs(modelName, system string) []string {
	args := []string{"run", modelName}
	if system != "" {
		args = append(args, "--system", system)
	}
	return args
}
