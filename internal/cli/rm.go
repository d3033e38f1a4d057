package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove MODEL",
	Aliases: []string{"rm"},
	Short:   "Remove a locally installed model",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	modelName, err := modelArg(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Removing model: %s\n", modelName)
	if err := a.Runner.Run(cmd.Context(), "rm", modelName); err != nil {
		return err
	}
	fmt.Fprintf(out, "Model %s removed.\n", modelName)
	return nil
}
