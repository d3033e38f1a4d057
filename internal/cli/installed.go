package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installedCmd)
}

var installedCmd = &cobra.Command{
	Use:     "installed",
	Aliases: []string{"ls"},
	Short:   "List locally installed models",
	Args:    cobra.NoArgs,
	RunE:    runInstalled,
}

func runInstalled(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Listing installed models...")
	return a.Runner.Run(cmd.Context(), "list")
}
