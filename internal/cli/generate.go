package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateSystem string

func init() {
	generateCmd.Flags().StringVar(&generateSystem, "system", "", "custom system prompt (default from config)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate MODEL PROMPT",
	Short: "Generate a single response with a custom system prompt",
	Long: `Send one prompt to the local Ollama server and print the full answer.
The request is not streamed; the answer is printed once it is complete.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	modelName, err := modelArg(args)
	if err != nil {
		return err
	}
	prompt := args[1]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Generating response with model: %s\n", modelName)
	response, err := a.Generator.Generate(cmd.Context(), modelName, prompt, a.SystemPrompt(generateSystem))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, response)
	return nil
}
