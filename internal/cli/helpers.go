package cli

import (
	"github.com/spf13/cobra"

	"github.com/tutu-network/ollama-tool/internal/app"
	"github.com/tutu-network/ollama-tool/internal/domain"
	"github.com/tutu-network/ollama-tool/internal/logging"
)

// loadConfig reads --config if given, else the default config file.
func loadConfig() (app.Config, error) {
	if configPath != "" {
		return app.LoadConfigFile(configPath)
	}
	return app.LoadConfig()
}

// newApp loads configuration and wires the services for one command.
// The external program shares the command's streams, which are the
// process's own unless a test redirected them.
func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.WithInvocation(logging.New(cmd.ErrOrStderr(), level))

	a := app.New(cfg, logger)
	a.Runner.Stdin = cmd.InOrStdin()
	a.Runner.Stdout = cmd.OutOrStdout()
	a.Runner.Stderr = cmd.ErrOrStderr()
	logger.Debug("command",
		"name", cmd.Name(),
		"program", a.Runner.Program(),
		"catalog", a.Catalog.URL(),
		"generate", a.Generator.URL(),
	)
	return a, nil
}

// modelArg validates the MODEL positional argument.
func modelArg(args []string) (string, error) {
	name := args[0]
	if err := domain.ValidateModelName(name); err != nil {
		return "", err
	}
	return name, nil
}
