package app

import (
	"net/http"

	clog "github.com/charmbracelet/log"

	"github.com/tutu-network/ollama-tool/internal/infra/catalog"
	"github.com/tutu-network/ollama-tool/internal/infra/engine"
	"github.com/tutu-network/ollama-tool/internal/infra/ollama"
)

// App wires together the services one command invocation needs.
type App struct {
	Config    Config
	Log       *clog.Logger
	Catalog   *catalog.Fetcher
	Runner    *engine.Runner
	Generator *ollama.Client
}

// New builds an App from cfg. Nothing is contacted or spawned here.
func New(cfg Config, logger *clog.Logger) *App {
	client := &http.Client{}
	return &App{
		Config:    cfg,
		Log:       logger,
		Catalog:   catalog.NewFetcher(cfg.Catalog.URL, client, logger.WithPrefix("catalog")),
		Runner:    engine.NewRunner(cfg.Runner.Program, logger.WithPrefix("engine")),
		Generator: ollama.NewClient(cfg.Server.GenerateURL, client, logger.WithPrefix("ollama")),
	}
}

// SystemPrompt returns override when set, otherwise the configured default.
func (a *App) SystemPrompt(override string) string {
	if override != "" {
		return override
	}
	return a.Config.Generate.SystemPrompt
}
