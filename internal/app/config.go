// Package app holds the configuration and service wiring for ollama-tool.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tutu-network/ollama-tool/internal/domain"
	"github.com/tutu-network/ollama-tool/internal/infra/catalog"
	"github.com/tutu-network/ollama-tool/internal/infra/ollama"
)

// Config holds all tool configuration.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Server   ServerConfig   `toml:"server"`
	Runner   RunnerConfig   `toml:"runner"`
	Generate GenerateConfig `toml:"generate"`
	Logging  LoggingConfig  `toml:"logging"`
}

// CatalogConfig points at the remote model library page.
type CatalogConfig struct {
	URL string `toml:"url"`
}

// ServerConfig locates the local inference server.
type ServerConfig struct {
	GenerateURL string `toml:"generate_url"`
}

// RunnerConfig names the external program model commands are delegated to.
type RunnerConfig struct {
	Program string `toml:"program"`
}

// GenerateConfig controls one-shot generation.
type GenerateConfig struct {
	SystemPrompt string `toml:"system_prompt"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			URL: catalog.DefaultURL,
		},
		Server: ServerConfig{
			GenerateURL: ollama.GenerateURLFromEnv(),
		},
		Runner: RunnerConfig{
			Program: "ollama",
		},
		Generate: GenerateConfig{
			SystemPrompt: domain.DefaultSystemPrompt,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadConfig reads config from ~/.ollama-tool/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	return LoadConfigFile(ConfigPath())
}

// LoadConfigFile reads config from path. A missing file yields the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	// Blank values in the file mean "use the default"
	def := DefaultConfig()
	if cfg.Catalog.URL == "" {
		cfg.Catalog.URL = def.Catalog.URL
	}
	if cfg.Server.GenerateURL == "" {
		cfg.Server.GenerateURL = def.Server.GenerateURL
	}
	if cfg.Runner.Program == "" {
		cfg.Runner.Program = def.Runner.Program
	}
	if cfg.Generate.SystemPrompt == "" {
		cfg.Generate.SystemPrompt = def.Generate.SystemPrompt
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}

	return cfg, nil
}

// SaveConfig writes the config to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return filepath.Join(toolHome(), "config.toml")
}

// toolHome returns the ollama-tool data directory.
func toolHome() string {
	if env := os.Getenv("OLLAMA_TOOL_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ollama-tool")
}
