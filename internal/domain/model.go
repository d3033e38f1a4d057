package domain

import (
	"fmt"
	"strings"
)

// DefaultSystemPrompt is sent with generate requests when the caller does
// not supply one.
const DefaultSystemPrompt = "You are GitHub Dotfiles AI, a helpful, harmless, and honest AI assistant powered by Ollama. Always provide accurate and useful responses."

// ValidateModelName rejects names that cannot refer to a model. Tags such
// as "llama3:8b" and namespaced names like "user/model" are left to the
// external program to interpret.
func ValidateModelName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidModelName)
	}
	return nil
}

// GenerateResponse is the subset of the server's /api/generate reply this
// tool reads. Response is a pointer so a missing field can be told apart
// from an empty answer.
type GenerateResponse struct {
	Response *string `json:"response"`
	Error    string  `json:"error,omitempty"`
}
