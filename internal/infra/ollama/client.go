// Package ollama talks to the local Ollama server's HTTP API.
// Only the non-streaming /api/generate call is used.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/tutu-network/ollama-tool/internal/domain"
)

// DefaultGenerateURL is the generate endpoint of a server on its default port.
const DefaultGenerateURL = "http://localhost:11434/api/generate"

// GenerateURLFromEnv returns the generate endpoint for the server named by
// OLLAMA_HOST, or DefaultGenerateURL when the variable is unset.
func GenerateURLFromEnv() string {
	if os.Getenv("OLLAMA_HOST") == "" {
		return DefaultGenerateURL
	}
	return envconfig.Host().JoinPath("api", "generate").String()
}

// Client issues generate requests against one endpoint.
type Client struct {
	url  string
	http *http.Client
	log  *clog.Logger
}

// NewClient creates a Client for the generate endpoint at url.
// A nil httpClient means http.DefaultClient.
func NewClient(url string, httpClient *http.Client, logger *clog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = clog.Default()
	}
	return &Client{url: url, http: httpClient, log: logger}
}

// URL returns the endpoint this Client posts to.
func (c *Client) URL() string { return c.url }

// Generate sends one non-streaming generate request and returns the
// model's full answer.
func (c *Client) Generate(ctx context.Context, model, prompt, system string) (string, error) {
	stream := false
	body, err := json.Marshal(&api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		System: system,
		Stream: &stream,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("generate", "url", c.url, "model", model)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: POST %s: %v", domain.ErrNetwork, c.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrNetwork, err)
	}

	// The server answered, so whatever went wrong is in the body.
	var result domain.GenerateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: POST %s: %s: %v", domain.ErrDeserialization, c.url, resp.Status, err)
	}
	if result.Response == nil {
		if result.Error != "" {
			return "", fmt.Errorf("%w: POST %s: %s: %s", domain.ErrDeserialization, c.url, resp.Status, result.Error)
		}
		return "", fmt.Errorf("%w: POST %s: %s: missing \"response\" field", domain.ErrDeserialization, c.url, resp.Status)
	}
	return *result.Response, nil
}
