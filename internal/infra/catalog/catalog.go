// Package catalog reads the public Ollama model library.
// The library page is plain HTML; every model card links to
// /library/<name>, so the model list is recovered by scraping those anchors.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	clog "github.com/charmbracelet/log"

	"github.com/tutu-network/ollama-tool/internal/domain"
)

// DefaultURL is the library page listing every published model.
const DefaultURL = "https://ollama.ai/library"

const (
	libraryPrefix   = "/library/"
	librarySelector = "a[href^='" + libraryPrefix + "']"
)

// Fetcher downloads and parses the catalog page.
type Fetcher struct {
	url    string
	client *http.Client
	log    *clog.Logger
}

// NewFetcher creates a Fetcher for url. A nil client means http.DefaultClient.
func NewFetcher(url string, client *http.Client, logger *clog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = clog.Default()
	}
	return &Fetcher{url: url, client: client, log: logger}
}

// URL returns the page this Fetcher reads.
func (f *Fetcher) URL() string { return f.url }

// FetchModels returns the sorted, deduplicated names of every model the
// catalog page links to.
func (f *Fetcher) FetchModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrNetwork, err)
	}

	f.log.Debug("fetching catalog", "url", f.url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrNetwork, f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", domain.ErrNetwork, f.url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrNetwork, f.url, err)
	}

	models, err := ParseModels(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	f.log.Debug("catalog parsed", "models", len(models))
	return models, nil
}

// ParseModels extracts model names from a catalog HTML document.
// Links to sub-pages such as /library/llama3/tags are skipped. A document
// without matching links yields an empty slice, not an error.
func ParseModels(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	seen := make(map[string]struct{})
	doc.Find(librarySelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		name, ok := strings.CutPrefix(href, libraryPrefix)
		if !ok || name == "" || strings.Contains(name, "/") {
			return
		}
		seen[name] = struct{}{}
	})

	models := make([]string, 0, len(seen))
	for name := range seen {
		models = append(models, name)
	}
	slices.Sort(models)
	return models, nil
}
