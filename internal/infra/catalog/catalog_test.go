package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tutu-network/ollama-tool/internal/domain"
)

const libraryPage = `<!DOCTYPE html>
<html><body>
<ul>
  <li><a href="/library/a">a</a></li>
  <li><a href="/library/b">b</a></li>
  <li><a href="/library/a">a again</a></li>
  <li><a href="/library/a/tags">a tags</a></li>
  <li><a href="/blog/post">not a model</a></li>
  <li><a href="/library/">empty</a></li>
</ul>
</body></html>`

// newCatalogServer serves body at /library.
func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/library", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestParseModels(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{"dedup sort and skip sub-paths", libraryPage, []string{"a", "b"}},
		{"no matching anchors", `<html><body><a href="/about">about</a></body></html>`, []string{}},
		{"empty document", "", []string{}},
		{"malformed markup", `<a href="/library/zeta">z<div><a href="/library/alpha">x</div>`, []string{"alpha", "zeta"}},
		{"unsorted input", `<a href="/library/mistral"></a><a href="/library/llama2"></a><a href="/library/gemma"></a>`,
			[]string{"gemma", "llama2", "mistral"}},
		{"absolute urls ignored", `<a href="https://ollama.ai/library/llama2"></a>`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModels(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("ParseModels: %v", err)
			}
			if got == nil {
				t.Fatal("ParseModels returned nil slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseModels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchModels(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, libraryPage)

	f := NewFetcher(srv.URL+"/library", srv.Client(), nil)
	got, err := f.FetchModels(context.Background())
	if err != nil {
		t.Fatalf("FetchModels: %v", err)
	}
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("FetchModels = %v, want %v", got, want)
	}
}

func TestFetchModelsEmptyPage(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, "<html></html>")

	got, err := NewFetcher(srv.URL+"/library", srv.Client(), nil).FetchModels(context.Background())
	if err != nil {
		t.Fatalf("FetchModels: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchModels = %v, want empty", got)
	}
}

func TestFetchModelsHTTPStatus(t *testing.T) {
	srv := newCatalogServer(t, http.StatusInternalServerError, "boom")

	_, err := NewFetcher(srv.URL+"/library", srv.Client(), nil).FetchModels(context.Background())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("FetchModels error = %v, want ErrNetwork", err)
	}
}

func TestFetchModelsTruncatedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/library", func(w http.ResponseWriter, r *http.Request) {
		// Promise more than is sent; the server drops the connection.
		w.Header().Set("Content-Length", "10000")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<a href="/library/a">`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	_, err := NewFetcher(srv.URL+"/library", srv.Client(), nil).FetchModels(context.Background())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("FetchModels error = %v, want ErrNetwork", err)
	}
	if errors.Is(err, domain.ErrParse) {
		t.Errorf("FetchModels error = %v, should not match ErrParse", err)
	}
}

func TestFetchModelsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/library"
	srv.Close()

	_, err := NewFetcher(url, nil, nil).FetchModels(context.Background())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("FetchModels error = %v, want ErrNetwork", err)
	}
}

func TestFilter(t *testing.T) {
	models := []string{"codellama", "gemma", "llama2", "llama3", "mistral"}

	tests := []struct {
		query string
		want  []string
	}{
		{"", models},
		{"llama", []string{"codellama", "llama2", "llama3"}},
		{"mis", []string{"mistral"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(models, tt.query)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
