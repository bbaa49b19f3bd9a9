package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/gardet/listing-finder/pkg/types"
)

const (
	propertiesFile = "properties.json"
	newsFile       = "news.json"
	projectsFile   = "projects.json"
)

// Source delivers a whole data document in one shot. There is no schema
// negotiation, no versioning and no source-side pagination.
type Source interface {
	FetchProperties(ctx context.Context) ([]*types.Property, error)
	FetchNews(ctx context.Context) ([]*types.NewsItem, error)
	FetchProjects(ctx context.Context) ([]*types.Project, error)
}

// HTTPSource reads the static documents relative to a base URL. A non-2xx
// response or a malformed body is a terminal error; no retries.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func fetchHTTP[T any](ctx context.Context, s *HTTPSource, name string) ([]*T, error) {
	url := s.BaseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return decodeList[T](data, url)
}

func decodeList[T any](data []byte, origin string) ([]*T, error) {
	result := make([]*T, 0)
	if err := sonic.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", origin, err)
	}
	return result, nil
}

func (s *HTTPSource) FetchProperties(ctx context.Context) ([]*types.Property, error) {
	return fetchHTTP[types.Property](ctx, s, propertiesFile)
}

func (s *HTTPSource) FetchNews(ctx context.Context) ([]*types.NewsItem, error) {
	return fetchHTTP[types.NewsItem](ctx, s, newsFile)
}

func (s *HTTPSource) FetchProjects(ctx context.Context) ([]*types.Project, error) {
	return fetchHTTP[types.Project](ctx, s, projectsFile)
}

// FileSource reads the documents from a local data directory.
type FileSource struct {
	Dir string
}

func fetchFile[T any](s *FileSource, name string) ([]*T, error) {
	fileName := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return decodeList[T](data, fileName)
}

func (s *FileSource) FetchProperties(_ context.Context) ([]*types.Property, error) {
	return fetchFile[types.Property](s, propertiesFile)
}

func (s *FileSource) FetchNews(_ context.Context) ([]*types.NewsItem, error) {
	return fetchFile[types.NewsItem](s, newsFile)
}

func (s *FileSource) FetchProjects(_ context.Context) ([]*types.Project, error) {
	return fetchFile[types.Project](s, projectsFile)
}
