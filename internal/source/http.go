package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Veraticus/dex/internal/common"
)

// DefaultHTTPTimeout bounds a single request.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPConfig configures an HTTP source.
type HTTPConfig struct {
	EntriesURL    string
	CategoriesURL string
	Timeout       time.Duration
	Retries       int
	CacheSize     int
}

type cachedDocument struct {
	etag string
	body []byte
}

// HTTP fetches catalog documents from remote URLs. Successful responses that
// carry an ETag are cached and revalidated with If-None-Match.
type HTTP struct {
	client *http.Client
	cache  *lru.Cache
	cfg    HTTPConfig
}

// NewHTTP creates an HTTP source.
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	if cfg.EntriesURL == "" || cfg.CategoriesURL == "" {
		return nil, fmt.Errorf("%w: http source needs entries and categories URLs", common.ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPTimeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8
	}

	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return &HTTP{
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cache,
		cfg:    cfg,
	}, nil
}

// Name implements service.DocumentSource.
func (h *HTTP) Name() string {
	return h.cfg.EntriesURL
}

// EntriesDocument implements service.DocumentSource.
func (h *HTTP) EntriesDocument(ctx context.Context) ([]byte, error) {
	return h.get(ctx, h.cfg.EntriesURL)
}

// CategoriesDocument implements service.DocumentSource.
func (h *HTTP) CategoriesDocument(ctx context.Context) ([]byte, error) {
	return h.get(ctx, h.cfg.CategoriesURL)
}

func (h *HTTP) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := common.WithRetry(ctx, func() error {
		var err error
		body, err = h.fetch(ctx, url)
		return err
	}, common.RetryOptions{
		MaxAttempts:  h.cfg.Retries,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (h *HTTP) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &common.NetworkError{Op: "GET", URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	var cached *cachedDocument
	if v, ok := h.cache.Get(url); ok {
		cached = v.(*cachedDocument) //nolint:errcheck // only cachedDocument values are stored
		req.Header.Set("If-None-Match", cached.etag)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &common.NetworkError{Op: "GET", URL: url, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			common.LogDebug("failed to close response body", common.Fields{"url": url, "error": closeErr})
		}
	}()

	if resp.StatusCode == http.StatusNotModified && cached != nil {
		common.LogDebug("catalog document not modified", common.Fields{"url": url})
		return bytes.Clone(cached.body), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &common.NetworkError{
			Op:         "GET",
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.NetworkError{Op: "GET", URL: url, Err: err}
	}

	if etag := resp.Header.Get("ETag"); etag != "" {
		h.cache.Add(url, &cachedDocument{etag: etag, body: bytes.Clone(body)})
	}

	common.LogDebug("fetched catalog document", common.Fields{"url": url, "bytes": len(body)})
	return body, nil
}
