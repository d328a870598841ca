package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dex/internal/common"
)

func newTestHTTP(t *testing.T, handler http.HandlerFunc) *HTTP {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h, err := NewHTTP(HTTPConfig{
		EntriesURL:    srv.URL + "/entries.json",
		CategoriesURL: srv.URL + "/categories.json",
		Timeout:       time.Second,
		Retries:       2,
	})
	require.NoError(t, err)
	return h
}

func TestHTTP_Fetch(t *testing.T) {
	h := newTestHTTP(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/entries.json":
			_, _ = w.Write([]byte(entriesJSON))
		case "/categories.json":
			_, _ = w.Write([]byte(categoriesJSON))
		default:
			http.NotFound(w, r)
		}
	})

	entries, err := NewDocuments(h).FetchEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	categories, err := NewDocuments(h).FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestHTTP_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	h := newTestHTTP(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := h.EntriesDocument(context.Background())
	require.Error(t, err)

	var netErr *common.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
	assert.ErrorIs(t, err, common.ErrNetwork)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTP_ServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	h := newTestHTTP(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(entriesJSON))
	})

	data, err := h.EntriesDocument(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, entriesJSON, string(data))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTP_ServerErrorExhaustsRetries(t *testing.T) {
	h := newTestHTTP(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := h.EntriesDocument(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestHTTP_ETagRevalidation(t *testing.T) {
	var full, notModified atomic.Int32
	h := newTestHTTP(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			notModified.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		full.Add(1)
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(entriesJSON))
	})
	ctx := context.Background()

	first, err := h.EntriesDocument(ctx)
	require.NoError(t, err)
	second, err := h.EntriesDocument(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), full.Load())
	assert.Equal(t, int32(1), notModified.Load())
}

func TestHTTP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	h, err := NewHTTP(HTTPConfig{EntriesURL: url, CategoriesURL: url, Retries: 1})
	require.NoError(t, err)

	_, err = h.EntriesDocument(context.Background())
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestHTTPTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, HTTPTimeout("5s"))
	assert.Equal(t, DefaultHTTPTimeout, HTTPTimeout(""))
	assert.Equal(t, DefaultHTTPTimeout, HTTPTimeout("soon"))
	assert.Equal(t, DefaultHTTPTimeout, HTTPTimeout("-1s"))
}
