package cloudflare_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitemap-sync/core/cloudflare"
	"sitemap-sync/core/httpclient"
	"sitemap-sync/core/reconcile"
	"sitemap-sync/core/syncerr"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valuesPath = "/accounts/acc/storage/kv/namespaces/ns/values/"

func testConfig(baseURL string) cloudflare.Config {
	return cloudflare.Config{
		AccountID:    "acc",
		NamespaceID:  "ns",
		APIToken:     "token",
		Email:        "ops@example.com",
		GlobalAPIKey: "global",
		BaseURL:      baseURL,
	}
}

func newKV(t *testing.T, handler http.HandlerFunc) *cloudflare.KVClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return cloudflare.NewKVClient(httpclient.New(), testConfig(srv.URL))
}

func TestKVClient_GetMetadata(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, valuesPath+"metadata", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"last_update":"2024-01-01T00:00:00.000000","urls_count":3,"urls_hash":"abc","sitemap_url":"https://example.com/sitemap.xml"}`))
	})

	md, err := kv.GetMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &reconcile.SyncMetadata{
		LastUpdate: "2024-01-01T00:00:00.000000",
		URLsCount:  3,
		URLsHash:   "abc",
		SitemapURL: "https://example.com/sitemap.xml",
	}, md)
}

func TestKVClient_GetMetadata_NotFound(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":10009,"message":"get: 'key not found'"}]}`))
	})

	md, err := kv.GetMetadata(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, md)
}

func TestKVClient_GetURLs_NotFound(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, valuesPath+"urls", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	urls, err := kv.GetURLs(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, urls)
}

func TestKVClient_GetMetadata_ServerError(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":10000,"message":"Authentication error"}]}`))
	})

	md, err := kv.GetMetadata(context.Background())
	assert.Nil(t, md)

	var fe *syncerr.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusForbidden, fe.StatusCode)
	assert.Contains(t, err.Error(), "Authentication error")
}

func TestKVClient_GetMetadata_BadJSON(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := kv.GetMetadata(context.Background())
	assert.True(t, syncerr.IsParse(err))
}

func TestKVClient_GetURLs(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, valuesPath+"urls", r.URL.Path)
		_, _ = w.Write([]byte(`["/a/","/b/"]`))
	})

	urls, err := kv.GetURLs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/", "/b/"}, urls)
}

func TestKVClient_Put(t *testing.T) {
	received := map[string][]byte{}
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		body, _ := io.ReadAll(r.Body)
		received[r.URL.Path] = body
		_, _ = w.Write([]byte(`{"success":true,"errors":[],"messages":[],"result":null}`))
	})

	ctx := context.Background()
	require.NoError(t, kv.PutURLs(ctx, []string{"/a/", "/b/"}))
	require.NoError(t, kv.PutMetadata(ctx, reconcile.SyncMetadata{URLsCount: 2, URLsHash: "h"}))

	var urls []string
	require.NoError(t, json.Unmarshal(received[valuesPath+"urls"], &urls))
	assert.Equal(t, []string{"/a/", "/b/"}, urls)

	var md reconcile.SyncMetadata
	require.NoError(t, json.Unmarshal(received[valuesPath+"metadata"], &md))
	assert.Equal(t, 2, md.URLsCount)
	assert.Equal(t, "h", md.URLsHash)
}

func TestKVClient_Put_Failure(t *testing.T) {
	kv := newKV(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := kv.PutURLs(context.Background(), nil)
	var fe *syncerr.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}
