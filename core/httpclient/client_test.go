package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sitemap-sync/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, httpclient.UserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resp, err := httpclient.New().R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"sitemap"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	resp, err := httpclient.New().R().SetSuccessResult(&out).Get(srv.URL)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessState())
	assert.Equal(t, "sitemap", out.Name)
}
