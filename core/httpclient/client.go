// Package httpclient builds the outbound HTTP client shared by the sitemap
// fetcher and the Cloudflare API clients.
package httpclient

import (
	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

// UserAgent identifies the service to upstream endpoints.
const UserAgent = "sitemap-sync/1.0"

// New returns a req client with JSON hooks backed by go-json.
// Retries are disabled: every remote call is attempted exactly once.
func New() *req.Client {
	return req.C().
		SetUserAgent(UserAgent).
		SetCommonRetryCount(0).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal)
}
