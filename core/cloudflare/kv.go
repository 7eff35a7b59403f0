package cloudflare

import (
	"context"
	"net/url"

	"sitemap-sync/core/reconcile"
	"sitemap-sync/core/syncerr"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

// KVClient reads and writes the sync keys of a Workers KV namespace.
type KVClient struct {
	client      *req.Client
	baseURL     string
	accountID   string
	namespaceID string
}

var _ reconcile.Store = (*KVClient)(nil)

// NewKVClient creates a KV client authenticated with cfg.APIToken.
// The given client is cloned; its settings are not modified.
func NewKVClient(client *req.Client, cfg Config) *KVClient {
	return &KVClient{
		client:      client.Clone().SetCommonBearerAuthToken(cfg.APIToken),
		baseURL:     cfg.BaseURL,
		accountID:   cfg.AccountID,
		namespaceID: cfg.NamespaceID,
	}
}

// GetMetadata returns the stored metadata, or nil when the key is absent.
func (c *KVClient) GetMetadata(ctx context.Context) (*reconcile.SyncMetadata, error) {
	var md reconcile.SyncMetadata
	found, err := c.getValue(ctx, reconcile.KeyMetadata, &md)
	if err != nil || !found {
		return nil, err
	}
	return &md, nil
}

// GetURLs returns the stored URL list, or nil when the key is absent.
func (c *KVClient) GetURLs(ctx context.Context) ([]string, error) {
	var urls []string
	found, err := c.getValue(ctx, reconcile.KeyURLs, &urls)
	if err != nil || !found {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// PutURLs replaces the stored URL list.
func (c *KVClient) PutURLs(ctx context.Context, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	return c.putValue(ctx, reconcile.KeyURLs, urls)
}

// PutMetadata replaces the stored metadata.
func (c *KVClient) PutMetadata(ctx context.Context, metadata reconcile.SyncMetadata) error {
	return c.putValue(ctx, reconcile.KeyMetadata, metadata)
}

func (c *KVClient) valueURL(key string) string {
	return joinURL(c.baseURL, "accounts", c.accountID, "storage", "kv", "namespaces", c.namespaceID, "values", url.PathEscape(key))
}

// getValue decodes the JSON value stored under key into out.
// It reports false without error when the key does not exist.
func (c *KVClient) getValue(ctx context.Context, key string, out any) (bool, error) {
	op := "get kv " + key
	u := c.valueURL(key)

	resp, err := c.client.R().SetContext(ctx).Get(u)
	if err := checkResponse(resp, err, op, u); err != nil {
		if syncerr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	body, err := resp.ToBytes()
	if err != nil {
		return false, &syncerr.FetchError{Op: op, URL: u, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, &syncerr.ParseError{Source: op, Err: err}
	}
	return true, nil
}

func (c *KVClient) putValue(ctx context.Context, key string, value any) error {
	op := "put kv " + key
	u := c.valueURL(key)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBodyJsonMarshal(value).
		Put(u)
	return checkResponse(resp, err, op, u)
}
