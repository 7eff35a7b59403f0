// Package urlsync keeps the Workers KV copy of the site URL list in step
// with the sitemap and the account redirect lists.
//
// A sync run loads the stored metadata, fetches the sitemap and every
// redirect list, merges them into one set of normalized paths and compares
// its fingerprint with the stored one. Only when the fingerprint differs are
// the URL list and then the metadata rewritten.
//
// # HTTP Endpoints
//
//   - POST /sync-urls : Runs a sync.
//   - GET /get-metadata : Returns the stored metadata.
//   - GET /sync-history : Lists recent sync runs (requires the database).
package urlsync
