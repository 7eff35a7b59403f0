// Package cloudflare implements the two Cloudflare API clients used by the
// sync: the Workers KV namespace holding the URL list and its metadata, and
// the account rule lists holding redirect rules.
//
// Both clients are thin adapters over a shared req client. They make a single
// attempt per call and report failures as *syncerr.FetchError (network or
// non-2xx) or *syncerr.ParseError (undecodable payload).
//
// # Authentication
//
//   - KVClient: bearer token (CLOUDFLARE_API_TOKEN).
//   - RulesClient: X-Auth-Email / X-Auth-Key pair (CLOUDFLARE_EMAIL,
//     CLOUDFLARE_GLOBAL_API_KEY).
//
// # Usage
//
//	kv := cloudflare.NewKVClient(httpclient.New(), cfg.Cloudflare)
//	md, err := kv.GetMetadata(ctx) // nil, nil when the key does not exist
//
//	rules := cloudflare.NewRulesClient(httpclient.New(), cfg.Cloudflare)
//	lists, err := rules.ListLists(ctx)
//	items, err := rules.ListItems(ctx, lists[0].ID)
package cloudflare
