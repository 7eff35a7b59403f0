// Package reconcile decides whether the URL list held in the KV namespace has
// to be rewritten and performs the write.
//
// The package is split in two steps, mirroring a plan/apply workflow:
//
//  1. Plan: the URL sources are merged into one set, fingerprinted and
//     compared against the stored SyncMetadata. Equal fingerprints produce a
//     plan without actions.
//  2. Apply: the planned actions are executed against a Store in order (URL
//     list first, metadata second), stopping at the first failure.
//
// The two writes are not atomic. When the metadata write fails after the URL
// list was written, the store holds a URL list newer than its metadata until
// the next successful sync.
//
// # Usage
//
//	merged := reconcile.Merge(sitemapURLs, redirectURLs)
//	plan := reconcile.BuildPlan(previous, merged, cfg.Sitemap.URL, time.Now())
//	executed, err := reconcile.Apply(ctx, store, plan, reconcile.Options{})
package reconcile
