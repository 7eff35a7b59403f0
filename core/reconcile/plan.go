package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sitemap-sync/core/fingerprint"

	mapset "github.com/deckarep/golang-set/v2"
)

// BuildPlan compares merged against previous and returns the writes needed
// to bring the store up to date. It does NOT execute them; use Apply for that.
func BuildPlan(previous *SyncMetadata, merged mapset.Set[string], sitemapURL string, now time.Time) *Plan {
	urls := merged.ToSlice()
	sort.Strings(urls)
	hash := fingerprint.Strings(urls)

	previousCount := 0
	if previous != nil {
		previousCount = previous.URLsCount
	}

	plan := &Plan{
		URLs:     urls,
		Hash:     hash,
		Previous: previous,
		Summary: PlanSummary{
			TotalURLs:     len(urls),
			PreviousCount: previousCount,
		},
	}

	if previous != nil && previous.URLsHash == hash {
		return plan
	}

	plan.Summary.URLsAdded = len(urls) - previousCount
	plan.Next = &SyncMetadata{
		LastUpdate: now.UTC().Format(timestampLayout),
		URLsCount:  len(urls),
		URLsHash:   hash,
		SitemapURL: sitemapURL,
	}

	reason := "no stored metadata"
	if previous != nil {
		reason = fmt.Sprintf("hash changed: %s -> %s", previous.URLsHash, hash)
	}
	plan.Actions = []Action{
		{Type: ActionPutURLs, Key: KeyURLs, Reason: reason},
		{Type: ActionPutMetadata, Key: KeyMetadata, Reason: reason},
	}
	return plan
}

// Apply executes the actions in plan against store, in order.
// It returns the number of actions executed and stops at the first failure.
func Apply(ctx context.Context, store Store, plan *Plan, opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionPutURLs:
			if err := store.PutURLs(ctx, plan.URLs); err != nil {
				return executed, fmt.Errorf("failed to write %s: %w", action.Key, err)
			}
		case ActionPutMetadata:
			if plan.Next == nil {
				return executed, fmt.Errorf("plan has no metadata to write")
			}
			if err := store.PutMetadata(ctx, *plan.Next); err != nil {
				return executed, fmt.Errorf("failed to write %s: %w", action.Key, err)
			}
		default:
			return executed, fmt.Errorf("unknown action type %q", action.Type)
		}
		executed++
	}

	return executed, nil
}
