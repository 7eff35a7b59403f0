package reconcile

import (
	"context"
	"time"
)

// Keys used in the KV namespace.
const (
	KeyMetadata = "metadata"
	KeyURLs     = "urls"
)

// SyncMetadata is the record stored under KeyMetadata.
type SyncMetadata struct {
	// LastUpdate is the ISO-8601 time of the write that produced this record.
	LastUpdate string `json:"last_update"`

	// URLsCount is the number of paths in the stored URL list.
	URLsCount int `json:"urls_count"`

	// URLsHash is the fingerprint of the stored URL list.
	URLsHash string `json:"urls_hash"`

	// SitemapURL is the sitemap the list was built from.
	SitemapURL string `json:"sitemap_url"`
}

// Store is the remote key-value namespace holding the URL list and its metadata.
type Store interface {
	// GetMetadata returns the stored metadata, or nil when none exists.
	GetMetadata(ctx context.Context) (*SyncMetadata, error)

	// PutURLs replaces the stored URL list.
	PutURLs(ctx context.Context, urls []string) error

	// PutMetadata replaces the stored metadata.
	PutMetadata(ctx context.Context, metadata SyncMetadata) error
}

// State is a step of a sync run.
type State string

const (
	StateStart     State = "start"
	StateFetching  State = "fetching"
	StateMerging   State = "merging"
	StateComparing State = "comparing"
	StateUnchanged State = "unchanged"
	StateWriting   State = "writing"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Status is the outcome of a successful sync run.
type Status string

const (
	// StatusUnchanged means the fingerprint matched and nothing was written.
	StatusUnchanged Status = "unchanged"
	// StatusUpdated means the URL list and metadata were rewritten.
	StatusUpdated Status = "updated"
)

// ActionType represents the type of write action.
type ActionType string

const (
	// ActionPutURLs writes the merged URL list.
	ActionPutURLs ActionType = "put_urls"
	// ActionPutMetadata writes the new metadata record.
	ActionPutMetadata ActionType = "put_metadata"
)

// Action represents a planned write.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the KV key written by the action.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan is the outcome of comparing the merged URL set with the stored state.
type Plan struct {
	// URLs is the merged URL list, sorted.
	URLs []string `json:"urls"`

	// Hash is the fingerprint of URLs.
	Hash string `json:"hash"`

	// Previous is the stored metadata, nil when the namespace was empty.
	Previous *SyncMetadata `json:"previous_metadata"`

	// Next is the metadata to write. Nil when the plan is unchanged.
	Next *SyncMetadata `json:"new_metadata"`

	// Actions contains the writes to perform, in order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// Status returns StatusUnchanged when the plan has no actions.
func (p *Plan) Status() Status {
	if len(p.Actions) == 0 {
		return StatusUnchanged
	}
	return StatusUpdated
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalURLs is the size of the merged set.
	TotalURLs int `json:"total_urls"`

	// PreviousCount is the stored count, zero without prior metadata.
	PreviousCount int `json:"previous_count"`

	// URLsAdded is TotalURLs - PreviousCount. It may be negative.
	URLsAdded int `json:"urls_added"`
}

// Options controls Apply.
type Options struct {
	// DryRun prevents execution of any write if true.
	DryRun bool
}

// timestampLayout is the format of SyncMetadata.LastUpdate.
const timestampLayout = time.RFC3339Nano
