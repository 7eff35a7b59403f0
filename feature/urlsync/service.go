package urlsync

import (
	"context"
	"fmt"
	"time"

	"sitemap-sync/core/reconcile"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// SitemapFetcher returns the normalized paths listed by a sitemap.
type SitemapFetcher interface {
	FetchURLs(ctx context.Context, sitemapURL string) (mapset.Set[string], string, error)
}

// Redirects returns the normalized source paths of the redirect lists.
type Redirects interface {
	Fetch(ctx context.Context) RedirectResult
}

// SyncResult is the outcome of a successful sync run.
type SyncResult struct {
	// Status is unchanged or updated.
	Status reconcile.Status `json:"status"`

	// PreviousMetadata is the metadata found before the run, nil if none.
	PreviousMetadata *reconcile.SyncMetadata `json:"previous_metadata"`

	// NewMetadata is the metadata written, nil when unchanged.
	NewMetadata *reconcile.SyncMetadata `json:"new_metadata,omitempty"`

	// URLsAdded is the merged count minus the previous count.
	URLsAdded int `json:"urls_added"`

	// TotalURLs is the size of the merged set.
	TotalURLs int `json:"total_urls"`

	// RedirectsDegraded is set when the redirect lists could not be read.
	RedirectsDegraded bool `json:"redirects_degraded"`

	// DryRun is set when the writes were planned but skipped.
	DryRun bool `json:"dry_run"`

	// Actions are the planned writes.
	Actions []reconcile.Action `json:"actions"`
}

// Option configures a Service.
type Option func(*Service)

// WithHistory records every sync run in h.
func WithHistory(h HistoryStore) Option {
	return func(s *Service) { s.history = h }
}

// WithArchive uploads a snapshot after every write.
func WithArchive(a Archiver) Option {
	return func(s *Service) { s.archive = a }
}

// OnWrite registers fn to run after the store has been rewritten.
func OnWrite(fn func()) Option {
	return func(s *Service) { s.onWrite = append(s.onWrite, fn) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service runs URL list syncs.
type Service struct {
	store      reconcile.Store
	sitemap    SitemapFetcher
	redirects  Redirects
	sitemapURL string
	logger     *zap.Logger
	history    HistoryStore
	archive    Archiver
	onWrite    []func()
	now        func() time.Time
}

// NewService creates a new sync service.
func NewService(store reconcile.Store, sitemap SitemapFetcher, redirects Redirects, sitemapURL string, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:      store,
		sitemap:    sitemap,
		redirects:  redirects,
		sitemapURL: sitemapURL,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Metadata returns the stored metadata, nil when none exists.
func (s *Service) Metadata(ctx context.Context) (*reconcile.SyncMetadata, error) {
	return s.store.GetMetadata(ctx)
}

// HistoryEnabled reports whether sync runs are recorded.
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

// History returns up to limit recorded runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]SyncRun, error) {
	if s.history == nil {
		return nil, fmt.Errorf("sync history is disabled")
	}
	return s.history.Recent(ctx, clampLimit(limit))
}

// Sync brings the stored URL list in line with the sitemap and redirect lists.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	return s.SyncWithOptions(ctx, reconcile.Options{})
}

// SyncWithOptions is Sync with control over the write step.
func (s *Service) SyncWithOptions(ctx context.Context, opts reconcile.Options) (*SyncResult, error) {
	run := &SyncRun{StartedAt: s.now().UTC(), DryRun: opts.DryRun}

	result, err := s.run(ctx, opts, run)

	run.FinishedAt = s.now().UTC()
	if err != nil {
		run.Status = string(reconcile.StateFailed)
		run.Error = err.Error()
	}
	s.record(ctx, run)

	return result, err
}

func (s *Service) run(ctx context.Context, opts reconcile.Options, run *SyncRun) (*SyncResult, error) {
	l := s.logger.With(zap.String("sitemap_url", s.sitemapURL), zap.Bool("dry_run", opts.DryRun))

	enter(l, reconcile.StateStart)
	previous, err := s.store.GetMetadata(ctx)
	if err != nil {
		return nil, fail(l, fmt.Errorf("failed to load metadata: %w", err))
	}
	if previous != nil {
		run.PreviousHash = previous.URLsHash
	}

	enter(l, reconcile.StateFetching)
	sitemapURLs, sitemapHash, err := s.sitemap.FetchURLs(ctx, s.sitemapURL)
	if err != nil {
		return nil, fail(l, fmt.Errorf("failed to fetch sitemap: %w", err))
	}
	redirects := s.redirects.Fetch(ctx)
	run.RedirectLists = redirects.Lists
	run.RedirectsDegraded = redirects.Degraded()

	enter(l, reconcile.StateMerging,
		zap.Int("sitemap_urls", sitemapURLs.Cardinality()),
		zap.String("sitemap_hash", sitemapHash),
		zap.Int("redirect_paths", cardinality(redirects.Paths)),
		zap.Bool("redirects_degraded", redirects.Degraded()))
	merged := reconcile.Merge(sitemapURLs, redirects.Paths)

	enter(l, reconcile.StateComparing, zap.Int("merged_urls", merged.Cardinality()))
	plan := reconcile.BuildPlan(previous, merged, s.sitemapURL, s.now())
	run.URLsCount = plan.Summary.TotalURLs
	run.URLsHash = plan.Hash

	result := &SyncResult{
		Status:            plan.Status(),
		PreviousMetadata:  previous,
		NewMetadata:       plan.Next,
		URLsAdded:         plan.Summary.URLsAdded,
		TotalURLs:         plan.Summary.TotalURLs,
		RedirectsDegraded: redirects.Degraded(),
		DryRun:            opts.DryRun,
		Actions:           plan.Actions,
	}
	run.Status = string(result.Status)
	run.URLsAdded = result.URLsAdded

	if plan.Status() == reconcile.StatusUnchanged {
		enter(l, reconcile.StateUnchanged, zap.String("hash", plan.Hash))
		return result, nil
	}

	enter(l, reconcile.StateWriting, zap.Int("actions", len(plan.Actions)))
	executed, err := reconcile.Apply(ctx, s.store, plan, opts)
	if err != nil {
		if executed > 0 {
			l.Error("URL list written but metadata write failed, stored metadata is stale",
				zap.Int("executed", executed),
				zap.String("hash", plan.Hash))
		}
		return nil, fail(l, err)
	}

	if !opts.DryRun {
		for _, fn := range s.onWrite {
			fn()
		}
		s.saveSnapshot(ctx, l, plan)
	}

	enter(l, reconcile.StateDone,
		zap.String("hash", plan.Hash),
		zap.Int("urls_added", plan.Summary.URLsAdded))
	return result, nil
}

func (s *Service) saveSnapshot(ctx context.Context, l *zap.Logger, plan *reconcile.Plan) {
	if s.archive == nil || plan.Next == nil {
		return
	}
	key, err := s.archive.Save(ctx, *plan.Next, plan.URLs)
	if err != nil {
		l.Warn("Failed to archive URL list snapshot", zap.Error(err))
		return
	}
	l.Info("URL list snapshot archived", zap.String("key", key))
}

func (s *Service) record(ctx context.Context, run *SyncRun) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Warn("Failed to record sync run", zap.Error(err))
	}
}

func enter(l *zap.Logger, state reconcile.State, fields ...zap.Field) {
	l.Info("Sync state", append([]zap.Field{zap.String("state", string(state))}, fields...)...)
}

func fail(l *zap.Logger, err error) error {
	l.Error("Sync state", zap.String("state", string(reconcile.StateFailed)), zap.Error(err))
	return err
}

func cardinality(set mapset.Set[string]) int {
	if set == nil {
		return 0
	}
	return set.Cardinality()
}
