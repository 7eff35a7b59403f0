package urlsync

import (
	"context"

	"sitemap-sync/core/cloudflare"
	"sitemap-sync/core/urlpath"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// RuleLister reads account rule lists.
type RuleLister interface {
	ListLists(ctx context.Context) ([]cloudflare.RuleList, error)
	ListItems(ctx context.Context, listID string) ([]cloudflare.ListItem, error)
}

// RedirectResult is the outcome of reading the redirect lists.
// Err is set when the lists could not be read; Paths is then empty.
type RedirectResult struct {
	Paths mapset.Set[string]
	Lists int
	Err   error
}

// Degraded reports whether the redirect lists were skipped.
func (r RedirectResult) Degraded() bool {
	return r.Err != nil
}

// RedirectSource collects the source paths of every redirect list item.
type RedirectSource struct {
	rules  RuleLister
	logger *zap.Logger
}

// NewRedirectSource creates a redirect source backed by rules.
func NewRedirectSource(rules RuleLister, logger *zap.Logger) *RedirectSource {
	return &RedirectSource{rules: rules, logger: logger}
}

// Fetch enumerates every list and returns the normalized source paths of its
// redirect items. It never fails: any error yields an empty result with Err set.
func (s *RedirectSource) Fetch(ctx context.Context) RedirectResult {
	lists, err := s.rules.ListLists(ctx)
	if err != nil {
		return s.degrade(err)
	}

	paths := mapset.NewThreadUnsafeSet[string]()
	for _, list := range lists {
		s.logger.Debug("Reading redirect list",
			zap.String("list", list.Name),
			zap.String("list_id", list.ID))

		items, err := s.rules.ListItems(ctx, list.ID)
		if err != nil {
			return s.degrade(err)
		}

		for _, item := range items {
			if item.Redirect == nil || item.Redirect.SourceURL == nil {
				continue
			}
			paths.Add(urlpath.Normalize(*item.Redirect.SourceURL))
		}

		s.logger.Debug("Redirect list read",
			zap.String("list_id", list.ID),
			zap.Int("items", len(items)))
	}

	s.logger.Info("Redirect sources collected",
		zap.Int("lists", len(lists)),
		zap.Int("paths", paths.Cardinality()))

	return RedirectResult{Paths: paths, Lists: len(lists)}
}

func (s *RedirectSource) degrade(err error) RedirectResult {
	s.logger.Warn("Redirect lists unavailable, continuing with sitemap only", zap.Error(err))
	return RedirectResult{Paths: mapset.NewThreadUnsafeSet[string](), Err: err}
}
