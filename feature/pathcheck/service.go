package pathcheck

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"sitemap-sync/core/reconcile"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// URLSource returns the stored URL list, nil when none exists.
type URLSource interface {
	GetURLs(ctx context.Context) ([]string, error)
}

// Action is what the worker does with a request.
type Action string

const (
	ActionPass     Action = "pass"
	ActionRedirect Action = "redirect"
)

// Reasons reported with a decision.
const (
	ReasonSpecial   = "special_path"
	ReasonStatic    = "static_asset"
	ReasonNoList    = "no_url_list"
	ReasonError     = "store_error"
	ReasonKnown     = "known"
	ReasonAddSlash  = "add_trailing_slash"
	ReasonDropSlash = "drop_trailing_slash"
	ReasonUnknown   = "unknown"
)

var staticExtensions = mapset.NewSet(
	".ico", ".png", ".jpg", ".jpeg", ".gif", ".css", ".js",
	".svg", ".woff", ".woff2", ".ttf", ".eot",
)

var specialPaths = mapset.NewSet("/robots.txt", "/sitemap.xml")

// Decision is the outcome of a path check.
type Decision struct {
	Path       string `json:"path"`
	Action     Action `json:"action"`
	Location   string `json:"location,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Reason     string `json:"reason"`
}

// Service decides how request paths are handled.
type Service struct {
	source URLSource
	cache  *expirable.LRU[string, mapset.Set[string]]
	logger *zap.Logger
}

// NewService creates a path check service caching the URL list for ttl.
func NewService(source URLSource, size int, ttl time.Duration, logger *zap.Logger) *Service {
	if size <= 0 {
		size = 1
	}
	return &Service{
		source: source,
		cache:  expirable.NewLRU[string, mapset.Set[string]](size, nil, ttl),
		logger: logger,
	}
}

// Check returns the decision for p.
func (s *Service) Check(ctx context.Context, p string) Decision {
	if specialPaths.Contains(p) {
		return pass(p, ReasonSpecial)
	}
	if staticExtensions.Contains(path.Ext(p)) {
		return pass(p, ReasonStatic)
	}

	known, err := s.knownURLs(ctx)
	if err != nil {
		s.logger.Error("Failed to read URL list", zap.Error(err))
		return pass(p, ReasonError)
	}
	if known == nil {
		s.logger.Warn("No URL list stored")
		return pass(p, ReasonNoList)
	}

	hasSlash := strings.HasSuffix(p, "/")
	withSlash := p
	if !hasSlash {
		withSlash = p + "/"
	}

	switch {
	case known.Contains(withSlash) && !hasSlash:
		return redirect(p, withSlash, ReasonAddSlash)
	case known.Contains(withSlash):
		return pass(p, ReasonKnown)
	case hasSlash && p != "/":
		return redirect(p, strings.TrimSuffix(p, "/"), ReasonDropSlash)
	default:
		return pass(p, ReasonUnknown)
	}
}

// Invalidate drops the cached URL list.
func (s *Service) Invalidate() {
	s.cache.Purge()
}

// knownURLs returns the stored list as a set, nil when none is stored.
// Absence and errors are not cached.
func (s *Service) knownURLs(ctx context.Context) (mapset.Set[string], error) {
	if set, ok := s.cache.Get(reconcile.KeyURLs); ok {
		return set, nil
	}

	urls, err := s.source.GetURLs(ctx)
	if err != nil || urls == nil {
		return nil, err
	}

	set := mapset.NewSet(urls...)
	s.cache.Add(reconcile.KeyURLs, set)
	s.logger.Info("URL list loaded", zap.Int("urls", set.Cardinality()))
	return set, nil
}

func pass(p, reason string) Decision {
	return Decision{Path: p, Action: ActionPass, Reason: reason}
}

func redirect(p, location, reason string) Decision {
	return Decision{
		Path:       p,
		Action:     ActionRedirect,
		Location:   location,
		StatusCode: http.StatusMovedPermanently,
		Reason:     reason,
	}
}
