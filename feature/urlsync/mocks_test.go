package urlsync

import (
	"context"

	"sitemap-sync/core/cloudflare"
	"sitemap-sync/core/reconcile"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/mock"
)

type mockSitemap struct {
	mock.Mock
}

func (m *mockSitemap) FetchURLs(ctx context.Context, sitemapURL string) (mapset.Set[string], string, error) {
	args := m.Called(ctx, sitemapURL)
	set, _ := args.Get(0).(mapset.Set[string])
	return set, args.String(1), args.Error(2)
}

type mockRules struct {
	mock.Mock
}

func (m *mockRules) ListLists(ctx context.Context) ([]cloudflare.RuleList, error) {
	args := m.Called(ctx)
	lists, _ := args.Get(0).([]cloudflare.RuleList)
	return lists, args.Error(1)
}

func (m *mockRules) ListItems(ctx context.Context, listID string) ([]cloudflare.ListItem, error) {
	args := m.Called(ctx, listID)
	items, _ := args.Get(0).([]cloudflare.ListItem)
	return items, args.Error(1)
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Record(ctx context.Context, run *SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockHistory) Recent(ctx context.Context, limit int) ([]SyncRun, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]SyncRun)
	return runs, args.Error(1)
}

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Save(ctx context.Context, metadata reconcile.SyncMetadata, urls []string) (string, error) {
	args := m.Called(ctx, metadata, urls)
	return args.String(0), args.Error(1)
}

// staticRedirects returns a fixed result.
type staticRedirects RedirectResult

func (s staticRedirects) Fetch(context.Context) RedirectResult {
	return RedirectResult(s)
}

func noRedirects() staticRedirects {
	return staticRedirects{Paths: mapset.NewThreadUnsafeSet[string]()}
}

func redirectItem(source string) cloudflare.ListItem {
	return cloudflare.ListItem{
		ID:       source,
		Redirect: &cloudflare.Redirect{SourceURL: &source, TargetURL: "https://example.com/", StatusCode: 301},
	}
}
