package urlsync

import (
	"context"
	"testing"

	"sitemap-sync/core/cloudflare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRedirectSource_Fetch(t *testing.T) {
	rules := new(mockRules)
	rules.On("ListLists", mock.Anything).Return([]cloudflare.RuleList{
		{ID: "l1", Name: "legacy", Kind: "redirect"},
		{ID: "l2", Name: "campaigns", Kind: "redirect"},
	}, nil)
	rules.On("ListItems", mock.Anything, "l1").Return([]cloudflare.ListItem{
		redirectItem("https://x/c"),
		redirectItem("https://x/d/?ref=1"),
		{ID: "ip-only"},
	}, nil)
	rules.On("ListItems", mock.Anything, "l2").Return([]cloudflare.ListItem{
		redirectItem("/c/"),
		{ID: "no-source", Redirect: &cloudflare.Redirect{TargetURL: "https://x/"}},
	}, nil)

	result := NewRedirectSource(rules, zap.NewNop()).Fetch(context.Background())

	assert.NoError(t, result.Err)
	assert.False(t, result.Degraded())
	assert.Equal(t, 2, result.Lists)
	assert.ElementsMatch(t, []string{"/c/", "/d/"}, result.Paths.ToSlice())
	rules.AssertExpectations(t)
}

func TestRedirectSource_ListsUnavailable(t *testing.T) {
	rules := new(mockRules)
	rules.On("ListLists", mock.Anything).Return(nil, assert.AnError)

	result := NewRedirectSource(rules, zap.NewNop()).Fetch(context.Background())

	assert.ErrorIs(t, result.Err, assert.AnError)
	assert.True(t, result.Degraded())
	assert.Equal(t, 0, result.Paths.Cardinality())
	rules.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestRedirectSource_ItemsUnavailable(t *testing.T) {
	rules := new(mockRules)
	rules.On("ListLists", mock.Anything).Return([]cloudflare.RuleList{{ID: "l1"}, {ID: "l2"}}, nil)
	rules.On("ListItems", mock.Anything, "l1").Return([]cloudflare.ListItem{redirectItem("/kept")}, nil)
	rules.On("ListItems", mock.Anything, "l2").Return(nil, assert.AnError)

	result := NewRedirectSource(rules, zap.NewNop()).Fetch(context.Background())

	assert.True(t, result.Degraded())
	assert.Equal(t, 0, result.Paths.Cardinality(), "a partial read is discarded")
}

func TestRedirectSource_EmptySourceKept(t *testing.T) {
	rules := new(mockRules)
	rules.On("ListLists", mock.Anything).Return([]cloudflare.RuleList{{ID: "l1"}}, nil)
	rules.On("ListItems", mock.Anything, "l1").Return([]cloudflare.ListItem{redirectItem("")}, nil)

	result := NewRedirectSource(rules, zap.NewNop()).Fetch(context.Background())

	assert.ElementsMatch(t, []string{"/"}, result.Paths.ToSlice())
}
