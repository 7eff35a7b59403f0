package cloudflare

import (
	"context"
	"strconv"

	"github.com/imroc/req/v3"
)

// RulesClient reads account rule lists.
type RulesClient struct {
	client    *req.Client
	baseURL   string
	accountID string
}

// NewRulesClient creates a rule list client authenticated with the
// email/global key pair of cfg. The given client is cloned.
func NewRulesClient(client *req.Client, cfg Config) *RulesClient {
	return &RulesClient{
		client: client.Clone().
			SetCommonHeader("X-Auth-Email", cfg.Email).
			SetCommonHeader("X-Auth-Key", cfg.GlobalAPIKey),
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
	}
}

// ListLists returns the rule lists of the account.
func (c *RulesClient) ListLists(ctx context.Context) ([]RuleList, error) {
	u := joinURL(c.baseURL, "accounts", c.accountID, "rules", "lists")

	var env envelope[[]RuleList]
	if err := getEnvelope(ctx, c.client.R(), "list rule lists", u, &env); err != nil {
		return nil, err
	}
	return env.Result, nil
}

// ListItems returns every item of the list, requesting PageSize items per
// page until page*PageSize reaches the total count reported by the API.
// Pages are fetched sequentially; the first failing page aborts the call.
func (c *RulesClient) ListItems(ctx context.Context, listID string) ([]ListItem, error) {
	u := joinURL(c.baseURL, "accounts", c.accountID, "rules", "lists", listID, "items")

	var items []ListItem
	for page := 1; ; page++ {
		var env envelope[[]ListItem]
		r := c.client.R().
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("per_page", strconv.Itoa(PageSize))
		if err := getEnvelope(ctx, r, "list rule items "+listID, u, &env); err != nil {
			return nil, err
		}

		items = append(items, env.Result...)

		total := 0
		if env.ResultInfo != nil {
			total = env.ResultInfo.TotalCount
		}
		if page*PageSize >= total || len(env.Result) == 0 {
			break
		}
	}
	return items, nil
}
