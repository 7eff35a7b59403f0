package cloudflare

import (
	"fmt"
	"strings"
)

// PageSize is the number of rule list items requested per page.
const PageSize = 100

// RuleList describes an account rule list.
type RuleList struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	NumItems int    `json:"num_items"`
}

// ListItem is an entry of a rule list. Only redirect lists carry Redirect.
type ListItem struct {
	ID       string    `json:"id"`
	Redirect *Redirect `json:"redirect,omitempty"`
}

// Redirect is the payload of a redirect list item.
type Redirect struct {
	SourceURL  *string `json:"source_url,omitempty"`
	TargetURL  string  `json:"target_url,omitempty"`
	StatusCode int     `json:"status_code,omitempty"`
}

// ResultInfo carries the pagination details of a list response.
type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// apiMessage is an entry of the errors/messages arrays of the API envelope.
type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the standard Cloudflare API response wrapper.
type envelope[T any] struct {
	Success    bool         `json:"success"`
	Errors     []apiMessage `json:"errors"`
	Result     T            `json:"result"`
	ResultInfo *ResultInfo  `json:"result_info,omitempty"`
}

// apiErrors flattens the envelope errors into a single error.
func apiErrors(msgs []apiMessage) error {
	if len(msgs) == 0 {
		return fmt.Errorf("api reported failure")
	}
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, fmt.Sprintf("%d: %s", m.Code, m.Message))
	}
	return fmt.Errorf("api errors: %s", strings.Join(parts, "; "))
}
