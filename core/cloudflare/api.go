package cloudflare

import (
	"context"
	"strings"

	"sitemap-sync/core/syncerr"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

// getEnvelope performs a GET and decodes the API envelope into out.
func getEnvelope[T any](ctx context.Context, r *req.Request, op, url string, out *envelope[T]) error {
	resp, err := r.SetContext(ctx).Get(url)
	if err := checkResponse(resp, err, op, url); err != nil {
		return err
	}

	body, err := resp.ToBytes()
	if err != nil {
		return &syncerr.FetchError{Op: op, URL: url, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &syncerr.ParseError{Source: op, Err: err}
	}
	if !out.Success {
		return &syncerr.FetchError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: apiErrors(out.Errors)}
	}
	return nil
}

// checkResponse maps transport failures and non-2xx statuses to FetchError.
func checkResponse(resp *req.Response, requestErr error, op, url string) error {
	if requestErr != nil {
		return &syncerr.FetchError{Op: op, URL: url, Err: requestErr}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &syncerr.FetchError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: bodyError(resp)}
	}
	return nil
}

// bodyError extracts the API error messages from a failed response, if any.
func bodyError(resp *req.Response) error {
	body, err := resp.ToBytes()
	if err != nil || len(body) == 0 {
		return nil
	}
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil || len(env.Errors) == 0 {
		return nil
	}
	return apiErrors(env.Errors)
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
