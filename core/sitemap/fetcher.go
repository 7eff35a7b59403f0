package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"sitemap-sync/core/fingerprint"
	"sitemap-sync/core/syncerr"
	"sitemap-sync/core/urlpath"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/imroc/req/v3"
	"go.uber.org/zap"
)

// Namespace is the sitemap protocol XML namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Fetcher retrieves sitemap documents over HTTP.
type Fetcher struct {
	client *req.Client
	logger *zap.Logger
}

// NewFetcher creates a new sitemap fetcher.
func NewFetcher(client *req.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// FetchURLs downloads sitemapURL and returns the set of normalized paths it
// lists together with the fingerprint of that set.
func (f *Fetcher) FetchURLs(ctx context.Context, sitemapURL string) (mapset.Set[string], string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(sitemapURL)
	if err != nil {
		return nil, "", &syncerr.FetchError{Op: "fetch sitemap", URL: sitemapURL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &syncerr.FetchError{Op: "fetch sitemap", URL: sitemapURL, StatusCode: resp.StatusCode}
	}

	body, err := resp.ToBytes()
	if err != nil {
		return nil, "", &syncerr.FetchError{Op: "read sitemap", URL: sitemapURL, Err: err}
	}

	locs, err := ParseLocations(body)
	if err != nil {
		return nil, "", &syncerr.ParseError{Source: sitemapURL, Err: err}
	}

	set := mapset.NewThreadUnsafeSetWithSize[string](len(locs))
	for _, loc := range locs {
		set.Add(urlpath.Normalize(loc))
	}
	hash := fingerprint.Of(set)

	f.logger.Info("Sitemap fetched",
		zap.String("url", sitemapURL),
		zap.Int("locations", len(locs)),
		zap.Int("paths", set.Cardinality()),
		zap.String("hash", hash),
	)
	return set, hash, nil
}

// ParseLocations returns the text of every sitemap <loc> element in data,
// in document order. It fails when data is not a single well-formed XML
// document.
func ParseLocations(data []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		locs     []string
		depth    int
		rootSeen bool
		inLoc    bool
		text     strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if rootSeen {
					return nil, errors.New("junk after document element")
				}
				rootSeen = true
			}
			depth++
			if t.Name.Space == Namespace && t.Name.Local == "loc" {
				inLoc = true
				text.Reset()
			}
		case xml.EndElement:
			depth--
			if inLoc && t.Name.Space == Namespace && t.Name.Local == "loc" {
				locs = append(locs, strings.TrimSpace(text.String()))
				inLoc = false
			}
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, errors.New("text outside document element")
			}
			if inLoc {
				text.Write(t)
			}
		}
	}

	if !rootSeen {
		return nil, errors.New("no document element")
	}
	return locs, nil
}
