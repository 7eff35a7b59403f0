// Package sitemap downloads an XML sitemap and extracts its locations.
//
// Every <loc> element in the sitemaps.org 0.9 namespace is collected,
// wherever it appears, so both <urlset> and <sitemapindex> documents are
// understood. Locations are normalized with urlpath.Normalize.
//
// # Errors
//
//   - *syncerr.FetchError: network failure or non-2xx response.
//   - *syncerr.ParseError: the body is not a well-formed XML document.
package sitemap
