// Package pathcheck answers, for a request path, what the edge worker in
// front of the site does with it: let it through, or redirect it to the
// trailing-slash form recorded in the stored URL list.
//
// The stored list is read from Workers KV and kept in an expiring LRU cache,
// so repeated checks do not hit the API.
//
// # HTTP Endpoints
//
//   - GET /check-path?path=/foo : Returns the decision for /foo.
package pathcheck
