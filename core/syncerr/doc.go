// Package syncerr defines the error kinds surfaced by the sync pipeline.
//
//   - FetchError: a remote call failed (network error or non-2xx status).
//   - ParseError: a remote payload could not be decoded (malformed XML/JSON).
//   - ConfigError: required configuration is missing at startup.
//
// All kinds wrap their cause and can be matched with errors.As.
package syncerr
