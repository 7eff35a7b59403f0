package syncerr

import (
	"errors"
	"fmt"
	"strings"
)

// FetchError reports a failed remote call.
type FetchError struct {
	// Op names the logical operation (e.g. "fetch sitemap").
	Op string
	// URL is the requested resource.
	URL string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.URL != "" {
		b.WriteString(" ")
		b.WriteString(e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a payload that could not be decoded.
type ParseError struct {
	// Source describes what was being parsed (e.g. the sitemap URL).
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError lists required configuration values that are missing.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

// IsFetch reports whether err is or wraps a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsParse reports whether err is or wraps a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsNotFound reports whether err is a FetchError carrying a 404 status.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.StatusCode == 404
}
