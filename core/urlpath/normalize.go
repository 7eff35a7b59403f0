package urlpath

import (
	"strings"
)

// Normalize returns the canonical path for raw.
//
// The path is taken verbatim from raw: scheme, host, query and fragment are
// dropped, and percent escapes, spaces and non-ASCII runes are kept as
// written. The result always starts and ends with a slash, so
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	path := rawPath(raw)
	// "//a/b" would read back as host "a" on the next pass.
	if strings.HasPrefix(path, "//") {
		path = "/" + strings.TrimLeft(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// NormalizeAll normalizes every entry of raws, preserving order.
func NormalizeAll(raws []string) []string {
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

// rawPath splits raw as [scheme:][//authority]path[?query][#fragment] and
// returns path without decoding or re-encoding it.
func rawPath(raw string) string {
	rest := raw
	if i := strings.IndexByte(rest, ':'); i > 0 && isScheme(rest[:i]) {
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		j := strings.IndexAny(rest, "/?#")
		if j < 0 {
			return ""
		}
		rest = rest[j:]
	}
	if j := strings.IndexAny(rest, "?#"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
