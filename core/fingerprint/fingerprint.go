package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"unicode/utf16"

	mapset "github.com/deckarep/golang-set/v2"
)

const hexDigits = "0123456789abcdef"

// Of returns the fingerprint of set. Insertion order does not matter.
func Of(set mapset.Set[string]) string {
	if set == nil {
		return Strings(nil)
	}
	return Strings(set.ToSlice())
}

// Strings returns the fingerprint of the distinct values in paths.
func Strings(paths []string) string {
	sum := md5.Sum(Canonical(paths))
	return hex.EncodeToString(sum[:])
}

// Canonical returns the encoding that is hashed: the sorted, de-duplicated
// values as a JSON array.
func Canonical(paths []string) []byte {
	sorted := dedupe(paths)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteByte('[')
	for i, p := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		quote(&b, p)
	}
	b.WriteByte(']')
	return []byte(b.String())
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// quote writes s as an ASCII-only JSON string.
func quote(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			writeEscape(b, r1)
			writeEscape(b, r2)
		default:
			writeEscape(b, r)
		}
	}
	b.WriteByte('"')
}

func writeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xf])
	b.WriteByte(hexDigits[(r>>8)&0xf])
	b.WriteByte(hexDigits[(r>>4)&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
