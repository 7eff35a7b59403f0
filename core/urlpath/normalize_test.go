package urlpath_test

import (
	"strings"
	"testing"

	"sitemap-sync/core/urlpath"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"AbsoluteNoSlash", "https://example.com/a", "/a/"},
		{"AbsoluteWithSlash", "https://example.com/b/", "/b/"},
		{"QueryAndFragment", "https://example.com/c?x=1#top", "/c/"},
		{"HostOnly", "https://example.com", "/"},
		{"RawPath", "/blog/post", "/blog/post/"},
		{"Root", "/", "/"},
		{"Empty", "", "/"},
		{"PercentEncoded", "https://example.com/caf%C3%A9", "/caf%C3%A9/"},
		{"EncodedSlash", "https://example.com/a%2Fb", "/a%2Fb/"},
		{"LeadingDoubleSlash", "https://example.com//x/y", "/x/y/"},
		{"Malformed", "%zz", "/%zz/"},
		{"NonASCII", "https://example.com/café", "/café/"},
		{"NonASCIIPath", "/ü/x", "/ü/x/"},
		{"Space", "https://example.com/a b", "/a b/"},
		{"SchemeRelative", "//host/path", "/path/"},
		{"Relative", "relative", "/relative/"},
		{"ColonInPath", "https://example.com/a:b", "/a:b/"},
		{"FragmentOnly", "https://example.com/d#x?y", "/d/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urlpath.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"https://example.com/a",
		"https://example.com//x/y",
		"https://example.com/a b",
		"https://example.com/caf%C3%A9/",
		"//host/path",
		"/already/",
		"relative",
		"%zz",
		"",
		"https://example.com/a%2Fb?q=1",
		"https://example.com/café",
		"a:b:c",
		"mailto:ops",
	}

	for _, in := range inputs {
		once := urlpath.Normalize(in)
		assert.Equal(t, once, urlpath.Normalize(once), "input %q", in)
		assert.True(t, strings.HasPrefix(once, "/"), "input %q", in)
		assert.True(t, strings.HasSuffix(once, "/"), "input %q", in)
	}
}

func TestNormalizeAll(t *testing.T) {
	got := urlpath.NormalizeAll([]string{"https://x/c", "/a"})
	assert.Equal(t, []string{"/c/", "/a/"}, got)
}
