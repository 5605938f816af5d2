package exposure_test

import (
	"exposure/internal/exposure"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "bare host", in: "example.com", out: "example.com"},
		{name: "https scheme, www, path and query", in: "https://www.example.com/foo?x=1", out: "example.com"},
		{name: "http scheme", in: "http://example.com", out: "example.com"},
		{name: "www only", in: "www.example.com", out: "example.com"},
		{name: "trailing slash", in: "example.com/", out: "example.com"},
		{name: "query without path", in: "example.com?x=1", out: "example.com"},
		{name: "fragment", in: "example.com#top", out: "example.com"},
		{name: "keeps port", in: "https://example.com:8443/admin", out: "example.com:8443"},
		{name: "keeps subdomain", in: "https://api.example.com", out: "api.example.com"},
		{name: "upper case", in: "HTTPS://WWW.Example.COM/Path", out: "example.com"},
		{name: "surrounding spaces", in: "  example.com  ", out: "example.com"},
		{name: "repeated www", in: "www.www.example.com", out: "example.com"},
		{name: "empty", in: "", out: ""},
		{name: "only scheme", in: "https://", out: ""},
		{name: "only path", in: "/etc/passwd", out: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, exposure.NormalizeDomain(tc.in))
		})
	}
}

func TestNormalizeDomain_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", "example.com", "https://www.example.com/foo?x=1", "www.www.example.com",
		"https:// www.example.com", "http://http://example.com", "www.https://example.com/a",
		"WWW. example.com /x", "example.com:8080", "ftp://example.com", "https://www./x",
		"ÉXAMPLE.com", "https://example.com#frag/x", "?", "www.",
	}

	for _, in := range inputs {
		once := exposure.NormalizeDomain(in)
		require.Equal(t, once, exposure.NormalizeDomain(once), "input %q", in)
	}
}
