package exposure

import "strings"

// NormalizeDomain reduces user input to a bare hostname. It strips a leading
// http:// or https:// scheme, any leading "www." labels, and everything from the
// first "/", "?" or "#" on. The result is lower-cased and trimmed.
//
// It never fails; an empty result must be rejected by the caller.
// NormalizeDomain(NormalizeDomain(s)) == NormalizeDomain(s) for every s.
func NormalizeDomain(input string) string {
	host := strings.ToLower(strings.TrimSpace(input))

	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(host, scheme) {
			host = strings.TrimSpace(host[len(scheme):])

			break
		}
	}

	for strings.HasPrefix(host, "www.") {
		host = strings.TrimSpace(host[len("www."):])
	}

	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}

	return strings.TrimSpace(host)
}
