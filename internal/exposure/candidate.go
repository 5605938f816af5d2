package exposure

import "exposure/pkg/domain"

// Candidate is a URL built from a hostname and one catalog pattern that has not
// been probed yet.
type Candidate struct {
	URL         string
	Path        string
	Description string
	Severity    domain.Severity
}

// Expand builds one https candidate per pattern, in catalog order.
// Plain http is never tried.
func Expand(hostname string, patterns []Pattern) []Candidate {
	out := make([]Candidate, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Candidate{
			URL:         "https://" + hostname + p.Path,
			Path:        p.Path,
			Description: p.Description,
			Severity:    p.Severity,
		})
	}

	return out
}
