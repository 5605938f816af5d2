package domain

import "strings"

// Severity grades how sensitive an exposed path is.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Rank orders severities: Critical > High > Medium > Low. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ParseSeverity maps a case-insensitive name to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	for _, sev := range []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
		if strings.EqualFold(s, string(sev)) {
			return sev, true
		}
	}

	return "", false
}

// Finding is a candidate URL confirmed reachable on the scanned domain.
// It is immutable once created and persisted exactly once.
type Finding struct {
	// URL is the fully-qualified probed URL.
	URL string `json:"url"`
	// Path is the catalog path the URL was built from.
	Path string `json:"path"`
	// Description explains what the exposed path is.
	Description string `json:"description"`
	// Severity grades the exposure.
	Severity Severity `json:"severity"`
	// StatusCode is the HTTP status the probe observed.
	StatusCode int `json:"statusCode"`

	// ScanID references the owning scan.
	ScanID ScanID `json:"scanId"`
	// UserID references the owner of the scan.
	UserID UserID `json:"userId"`
}
