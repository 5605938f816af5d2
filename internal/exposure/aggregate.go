package exposure

import (
	"cmp"
	"exposure/pkg/domain"
	"slices"
)

// Aggregate attaches scan and user context to confirmed findings. It returns a
// non-nil empty slice when there is nothing to persist.
func Aggregate(findings []domain.Finding, scanID domain.ScanID, userID domain.UserID) []domain.Finding {
	out := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		f.ScanID = scanID
		f.UserID = userID
		out = append(out, f)
	}

	return out
}

// SortFindings orders findings by severity, highest first, then by URL.
func SortFindings(findings []domain.Finding) {
	slices.SortStableFunc(findings, func(a, b domain.Finding) int {
		if c := cmp.Compare(b.Severity.Rank(), a.Severity.Rank()); c != 0 {
			return c
		}

		return cmp.Compare(a.URL, b.URL)
	})
}
