package storage

import (
	"context"
	"exposure/pkg/domain"
)

// FindingStorage appends findings to scans and reads them back for display.
type FindingStorage interface {
	// StoreFindings appends findings. A finding already stored for the same scan
	// and URL is skipped, so each finding is persisted exactly once.
	StoreFindings(ctx context.Context, findings ...domain.Finding) error
	// FindingsByScanIDs returns the findings of the given scans keyed by scan,
	// each list ordered by severity (highest first) then URL.
	FindingsByScanIDs(ctx context.Context, IDs ...domain.ScanID) (map[domain.ScanID][]domain.Finding, error)
}
