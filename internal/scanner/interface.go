// Package scanner owns the scan lifecycle: it accepts scan requests, runs them
// in the background through the exposure engine, and guarantees every scan ends
// completed or failed. It also serves the read side of scans to the API.
package scanner

import (
	"context"
	"exposure/internal/exposure"
	"exposure/pkg/domain"
)

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	// Start records a running scan for rawDomain and schedules its background run.
	Start(ctx context.Context, userID domain.UserID, rawDomain string) (*domain.Scan, error)
	// Run probes the scan's domain and drives it to a terminal state.
	Run(ctx context.Context, args JobArgs) error
	// ReapStale fails scans left running past their deadline and returns how many it failed.
	ReapStale(ctx context.Context) (int, error)
	UserScans(ctx context.Context,
		userID domain.UserID,
		status domain.ScanStatus,
		cursor string,
		limit uint) ([]domain.Scan, string, error)
	Result(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.Scan, error)
	Patterns() []exposure.Pattern
}
