package storage

import (
	"context"
	"exposure/pkg/domain"
	"time"
)

// UserScans groups a page of scans returned for a user together with an
// optional NextCursor used for pagination.
type UserScans struct {
	Scans []domain.Scan
	// NextCursor is the created_at of the last scan on this page. It is nil
	// when there is no next page.
	NextCursor *time.Time
}

// ScanStorage defines writes and queries on scans.
type ScanStorage interface {
	// StoreScans inserts one or more scans and returns the stored rows including
	// generated fields (id, created_at, updated_at).
	StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error)
	// UpdateScanStatus moves the scan from status from to status to and bumps
	// updated_at, in one statement. It returns nil without error when the scan
	// does not exist or is no longer in from.
	UpdateScanStatus(ctx context.Context, ID domain.ScanID, from, to domain.ScanStatus) (*domain.Scan, error)
	// FailStaleScans marks every scan that has been running since before the
	// given time as failed and returns them.
	FailStaleScans(ctx context.Context, before time.Time) ([]domain.Scan, error)
	// UserScans returns a page of scans for a user created before the optional
	// cursor, newest first. A non-empty status filters the page.
	UserScans(ctx context.Context,
		userID domain.UserID,
		status domain.ScanStatus,
		cursor time.Time,
		limit uint) (UserScans, error)
	// ScanByID fetches a scan owned by userID. Returns nil when not found.
	ScanByID(ctx context.Context, userID domain.UserID, ID domain.ScanID) (*domain.Scan, error)
}
