package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ScanID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id ScanID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *ScanID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ScanStatus represents the lifecycle state of a scan.
type ScanStatus string

const (
	// ScanStatusPending exists only between building a scan record and persisting it.
	// A pending scan is never stored.
	ScanStatusPending ScanStatus = "pending"
	// ScanStatusRunning indicates the scan record exists and probing is in progress.
	ScanStatusRunning ScanStatus = "running"
	// ScanStatusCompleted indicates probing finished and all findings were persisted.
	ScanStatusCompleted ScanStatus = "completed"
	// ScanStatusFailed indicates the scan could not finish; no further transition occurs.
	ScanStatusFailed ScanStatus = "failed"
)

// IsTerminal reports whether no further transition may leave this status.
func (s ScanStatus) IsTerminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed
}

// Valid reports whether s is one of the known statuses.
func (s ScanStatus) Valid() bool {
	switch s {
	case ScanStatusPending, ScanStatusRunning, ScanStatusCompleted, ScanStatusFailed:
		return true
	default:
		return false
	}
}

// Scan represents one user-initiated probing run against one domain.
type Scan struct {
	// ID is the unique identifier of the scan, assigned by the store on creation.
	ID ScanID `json:"id"`
	// UserID is the identifier of the user who requested the scan.
	UserID UserID `json:"userId"`

	// Domain is the raw user input, preserved verbatim for display.
	Domain string `json:"domain"`
	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`

	// Findings holds the confirmed exposures of the scan. It is only populated by
	// read queries; the lifecycle never reads it back.
	Findings []Finding `json:"findings,omitempty"`

	// CreatedAt is the time when the scan record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt changes only on a status transition.
	UpdatedAt time.Time `json:"updatedAt"`
}
