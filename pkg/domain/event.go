package domain

import "time"

// EventType names a lifecycle notification.
type EventType string

const (
	EventScanRunning    EventType = "scan.running"
	EventScanCompleted  EventType = "scan.completed"
	EventScanFailed     EventType = "scan.failed"
	EventFindingCreated EventType = "finding.created"
)

// StatusEventType returns the event published when a scan enters status.
func StatusEventType(status ScanStatus) EventType {
	switch status {
	case ScanStatusCompleted:
		return EventScanCompleted
	case ScanStatusFailed:
		return EventScanFailed
	default:
		return EventScanRunning
	}
}

// Event is published to observers whenever a scan transitions or gains a finding.
type Event struct {
	Type   EventType  `json:"type"`
	ScanID ScanID     `json:"scanId"`
	UserID UserID     `json:"userId"`
	Status ScanStatus `json:"status,omitempty"`
	// Finding is set for EventFindingCreated only.
	Finding *Finding  `json:"finding,omitempty"`
	At      time.Time `json:"at"`
}
