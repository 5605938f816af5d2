// Package notifier defines the event channel scans publish their lifecycle to.
// Scans are only ever producers; browsers subscribe through the API.
package notifier

import (
	"context"
	"exposure/pkg/domain"
)

// Publisher sends events to observers. Delivery is best effort: callers log a
// failed publish and carry on.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Publisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Subscriber streams the events of a single user.
type Subscriber interface {
	Subscribe(ctx context.Context, userID domain.UserID) (Subscription, error)
}

// Subscription is a live feed. Events is closed once the subscription ends,
// either through Close or because the underlying channel went away.
type Subscription interface {
	Events() <-chan domain.Event
	Close() error
}

// Notifier is a complete event channel.
type Notifier interface {
	Publisher
	Subscriber

	Close() error
}
