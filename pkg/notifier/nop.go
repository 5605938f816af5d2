package notifier

import (
	"context"
	"exposure/pkg/domain"
	"sync"
)

// Nop drops every event. Subscriptions stay open and silent until closed.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) Publish(context.Context, ...domain.Event) error { return nil }

func (Nop) Subscribe(context.Context, domain.UserID) (Subscription, error) {
	return &nopSubscription{ch: make(chan domain.Event)}, nil
}

func (Nop) Close() error { return nil }

type nopSubscription struct {
	ch   chan domain.Event
	once sync.Once
}

func (s *nopSubscription) Events() <-chan domain.Event { return s.ch }

func (s *nopSubscription) Close() error {
	s.once.Do(func() { close(s.ch) })

	return nil
}
