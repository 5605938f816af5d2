// Package redisnotifier implements notifier.Notifier on redis pub/sub. Each
// user gets a channel named "<prefix>:<userID>" carrying JSON encoded events.
package redisnotifier

import (
	"context"
	"encoding/json"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/notifier"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannelPrefix is used when Options.ChannelPrefix is empty.
const DefaultChannelPrefix = "exposure:events"

// Options configure the redis connection.
type Options struct {
	Addr          string
	Password      string
	DB            int
	ChannelPrefix string
	DialTimeout   time.Duration
}

// Notifier publishes and relays events through redis.
type Notifier struct {
	client *redis.Client
	prefix string
}

var _ notifier.Notifier = (*Notifier)(nil)

// New connects to redis and verifies the connection with a PING.
func New(ctx context.Context, opts Options) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return NewWithClient(client, opts.ChannelPrefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string) *Notifier {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}

	return &Notifier{client: client, prefix: prefix}
}

func (n *Notifier) channel(userID domain.UserID) string {
	return n.prefix + ":" + userID.String()
}

// Publish sends events in one pipeline round trip.
func (n *Notifier) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	pipe := n.client.Pipeline()
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("could not marshal event: %w", err)
		}
		pipe.Publish(ctx, n.channel(e.UserID), data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not publish events: %w", err)
	}

	return nil
}

// Subscribe relays the user's events until the subscription is closed or ctx ends.
func (n *Notifier) Subscribe(ctx context.Context, userID domain.UserID) (notifier.Subscription, error) {
	ps := n.client.Subscribe(ctx, n.channel(userID))
	// wait for the confirmation so no event published after Subscribe returns is missed
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()

		return nil, fmt.Errorf("could not subscribe to events: %w", err)
	}

	s := &subscription{
		ps:   ps,
		ch:   make(chan domain.Event),
		done: make(chan struct{}),
	}
	go s.relay(ctx)

	return s, nil
}

// Close closes the redis client.
func (n *Notifier) Close() error {
	if err := n.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}

type subscription struct {
	ps   *redis.PubSub
	ch   chan domain.Event
	done chan struct{}
	once sync.Once
}

func (s *subscription) Events() <-chan domain.Event { return s.ch }

func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})

	return err
}

func (s *subscription) relay(ctx context.Context) {
	defer close(s.ch)
	defer func() { _ = s.Close() }()

	msgs := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			var e domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				logger.Warn(ctx, "dropping malformed event", zap.String("channel", msg.Channel), zap.Error(err))

				continue
			}

			select {
			case s.ch <- e:
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}
		}
	}
}
