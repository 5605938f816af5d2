package redisnotifier_test

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/notifier/redisnotifier"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%d", host, port.Int())
}

func receive(t *testing.T, ch <-chan domain.Event) domain.Event {
	t.Helper()

	select {
	case e, ok := <-ch:
		require.True(t, ok, "subscription closed early")

		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	return domain.Event{}
}

func TestNotifier_PublishSubscribe(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	n, err := redisnotifier.New(ctx, redisnotifier.Options{Addr: addr, ChannelPrefix: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close() })

	alice := domain.UserID(uuid.New())
	bob := domain.UserID(uuid.New())
	scanID := domain.ScanID(uuid.New())

	sub, err := n.Subscribe(ctx, alice)
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()

	finding := &domain.Finding{
		URL: "https://example.com/.env", Path: "/.env", Severity: domain.SeverityCritical,
		StatusCode: 200, ScanID: scanID, UserID: alice,
	}
	require.NoError(t, n.Publish(ctx,
		domain.Event{Type: domain.EventScanRunning, ScanID: domain.ScanID(uuid.New()), UserID: bob},
		domain.Event{Type: domain.EventFindingCreated, ScanID: scanID, UserID: alice, Finding: finding},
		domain.Event{Type: domain.EventScanCompleted, ScanID: scanID, UserID: alice, Status: domain.ScanStatusCompleted},
	))

	first := receive(t, sub.Events())
	require.Equal(t, domain.EventFindingCreated, first.Type)
	require.Equal(t, scanID, first.ScanID)
	require.NotNil(t, first.Finding)
	require.Equal(t, "https://example.com/.env", first.Finding.URL)

	second := receive(t, sub.Events())
	require.Equal(t, domain.EventScanCompleted, second.Type)
	require.Equal(t, domain.ScanStatusCompleted, second.Status)

	require.NoError(t, sub.Close())
	require.Eventually(t, func() bool {
		_, open := <-sub.Events()

		return !open
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNotifier_SubscriptionEndsWithContext(t *testing.T) {
	addr := startRedis(t)

	n, err := redisnotifier.New(context.Background(), redisnotifier.Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := n.Subscribe(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-sub.Events()

		return !open
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNotifier_MalformedPayloadIsSkipped(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	n := redisnotifier.NewWithClient(client, "")

	userID := domain.UserID(uuid.New())
	sub, err := n.Subscribe(ctx, userID)
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()

	require.NoError(t, client.Publish(ctx, redisnotifier.DefaultChannelPrefix+":"+userID.String(), "{not json").Err())
	require.NoError(t, n.Publish(ctx, domain.Event{Type: domain.EventScanFailed, UserID: userID}))

	require.Equal(t, domain.EventScanFailed, receive(t, sub.Events()).Type)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redisnotifier.New(ctx, redisnotifier.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	require.Error(t, err)
}
