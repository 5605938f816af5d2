package notifier_test

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/notifier"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	n := notifier.Nop{}

	require.NoError(t, n.Publish(ctx, domain.Event{Type: domain.EventScanRunning}))

	sub, err := n.Subscribe(ctx, domain.UserID{1})
	require.NoError(t, err)

	select {
	case <-sub.Events():
		t.Fatal("nop subscription must not emit")
	default:
	}

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	_, open := <-sub.Events()
	require.False(t, open)
	require.NoError(t, n.Close())
}
