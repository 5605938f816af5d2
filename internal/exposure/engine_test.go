package exposure_test

import (
	"context"
	"exposure/internal/exposure"
	"exposure/pkg/domain"
	"exposure/pkg/prober"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEngine_Scan(t *testing.T) {
	var probed []string
	client := prober.Func(func(ctx context.Context, URL string) (int, error) {
		switch URL {
		case "https://example.com/.env":
			return 200, nil
		case "https://example.com/.git/config":
			return 404, nil
		}

		return hang(ctx)
	})

	engine := exposure.NewEngine(
		exposure.NewDispatcher(client, exposure.DispatcherOptions{Timeout: 50 * time.Millisecond}),
		nil,
	)

	candidates, err := engine.Candidates("https://www.example.com/foo?x=1")
	require.NoError(t, err)
	for _, c := range candidates {
		probed = append(probed, c.URL)
	}
	require.Len(t, probed, len(exposure.Catalog()))
	require.Contains(t, probed, "https://example.com/.env")

	findings, err := engine.Scan(context.Background(), "https://www.example.com/foo?x=1")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	require.Equal(t, "https://example.com/.env", findings[0].URL)
	require.Equal(t, "/.env", findings[0].Path)
	require.Equal(t, domain.SeverityCritical, findings[0].Severity)
	require.Equal(t, 200, findings[0].StatusCode)
}

func TestEngine_Scan_EmptyHostname(t *testing.T) {
	engine := exposure.NewEngine(exposure.NewDispatcher(prober.Func(func(context.Context, string) (int, error) {
		t.Fatal("no probe expected")

		return 0, nil
	}), exposure.DispatcherOptions{}), nil)

	for _, in := range []string{"", "   ", "https://", "www./path"} {
		_, err := engine.Scan(context.Background(), in)
		require.ErrorIs(t, err, exposure.ErrEmptyHostname, "input %q", in)
	}
}

func TestEngine_CustomPatterns(t *testing.T) {
	patterns := []exposure.Pattern{{Path: "/backup.zip", Description: "Backup archive", Severity: domain.SeverityHigh}}
	engine := exposure.NewEngine(exposure.NewDispatcher(prober.Func(func(context.Context, string) (int, error) {
		return 200, nil
	}), exposure.DispatcherOptions{}), patterns)

	require.Equal(t, patterns, engine.Patterns())

	findings, err := engine.Scan(context.Background(), "example.org")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	require.Equal(t, "https://example.org/backup.zip", findings[0].URL)
}

func TestEngine_Scan_Interrupted(t *testing.T) {
	engine := exposure.NewEngine(exposure.NewDispatcher(prober.Func(func(ctx context.Context, _ string) (int, error) {
		return hang(ctx)
	}), exposure.DispatcherOptions{Timeout: time.Minute}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Scan(ctx, "example.com")
	require.ErrorIs(t, err, context.Canceled)
}
