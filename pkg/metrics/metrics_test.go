package metrics_test

import (
	"context"
	"exposure/pkg/metrics"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

func TestDefaultBucketsSorted(t *testing.T) {
	require.True(t, slices.IsSorted(metrics.DefaultBuckets))
	require.Contains(t, metrics.DefaultBuckets, 5.0, "probe timeout must fall on a bucket boundary")
}

func TestSetup(t *testing.T) {
	registry := prometheus.NewRegistry()
	shutdown, err := metrics.Setup(registry)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := otel.Meter("metrics_test").Int64Counter("exposure.test.events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3, metric.WithAttributes())

	families, err := registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "exposure_test_events") {
			found = true
			require.InDelta(t, 3.0, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "counter should be exported to the registry")
}
