package oauth2gateway

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	metrics := &NoopMetrics{}

	// Must not panic
	metrics.IncCounter("requests_total", map[string]string{"outcome": "ok"})
	metrics.ObserveHistogram("request_duration_seconds", 0.2, map[string]string{"outcome": "ok"})
}

func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetricsWithRegisterer(registry)

	tags := map[string]string{"outcome": "ok"}

	t.Run("IncCounter", func(t *testing.T) {
		metrics.IncCounter("test_requests_total", tags)
		metrics.IncCounter("test_requests_total", tags)

		vec, ok := metrics.counters["test_requests_total"]
		require.True(t, ok, "counter should be registered on first use")

		m := &dto.Metric{}
		require.NoError(t, vec.With(tags).Write(m))
		assert.Equal(t, float64(2), m.GetCounter().GetValue())
	})

	t.Run("ObserveHistogram", func(t *testing.T) {
		metrics.ObserveHistogram("test_duration_seconds", 0.25, tags)
		metrics.ObserveHistogram("test_duration_seconds", 0.75, tags)

		_, ok := metrics.histograms["test_duration_seconds"]
		require.True(t, ok, "histogram should be registered on first use")

		families, err := registry.Gather()
		require.NoError(t, err)

		var found bool
		for _, family := range families {
			if family.GetName() == "test_duration_seconds" {
				found = true
				require.Len(t, family.GetMetric(), 1)
				assert.Equal(t, uint64(2), family.GetMetric()[0].GetHistogram().GetSampleCount())
			}
		}
		assert.True(t, found, "histogram family should be gathered")
	})

	t.Run("concurrent use does not race", func(t *testing.T) {
		done := make(chan struct{}, 8)
		for i := 0; i < 8; i++ {
			go func() {
				metrics.IncCounter("test_concurrent_total", tags)
				metrics.ObserveHistogram("test_concurrent_seconds", 0.1, tags)
				done <- struct{}{}
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}
	})
}
