package batch_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mortgage-engine/internal/batch"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func newUsageRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()

	registry := prometheus.NewRegistry()
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mortgage_engine_calculations_total",
		Help: "Total number of schedule calculations.",
	}, []string{"mode", "status"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mortgage_engine_exports_total",
		Help: "Total number of schedule exports.",
	}, []string{"format", "status"})
	registry.MustRegister(calculations, exports)

	calculations.WithLabelValues("credit", "success").Add(3)
	calculations.WithLabelValues("installment", "success").Add(2)
	calculations.WithLabelValues("credit", "failure_validation").Inc()
	exports.WithLabelValues("xlsx", "success").Inc()
	exports.WithLabelValues("charts", "success").Inc()

	return registry
}

func TestUsageReportJobRun(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes the gathered counters", func(t *testing.T) {
		var logBuffer bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuffer, nil))

		job := batch.NewUsageReportJob(newUsageRegistry(t), logger)

		err := job.Run(ctx)
		assert.NoError(t, err)

		logOutput := logBuffer.String()
		assert.Contains(t, logOutput, "Usage report job finished.")
		assert.Contains(t, logOutput, "calculations_total=6")
		assert.Contains(t, logOutput, "calculations_failed=1")
		assert.Contains(t, logOutput, "credit_calculations=4")
		assert.Contains(t, logOutput, "installment_calculations=2")
		assert.Contains(t, logOutput, "exports_total=2")
	})

	t.Run("ignores unrelated metric families", func(t *testing.T) {
		var logBuffer bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuffer, nil))

		registry := prometheus.NewRegistry()
		other := prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Unrelated counter.",
		})
		registry.MustRegister(other)
		other.Add(42)

		job := batch.NewUsageReportJob(registry, logger)

		err := job.Run(ctx)
		assert.NoError(t, err)
		assert.Contains(t, logBuffer.String(), "calculations_total=0")
	})

	t.Run("returns an error when gathering fails", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		gatherer := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
			return nil, errors.New("gather failed")
		})

		job := batch.NewUsageReportJob(gatherer, logger)

		err := job.Run(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to gather metrics")
	})

	t.Run("panics on nil dependencies", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		assert.Panics(t, func() { batch.NewUsageReportJob(nil, logger) })
		assert.Panics(t, func() { batch.NewUsageReportJob(prometheus.NewRegistry(), nil) })
	})
}
