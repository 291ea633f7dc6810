package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CalculationMetrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
}

type ExportMetrics struct {
	ExportsTotal *prometheus.CounterVec
}

var (
	Calculation = CalculationMetrics{
		CalculationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_engine_calculations_total",
				Help: "Total number of schedule calculations, by mode and outcome.",
			},
			[]string{"mode", "status"},
		),
		CalculationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mortgage_engine_calculation_duration_seconds",
				Help:    "Histogram of schedule calculation latencies.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"mode"},
		),
	}

	Export = ExportMetrics{
		ExportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_engine_exports_total",
				Help: "Total number of schedule exports, by format and outcome.",
			},
			[]string{"format", "status"},
		),
	}
)

func RecordCalculation(mode, status string, duration time.Duration) {
	Calculation.CalculationsTotal.WithLabelValues(mode, status).Inc()
	Calculation.CalculationDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

func RecordExport(format, status string) {
	Export.ExportsTotal.WithLabelValues(format, status).Inc()
}
