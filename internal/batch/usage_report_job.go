package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// UsageReportJob periodically summarizes the business counters into the log.
// Deployments without a scrape pipeline still get a daily usage trail that
// survives in plain log storage.
type UsageReportJob struct {
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

func NewUsageReportJob(gatherer prometheus.Gatherer, logger *slog.Logger) *UsageReportJob {
	if gatherer == nil || logger == nil {
		panic("UsageReportJob dependencies cannot be nil")
	}
	return &UsageReportJob{
		gatherer: gatherer,
		logger:   logger.With("job", "UsageReport"),
	}
}

func (j *UsageReportJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting usage report job.")

	families, err := j.gatherer.Gather()
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to gather metric families, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to gather metrics: %w", err)
	}

	var calculations, failed, creditCalculations, installmentCalculations, exports float64
	for _, family := range families {
		switch family.GetName() {
		case "mortgage_engine_calculations_total":
			for _, metric := range family.GetMetric() {
				value := metric.GetCounter().GetValue()
				calculations += value
				if labelValue(metric, "status") != "success" {
					failed += value
				}
				switch labelValue(metric, "mode") {
				case "credit":
					creditCalculations += value
				case "installment":
					installmentCalculations += value
				}
			}
		case "mortgage_engine_exports_total":
			for _, metric := range family.GetMetric() {
				exports += metric.GetCounter().GetValue()
			}
		}
	}

	j.logger.InfoContext(ctx, "Usage report job finished.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Float64("calculations_total", calculations),
		slog.Float64("calculations_failed", failed),
		slog.Float64("credit_calculations", creditCalculations),
		slog.Float64("installment_calculations", installmentCalculations),
		slog.Float64("exports_total", exports),
	)
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
