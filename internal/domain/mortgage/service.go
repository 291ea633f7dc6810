package mortgage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mortgage-engine/internal/infrastructure/monitoring"
	"mortgage-engine/internal/pkg/apperrors"
	"time"
)

type CalculatorService interface {
	Calculate(ctx context.Context, mode Mode, in Input) (Result, Schedule, error)
}

type calculatorServiceImpl struct {
	calc   *Calculator
	logger *slog.Logger
}

func NewCalculatorService(calc *Calculator, logger *slog.Logger) CalculatorService {
	if calc == nil || logger == nil {
		panic("CalculatorService dependencies cannot be nil")
	}
	return &calculatorServiceImpl{calc: calc, logger: logger.With("component", "CalculatorService")}
}

// Calculate normalizes the mode, runs the engine and records the outcome.
// Installment mode ignores any supplied rate and computes interest free.
func (s *calculatorServiceImpl) Calculate(ctx context.Context, mode Mode, in Input) (Result, Schedule, error) {
	start := time.Now()

	mode = ParseMode(string(mode))
	in = in.ForMode(mode)

	result, schedule, err := s.calc.Compute(in)
	if err != nil {
		status := "failure_internal"
		if errors.Is(err, apperrors.ErrValidation) {
			status = "failure_validation"
			s.logger.WarnContext(ctx, "Calculation rejected", "mode", string(mode), slog.Any("error", err))
		} else {
			s.logger.ErrorContext(ctx, "Calculation failed", "mode", string(mode), slog.Any("error", err))
		}
		monitoring.RecordCalculation(string(mode), status, time.Since(start))
		return Result{}, nil, fmt.Errorf("calculate %s schedule: %w", mode, err)
	}

	monitoring.RecordCalculation(string(mode), "success", time.Since(start))
	s.logger.InfoContext(ctx, "Calculation completed",
		"mode", string(mode),
		"months", len(schedule),
		"monthly_payment", result.MonthlyPayment.StringFixed(2),
		"duration_ms", float64(time.Since(start).Nanoseconds())/1000000.0,
	)

	return result, schedule, nil
}
