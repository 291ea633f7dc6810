package dto

import (
	"errors"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationField(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrValidation), "expected validation error, got %v", err)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	return vErr.Field
}

func TestCalculationRequestValidate(t *testing.T) {
	t.Run("should accept a complete credit request", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "credit",
			HomePrice:         "5 000 000",
			DownPayment:       "1 000 000",
			TermYears:         "15",
			AnnualRatePercent: "10",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("should reject a missing home price", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "credit",
			DownPayment:       "1 000 000",
			TermYears:         "15",
			AnnualRatePercent: "10",
		}
		assert.Equal(t, "homePrice", validationField(t, req.Validate()))
	})

	t.Run("should require a rate in credit mode", func(t *testing.T) {
		req := CalculationRequest{
			Mode:        "credit",
			HomePrice:   "5 000 000",
			DownPayment: "1 000 000",
			TermYears:   "15",
		}
		assert.Equal(t, "annualRatePercent", validationField(t, req.Validate()))
	})

	t.Run("should require a rate when mode is omitted", func(t *testing.T) {
		req := CalculationRequest{
			HomePrice:   "5 000 000",
			DownPayment: "1 000 000",
			TermYears:   "15",
		}
		assert.Equal(t, "annualRatePercent", validationField(t, req.Validate()))
	})

	t.Run("should not require a rate in installment mode", func(t *testing.T) {
		req := CalculationRequest{
			Mode:        "installment",
			HomePrice:   "1 200 000",
			DownPayment: "200 000",
			TermYears:   "10",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("should reject an unknown mode", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "refinance",
			HomePrice:         "5 000 000",
			DownPayment:       "1 000 000",
			TermYears:         "15",
			AnnualRatePercent: "10",
		}
		assert.Equal(t, "mode", validationField(t, req.Validate()))
	})
}

func TestCalculationRequestToInput(t *testing.T) {
	t.Run("should parse locale formatted amounts", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "credit",
			HomePrice:         "1 200 000",
			DownPayment:       "200 000,50",
			TermYears:         "10",
			AnnualRatePercent: "7,5",
		}

		in, err := req.ToInput()
		require.NoError(t, err)

		assert.True(t, in.HomePrice.Equal(decimal.RequireFromString("1200000")), "home price: %s", in.HomePrice)
		assert.True(t, in.DownPayment.Equal(decimal.RequireFromString("200000.50")), "down payment: %s", in.DownPayment)
		assert.True(t, in.TermYears.Equal(decimal.RequireFromString("10")), "term: %s", in.TermYears)
		assert.True(t, in.AnnualRatePercent.Equal(decimal.RequireFromString("7.5")), "rate: %s", in.AnnualRatePercent)
	})

	t.Run("should default an omitted rate to zero", func(t *testing.T) {
		req := CalculationRequest{
			Mode:        "installment",
			HomePrice:   "1 200 000",
			DownPayment: "200 000",
			TermYears:   "10",
		}

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.True(t, in.AnnualRatePercent.IsZero())
	})

	t.Run("should ignore the rate field entirely in installment mode", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "installment",
			HomePrice:         "1 200 000",
			DownPayment:       "200 000",
			TermYears:         "10",
			AnnualRatePercent: "not a number",
		}

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.True(t, in.AnnualRatePercent.IsZero())
	})

	t.Run("should reject an unparseable amount with the offending field", func(t *testing.T) {
		req := CalculationRequest{
			Mode:              "credit",
			HomePrice:         "1 200 000",
			DownPayment:       "2OO OOO",
			TermYears:         "10",
			AnnualRatePercent: "7.5",
		}

		_, err := req.ToInput()
		assert.Equal(t, "downPayment", validationField(t, err))
	})
}

func TestNewCalculationResponse(t *testing.T) {
	in := mortgage.Input{
		HomePrice:         decimal.RequireFromString("1200000"),
		DownPayment:       decimal.RequireFromString("200000"),
		TermYears:         decimal.RequireFromString("10"),
		AnnualRatePercent: decimal.RequireFromString("15"),
	}
	result := mortgage.Result{
		MonthlyPayment:     decimal.RequireFromString("8333.33"),
		TotalPaid:          decimal.RequireFromString("999999.6"),
		Overpayment:        decimal.RequireFromString("-0.4"),
		OverpaymentPercent: decimal.Zero,
	}
	schedule := mortgage.Schedule{
		{
			Month:         1,
			Payment:       decimal.RequireFromString("8333.33"),
			InterestPart:  decimal.Zero,
			PrincipalPart: decimal.RequireFromString("8333.33"),
			Balance:       decimal.RequireFromString("991666.67"),
		},
	}

	t.Run("should format summary and schedule with two decimals", func(t *testing.T) {
		response := NewCalculationResponse(mortgage.ModeCredit, in, result, schedule)

		assert.Equal(t, "credit", response.Summary.Mode)
		assert.Equal(t, "1200000.00", response.Summary.HomePrice)
		assert.Equal(t, "200000.00", response.Summary.DownPayment)
		assert.Equal(t, "10", response.Summary.TermYears)
		assert.Equal(t, "15", response.Summary.AnnualRatePercent)
		assert.Equal(t, "8333.33", response.Summary.MonthlyPayment)
		assert.Equal(t, "999999.60", response.Summary.TotalPaid)
		assert.Equal(t, "-0.40", response.Summary.Overpayment)
		assert.Equal(t, "0.00", response.Summary.OverpaymentPercent)

		require.Len(t, response.Schedule, 1)
		entry := response.Schedule[0]
		assert.Equal(t, 1, entry.Month)
		assert.Equal(t, "8333.33", entry.Payment)
		assert.Equal(t, "0.00", entry.InterestPart)
		assert.Equal(t, "8333.33", entry.PrincipalPart)
		assert.Equal(t, "991666.67", entry.Balance)
	})

	t.Run("should report a zero rate for installment plans", func(t *testing.T) {
		response := NewCalculationResponse(mortgage.ModeInstallment, in, result, schedule)

		assert.Equal(t, "installment", response.Summary.Mode)
		assert.Equal(t, "0", response.Summary.AnnualRatePercent)
	})
}
