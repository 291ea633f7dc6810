package mortgage

import (
	"mortgage-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal digits carried through division
// steps before a value is finalized to cents.
const DefaultPrecision int32 = 28

// MaxTermMonths bounds the schedule length a single request may ask for.
const MaxTermMonths = 12000

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Calculator computes amortization schedules for a fixed annual rate. The
// precision applies per calculator instance; the package-level division
// precision of the decimal library is never touched.
type Calculator struct {
	precision int32
}

func NewCalculator(precision int32) *Calculator {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Calculator{precision: precision}
}

// Compute validates the input and produces the payment summary together with
// the month-by-month schedule. All monetary values in both are finalized to
// two decimal places with half-up rounding. Identical inputs always yield
// identical outputs.
func (c *Calculator) Compute(in Input) (Result, Schedule, error) {
	months, err := c.validate(in)
	if err != nil {
		return Result{}, nil, err
	}

	principal := in.HomePrice.Sub(in.DownPayment)
	monthlyRate := in.AnnualRatePercent.DivRound(hundred, c.precision).DivRound(twelve, c.precision)
	monthsDec := decimal.NewFromInt(int64(months))

	payment := c.monthlyPayment(principal, monthlyRate, monthsDec)

	totalPaid := payment.Mul(monthsDec).Round(2)
	overpayment := totalPaid.Sub(principal).Round(2)
	overpaymentPercent := overpayment.DivRound(principal, c.precision).Mul(hundred).Round(2)

	result := Result{
		MonthlyPayment:     payment,
		TotalPaid:          totalPaid,
		Overpayment:        overpayment,
		OverpaymentPercent: overpaymentPercent,
	}

	return result, c.buildSchedule(principal, monthlyRate, payment, months), nil
}

// validate applies the input rules in a fixed order and reports the first
// violation. It returns the month count so callers never re-derive it.
func (c *Calculator) validate(in Input) (int, error) {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) {
		return 0, apperrors.NewValidationError("home_price", "home price must be greater than zero")
	}
	if in.DownPayment.IsNegative() {
		return 0, apperrors.NewValidationError("down_payment", "down payment cannot be negative")
	}
	if in.DownPayment.GreaterThanOrEqual(in.HomePrice) {
		return 0, apperrors.NewValidationError("down_payment", "down payment must be less than the home price")
	}
	if in.TermYears.LessThanOrEqual(decimal.Zero) {
		return 0, apperrors.NewValidationError("term_years", "term must be greater than zero")
	}

	months := in.TermYears.Mul(twelve)
	if !months.Equal(months.Truncate(0)) {
		return 0, apperrors.NewValidationError("term_years", "term must be a whole number of months")
	}
	if months.GreaterThan(decimal.NewFromInt(MaxTermMonths)) {
		return 0, apperrors.NewValidationError("term_years", "term is too long")
	}

	if in.AnnualRatePercent.IsNegative() {
		return 0, apperrors.NewValidationError("annual_rate_percent", "rate cannot be negative")
	}

	return int(months.IntPart()), nil
}

// monthlyPayment rounds to cents exactly once, after the closed form is
// evaluated at working precision.
func (c *Calculator) monthlyPayment(principal, monthlyRate, months decimal.Decimal) decimal.Decimal {
	if monthlyRate.IsZero() {
		return principal.DivRound(months, c.precision).Round(2)
	}

	// Annuity formula: P * r(1+r)^n / ((1+r)^n - 1).
	growth := one.Add(monthlyRate).Pow(months)
	numerator := principal.Mul(monthlyRate).Mul(growth)
	denominator := growth.Sub(one)
	return numerator.DivRound(denominator, c.precision).Round(2)
}

// buildSchedule walks the balance down month by month. Every row before the
// last charges the nominal payment; the last row repays whatever balance
// remains, so the schedule always closes at exactly zero.
func (c *Calculator) buildSchedule(principal, monthlyRate, payment decimal.Decimal, months int) Schedule {
	schedule := make(Schedule, 0, months)
	balance := principal

	for month := 1; month <= months; month++ {
		var interest, principalPart, rowPayment decimal.Decimal

		if monthlyRate.IsZero() {
			interest = decimal.Zero
			if month == months {
				principalPart = balance
				rowPayment = principalPart
			} else {
				principalPart = payment
				rowPayment = payment
			}
		} else {
			interest = balance.Mul(monthlyRate).Round(2)
			if month == months {
				principalPart = balance
				rowPayment = interest.Add(principalPart).Round(2)
			} else {
				principalPart = payment.Sub(interest)
				rowPayment = payment
			}
		}

		balance = balance.Sub(principalPart).Round(2)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			Month:         month,
			Payment:       rowPayment,
			InterestPart:  interest,
			PrincipalPart: principalPart,
			Balance:       balance,
		})
	}

	return schedule
}
