package mortgage

import (
	"github.com/shopspring/decimal"
)

// Mode selects how the interest rate input is treated. Installment plans are
// interest free, so that mode forces the annual rate to zero.
type Mode string

const (
	ModeCredit      Mode = "credit"
	ModeInstallment Mode = "installment"
)

// ParseMode maps a raw form or API value to a Mode. Anything that is not an
// installment plan is treated as a credit.
func ParseMode(s string) Mode {
	if Mode(s) == ModeInstallment {
		return ModeInstallment
	}
	return ModeCredit
}

type Input struct {
	HomePrice         decimal.Decimal
	DownPayment       decimal.Decimal
	TermYears         decimal.Decimal
	AnnualRatePercent decimal.Decimal
}

// ForMode returns the input as the engine will actually use it. Installment
// plans run interest free regardless of the rate supplied.
func (in Input) ForMode(mode Mode) Input {
	if mode == ModeInstallment {
		in.AnnualRatePercent = decimal.Zero
	}
	return in
}

// Result is the frozen summary of one computation. TotalPaid derives from the
// nominal monthly payment times the month count, not from summing the
// schedule; the final schedule row absorbs rounding drift, so the two can
// differ by a few cents.
type Result struct {
	MonthlyPayment     decimal.Decimal
	TotalPaid          decimal.Decimal
	Overpayment        decimal.Decimal
	OverpaymentPercent decimal.Decimal
}

type ScheduleEntry struct {
	Month         int
	Payment       decimal.Decimal
	InterestPart  decimal.Decimal
	PrincipalPart decimal.Decimal
	Balance       decimal.Decimal
}

type Schedule []ScheduleEntry
