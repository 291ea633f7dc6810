package dto

import (
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
	"mortgage-engine/internal/pkg/moneyfmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// CalculationRequest carries the raw form values. Amounts stay strings until
// ToInput so locale formatted numbers like "1 200 000,50" survive transport.
type CalculationRequest struct {
	Mode              string `json:"mode" validate:"omitempty,oneof=credit installment"`
	HomePrice         string `json:"homePrice" validate:"required"`
	DownPayment       string `json:"downPayment" validate:"required"`
	TermYears         string `json:"termYears" validate:"required"`
	AnnualRatePercent string `json:"annualRatePercent" validate:"required_unless=Mode installment"`
}

func (r *CalculationRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrors := err.(validator.ValidationErrors)
	first := validationErrors[0]
	switch first.Tag() {
	case "required":
		return apperrors.NewValidationError(first.Field(), first.Field()+" is required")
	case "required_unless":
		return apperrors.NewValidationError(first.Field(), first.Field()+" is required in credit mode")
	case "oneof":
		return apperrors.NewValidationError(first.Field(), first.Field()+" must be credit or installment")
	default:
		return apperrors.NewValidationError(first.Field(), first.Field()+" is not valid")
	}
}

// ToInput parses the string amounts into engine inputs. Call Validate first.
// Installment plans never read the rate field, it stays zero.
func (r *CalculationRequest) ToInput() (mortgage.Input, error) {
	homePrice, err := moneyfmt.Parse(r.HomePrice)
	if err != nil {
		return mortgage.Input{}, apperrors.NewValidationError("homePrice", "homePrice must be a valid number")
	}

	downPayment, err := moneyfmt.Parse(r.DownPayment)
	if err != nil {
		return mortgage.Input{}, apperrors.NewValidationError("downPayment", "downPayment must be a valid number")
	}

	termYears, err := moneyfmt.Parse(r.TermYears)
	if err != nil {
		return mortgage.Input{}, apperrors.NewValidationError("termYears", "termYears must be a valid number")
	}

	rate := decimal.Zero
	if r.AnnualRatePercent != "" && mortgage.ParseMode(r.Mode) != mortgage.ModeInstallment {
		rate, err = moneyfmt.Parse(r.AnnualRatePercent)
		if err != nil {
			return mortgage.Input{}, apperrors.NewValidationError("annualRatePercent", "annualRatePercent must be a valid number")
		}
	}

	return mortgage.Input{
		HomePrice:         homePrice,
		DownPayment:       downPayment,
		TermYears:         termYears,
		AnnualRatePercent: rate,
	}, nil
}

type CalculationResponse struct {
	Summary  SummaryResponse         `json:"summary"`
	Schedule []ScheduleEntryResponse `json:"schedule"`
}

type SummaryResponse struct {
	Mode               string `json:"mode"`
	HomePrice          string `json:"homePrice"`
	DownPayment        string `json:"downPayment"`
	TermYears          string `json:"termYears"`
	AnnualRatePercent  string `json:"annualRatePercent"`
	MonthlyPayment     string `json:"monthlyPayment"`
	TotalPaid          string `json:"totalPaid"`
	Overpayment        string `json:"overpayment"`
	OverpaymentPercent string `json:"overpaymentPercent"`
}

type ScheduleEntryResponse struct {
	Month         int    `json:"month"`
	Payment       string `json:"payment"`
	InterestPart  string `json:"interestPart"`
	PrincipalPart string `json:"principalPart"`
	Balance       string `json:"balance"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}

func NewCalculationResponse(mode mortgage.Mode, in mortgage.Input, result mortgage.Result, schedule mortgage.Schedule) CalculationResponse {
	formatDecimalMoney := func(d decimal.Decimal) string {
		return d.StringFixed(2)
	}

	in = in.ForMode(mode)

	resp := CalculationResponse{
		Summary: SummaryResponse{
			Mode:               string(mode),
			HomePrice:          formatDecimalMoney(in.HomePrice),
			DownPayment:        formatDecimalMoney(in.DownPayment),
			TermYears:          in.TermYears.String(),
			AnnualRatePercent:  in.AnnualRatePercent.String(),
			MonthlyPayment:     formatDecimalMoney(result.MonthlyPayment),
			TotalPaid:          formatDecimalMoney(result.TotalPaid),
			Overpayment:        formatDecimalMoney(result.Overpayment),
			OverpaymentPercent: result.OverpaymentPercent.StringFixed(2),
		},
		Schedule: make([]ScheduleEntryResponse, len(schedule)),
	}

	for i, entry := range schedule {
		resp.Schedule[i] = ScheduleEntryResponse{
			Month:         entry.Month,
			Payment:       formatDecimalMoney(entry.Payment),
			InterestPart:  formatDecimalMoney(entry.InterestPart),
			PrincipalPart: formatDecimalMoney(entry.PrincipalPart),
			Balance:       formatDecimalMoney(entry.Balance),
		}
	}

	return resp
}
