package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"mortgage-engine/internal/api/handler/dto"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
	"mortgage-engine/internal/pkg/moneyfmt"
	"net/http"
	"net/url"
)

//go:embed templates
var templateFS embed.FS

// WebHandler serves the calculator form and the server rendered results page.
type WebHandler struct {
	service mortgage.CalculatorService
	logger  *slog.Logger
	tmpl    *template.Template
}

func NewWebHandler(s mortgage.CalculatorService, l *slog.Logger) *WebHandler {
	return &WebHandler{
		service: s,
		logger:  l.With("component", "WebHandler"),
		tmpl:    template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

type summaryView struct {
	MonthlyPayment     string
	TotalPaid          string
	Overpayment        string
	OverpaymentPercent string
}

type scheduleRowView struct {
	Month     int
	Payment   string
	Interest  string
	Principal string
	Balance   string
}

type calculatorPage struct {
	Form          dto.CalculationRequest
	IsInstallment bool
	Error         string
	Summary       *summaryView
	Schedule      []scheduleRowView
	ChartsURL     string
}

// Index renders the empty calculator form.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, calculatorPage{})
}

// Calculate runs the engine on the submitted form and re-renders the page
// with the summary and schedule, or with the validation message and the
// submitted values kept in place.
func (h *WebHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req := calculationRequestFromForm(r)
	mode := mortgage.ParseMode(req.Mode)
	page := calculatorPage{
		Form:          req,
		IsInstallment: mode == mortgage.ModeInstallment,
	}

	if err := h.fillResults(r, mode, req, &page); err != nil {
		page.Error = userMessage(err)
	}

	h.render(w, r, page)
}

func (h *WebHandler) fillResults(r *http.Request, mode mortgage.Mode, req dto.CalculationRequest, page *calculatorPage) error {
	if err := req.Validate(); err != nil {
		return err
	}

	in, err := req.ToInput()
	if err != nil {
		return err
	}

	result, schedule, err := h.service.Calculate(r.Context(), mode, in)
	if err != nil {
		return err
	}

	page.Summary = &summaryView{
		MonthlyPayment:     moneyfmt.Format(result.MonthlyPayment),
		TotalPaid:          moneyfmt.Format(result.TotalPaid),
		Overpayment:        moneyfmt.Format(result.Overpayment),
		OverpaymentPercent: moneyfmt.FormatPercent(result.OverpaymentPercent),
	}
	page.Schedule = make([]scheduleRowView, len(schedule))
	for i, entry := range schedule {
		page.Schedule[i] = scheduleRowView{
			Month:     entry.Month,
			Payment:   moneyfmt.Format(entry.Payment),
			Interest:  moneyfmt.Format(entry.InterestPart),
			Principal: moneyfmt.Format(entry.PrincipalPart),
			Balance:   moneyfmt.Format(entry.Balance),
		}
	}
	page.ChartsURL = chartsURL(req)
	return nil
}

func userMessage(err error) string {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return "The calculation could not be completed. Please try again."
}

func chartsURL(req dto.CalculationRequest) string {
	q := url.Values{}
	q.Set("mode", req.Mode)
	q.Set("home_price", req.HomePrice)
	q.Set("down_payment", req.DownPayment)
	q.Set("term_years", req.TermYears)
	q.Set("annual_rate_percent", req.AnnualRatePercent)
	return "/charts?" + q.Encode()
}

func (h *WebHandler) render(w http.ResponseWriter, r *http.Request, page calculatorPage) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		h.logger.ErrorContext(r.Context(), "Template rendering failed", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
