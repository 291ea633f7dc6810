package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"mortgage-engine/internal/api/handler/dto"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/infrastructure/monitoring"
	"mortgage-engine/internal/pkg/apperrors"
	"mortgage-engine/internal/report"
	"net/http"
	"strconv"
)

type ExportHandler struct {
	service mortgage.CalculatorService
	logger  *slog.Logger
}

func NewExportHandler(s mortgage.CalculatorService, l *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: s,
		logger:  l.With("component", "ExportHandler"),
	}
}

// calculationRequestFromForm reads the calculator form fields. FormValue also
// covers query parameters, so GET endpoints share the same extraction.
func calculationRequestFromForm(r *http.Request) dto.CalculationRequest {
	return dto.CalculationRequest{
		Mode:              r.FormValue("mode"),
		HomePrice:         r.FormValue("home_price"),
		DownPayment:       r.FormValue("down_payment"),
		TermYears:         r.FormValue("term_years"),
		AnnualRatePercent: r.FormValue("annual_rate_percent"),
	}
}

func (h *ExportHandler) compute(r *http.Request) (mortgage.Mode, mortgage.Input, mortgage.Result, mortgage.Schedule, error) {
	req := calculationRequestFromForm(r)
	mode := mortgage.ParseMode(req.Mode)

	if err := req.Validate(); err != nil {
		return mode, mortgage.Input{}, mortgage.Result{}, nil, err
	}

	in, err := req.ToInput()
	if err != nil {
		return mode, mortgage.Input{}, mortgage.Result{}, nil, err
	}

	result, schedule, err := h.service.Calculate(r.Context(), mode, in)
	if err != nil {
		return mode, mortgage.Input{}, mortgage.Result{}, nil, err
	}
	return mode, in, result, schedule, nil
}

func exportFailureStatus(err error) string {
	if errors.Is(err, apperrors.ErrValidation) {
		return "failure_validation"
	}
	return "failure_internal"
}

// Xlsx streams the schedule workbook as a download.
//
// @Summary Export the schedule as an xlsx workbook
// @Description Recomputes the schedule from the submitted form fields and returns it as a downloadable single sheet workbook.
// @Tags Exports
// @Accept x-www-form-urlencoded
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param home_price formData string true "Home price"
// @Param down_payment formData string true "Down payment"
// @Param term_years formData string true "Term in years"
// @Param annual_rate_percent formData string false "Annual rate percent (ignored for installment)"
// @Param mode formData string false "credit or installment"
// @Success 200 {file} file "Workbook attachment"
// @Failure 400 {object} dto.ErrorResponse "Invalid form values"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /export/xlsx [post]
func (h *ExportHandler) Xlsx(w http.ResponseWriter, r *http.Request) {
	mode, in, result, schedule, err := h.compute(r)
	if err != nil {
		monitoring.RecordExport("xlsx", exportFailureStatus(err))
		respondError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXlsx(&buf, mode, in, result, schedule); err != nil {
		monitoring.RecordExport("xlsx", "failure_internal")
		h.logger.ErrorContext(r.Context(), "Workbook export failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	monitoring.RecordExport("xlsx", "success")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ScheduleFilename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// Charts renders the payment composition and balance charts as an HTML page.
//
// @Summary Render schedule charts
// @Description Recomputes the schedule from query parameters and renders the payment composition and remaining balance charts.
// @Tags Exports
// @Produce html
// @Param home_price query string true "Home price"
// @Param down_payment query string true "Down payment"
// @Param term_years query string true "Term in years"
// @Param annual_rate_percent query string false "Annual rate percent (ignored for installment)"
// @Param mode query string false "credit or installment"
// @Success 200 {string} string "HTML chart page"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /charts [get]
func (h *ExportHandler) Charts(w http.ResponseWriter, r *http.Request) {
	mode, _, _, schedule, err := h.compute(r)
	if err != nil {
		monitoring.RecordExport("charts", exportFailureStatus(err))
		respondError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCharts(&buf, mode, schedule); err != nil {
		monitoring.RecordExport("charts", "failure_internal")
		h.logger.ErrorContext(r.Context(), "Chart rendering failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	monitoring.RecordExport("charts", "success")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
