package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mortgage-engine/internal/api/handler/dto"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
	"net/http"
)

type CalculationHandler struct {
	service mortgage.CalculatorService
	logger  *slog.Logger
}

func NewCalculationHandler(s mortgage.CalculatorService, l *slog.Logger) *CalculationHandler {
	return &CalculationHandler{
		service: s,
		logger:  l.With("component", "CalculationHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrParse):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrExport):
		message = "Export failed."
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// Calculate computes a payment schedule from the posted inputs.
//
// @Summary Compute a payment schedule
// @Description Computes the monthly payment, overpayment summary and the full month-by-month amortization schedule for a mortgage (credit mode) or an interest free installment plan.
// @Tags Calculations
// @Accept json
// @Produce json
// @Param request body dto.CalculationRequest true "Calculation request payload"
// @Success 200 {object} dto.CalculationResponse "Schedule successfully computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calculations [post]
// @Security BearerAuth
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		respondError(w, err)
		return
	}

	mode := mortgage.ParseMode(req.Mode)
	result, schedule, err := h.service.Calculate(r.Context(), mode, in)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCalculationResponse(mode, in, result, schedule))
}
