package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// RatesCreator defines the interface that the service must implement.
type RatesCreator interface {
	CreateRates(ctx context.Context, rates []models.RateDB) error
}

// CreateRatesResponse represents a successful rate submission response
// swagger:model CreateRatesResponse
type CreateRatesResponse struct {
	// Success message
	// default: Rates created successfully
	Message string `json:"message"`
}

// CreateRatesErrorResponse represents an error response for rate submission
// swagger:model CreateRatesErrorResponse
type CreateRatesErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewCreateRatesHandler returns an HTTP handler for submitting rate records.
// @Summary Submit currency rates
// @Description Validates and stores a batch of rate records, then triggers a full database backup export
// @Tags currency-rates
// @Accept json
// @Produce json
// @Param request body []models.RateSubmission true "Rate submissions"
// @Success 201 {object} handlers.CreateRatesResponse "Rates created successfully"
// @Failure 400 {object} handlers.CreateRatesErrorResponse "Invalid submission"
// @Failure 403 {object} handlers.CreateRatesErrorResponse "Forbidden"
// @Router /currency-rates [post]
// @Security ApiTokenAuth
func NewCreateRatesHandler(svc RatesCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var submissions []models.RateSubmission
		if err := json.NewDecoder(r.Body).Decode(&submissions); err != nil {
			logger.Log.Errorw("failed to decode rate submissions", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateRatesErrorResponse{Error: "Invalid request body"})
			return
		}

		rates := make([]models.RateDB, 0, len(submissions))
		for _, sub := range submissions {
			rate, err := sub.ToDB()
			if err != nil {
				logger.Log.Warnw("invalid rate submission", "letter_code", sub.LetterCode, "error", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateRatesErrorResponse{Error: err.Error()})
				return
			}
			rates = append(rates, rate)
		}

		if err := svc.CreateRates(ctx, rates); err != nil {
			logger.Log.Errorw("failed to create rates", "count", len(rates), "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateRatesErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateRatesResponse{Message: "Rates created successfully"})
	}
}
