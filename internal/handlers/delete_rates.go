package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
)

// RatesDeleter defines the interface that the service must implement.
type RatesDeleter interface {
	DeleteRates(ctx context.Context, ids []int64) (int64, error)
}

// DeleteRatesErrorResponse represents an error response for rate deletion
// swagger:model DeleteRatesErrorResponse
type DeleteRatesErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewDeleteRatesHandler returns an HTTP handler for deleting rate records
// by identifier.
// @Summary Delete currency rates
// @Description Removes the rate records with the given identifiers, then triggers a full database backup export
// @Tags currency-rates
// @Accept json
// @Param request body []int64 true "Record identifiers"
// @Success 204 "Rates deleted"
// @Failure 400 {object} handlers.DeleteRatesErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.DeleteRatesErrorResponse "Forbidden"
// @Router /currency-rates [delete]
// @Security ApiTokenAuth
func NewDeleteRatesHandler(svc RatesDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var ids []int64
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			logger.Log.Errorw("failed to decode delete ids", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteRatesErrorResponse{Error: "Invalid request body"})
			return
		}

		if _, err := svc.DeleteRates(ctx, ids); err != nil {
			logger.Log.Errorw("failed to delete rates", "ids", ids, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteRatesErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
