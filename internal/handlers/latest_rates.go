package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// LatestRatesReader defines the interface that the service must implement.
type LatestRatesReader interface {
	LatestRates(ctx context.Context, codes []string) ([]models.LatestRate, error)
}

// NewGetLatestRatesHandler returns an HTTP handler for fetching the most
// recent rate per currency code.
// @Summary Get latest currency rates
// @Description Returns the most recent rate record per currency code; with no codes given, all known codes are returned
// @Tags currency-rates
// @Produce json
// @Param currency_codes query []string false "Letter codes to include" collectionFormat(multi)
// @Success 200 {object} models.LatestRatesResponse "Latest rate per code"
// @Failure 500 {object} models.LatestRatesErrorResponse "Failed to retrieve latest rates"
// @Router /currency-rates/latest [get]
func NewGetLatestRatesHandler(svc LatestRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		codes := r.URL.Query()["currency_codes"]

		rates, err := svc.LatestRates(ctx, codes)
		if err != nil {
			logger.Log.Errorw("failed to get latest rates", "codes", codes, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.LatestRatesErrorResponse{Error: "Failed to retrieve latest rates"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.LatestRatesResponse{Rates: rates})
	}
}
