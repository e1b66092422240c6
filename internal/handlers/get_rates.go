package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/encoders"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// RatesExporter defines the interface that the service must implement.
type RatesExporter interface {
	Export(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error)
}

// NewGetRatesHandler returns an HTTP handler that exports rate records
// matching a date range and responds with a shortened download link.
// The backup flag of the export request is internal and never taken from
// the query string.
// @Summary Export currency rates
// @Description Selects rate records within an inclusive date range, encodes them in the requested format, uploads the artifact to object storage and returns a shortened download link
// @Tags currency-rates
// @Produce json
// @Param startDate query string false "Inclusive start date, yyyymmdd"
// @Param endDate query string false "Inclusive end date, yyyymmdd"
// @Param outputFormat query string false "Output format: csv, json, parquet or xlsx" default(parquet)
// @Success 200 {object} models.ExportResponse "Export result"
// @Failure 400 {object} models.ExportErrorResponse "Invalid date or format"
// @Failure 500 {object} models.ExportErrorResponse "Export pipeline failure"
// @Router /currency-rates [get]
func NewGetRatesHandler(svc RatesExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		startDate, err := parseQueryDate(q.Get("startDate"))
		if err != nil {
			logger.Log.Warnw("invalid startDate", "value", q.Get("startDate"), "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ExportErrorResponse{Error: "Invalid startDate, expected yyyymmdd"})
			return
		}
		endDate, err := parseQueryDate(q.Get("endDate"))
		if err != nil {
			logger.Log.Warnw("invalid endDate", "value", q.Get("endDate"), "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ExportErrorResponse{Error: "Invalid endDate, expected yyyymmdd"})
			return
		}

		outputFormat := q.Get("outputFormat")
		if outputFormat == "" {
			outputFormat = encoders.DefaultFormat
		}
		if _, err := encoders.ForFormat(outputFormat); err != nil {
			logger.Log.Warnw("unsupported output format", "format", outputFormat)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ExportErrorResponse{Error: "Unsupported output format"})
			return
		}

		req := models.ExportRequest{
			StartDate:    startDate,
			EndDate:      endDate,
			OutputFormat: outputFormat,
		}

		resp, err := svc.Export(ctx, req)
		if err != nil {
			if errors.Is(err, encoders.ErrUnsupportedFormat) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ExportErrorResponse{Error: "Unsupported output format"})
				return
			}
			logger.Log.Errorw("export failed", "format", outputFormat, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ExportErrorResponse{Error: "Internal server error"})
			return
		}
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// parseQueryDate parses a compact yyyymmdd query value; empty means open.
func parseQueryDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(models.QueryDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
