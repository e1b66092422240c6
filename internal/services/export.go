package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-rates/internal/encoders"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// BackupObjectName is the fixed object name every backup export overwrites.
const BackupObjectName = "currency_rates_db_backup"

const (
	noResultsComment       = "No results"
	storageDisabledComment = "Object storage is disabled"
)

// RateLister reads rate records filtered by an inclusive date range.
type RateLister interface {
	List(ctx context.Context, startDate, endDate *time.Time) ([]models.RateDB, error)
}

// ObjectPublisher uploads export artifacts and issues retrieval links.
type ObjectPublisher interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// URLShortener rewrites a long retrieval link into a short one.
type URLShortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// ExportService drives one export end to end: query, materialize, encode,
// publish and, for ad-hoc exports, link generation and shortening.
type ExportService struct {
	readRepo  RateLister
	storage   ObjectPublisher // nil when object storage is disabled
	shortener URLShortener
}

// NewExportService creates a new ExportService. A nil storage facade puts
// the service into degraded mode: exports succeed but produce no link.
func NewExportService(readRepo RateLister, storage ObjectPublisher, shortener URLShortener) *ExportService {
	return &ExportService{
		readRepo:  readRepo,
		storage:   storage,
		shortener: shortener,
	}
}

// Export runs the export pipeline for one request. It returns a response
// carrying either a shortened download link or a comment; backup requests
// return a nil response, which callers translate to a no-content signal.
func (s *ExportService) Export(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error) {
	enc, err := encoders.ForFormat(req.OutputFormat)
	if err != nil {
		return nil, err
	}

	rates, err := s.readRepo.List(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if len(rates) == 0 {
		resp := models.NewExportResponse(req)
		comment := noResultsComment
		resp.Comment = &comment
		return resp, nil
	}

	table, err := encoders.NewTable(rates)
	if err != nil {
		return nil, err
	}
	body, err := enc.Encode(table)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export as %s: %w", req.OutputFormat, err)
	}

	if s.storage == nil {
		logger.Log.Warnw("object storage not configured, skipping upload",
			"format", req.OutputFormat, "is_backup", req.IsBackup)
		resp := models.NewExportResponse(req)
		comment := storageDisabledComment
		resp.Comment = &comment
		return resp, nil
	}

	key := objectKey(enc, req.IsBackup)
	if err := s.storage.Put(ctx, key, enc.ContentType, body); err != nil {
		return nil, err
	}

	if req.IsBackup {
		return nil, nil
	}

	longURL, err := s.storage.PresignGet(ctx, key)
	if err != nil {
		return nil, err
	}
	shortURL, err := s.shortener.Shorten(ctx, longURL)
	if err != nil {
		return nil, err
	}

	resp := models.NewExportResponse(req)
	resp.URL = &shortURL
	return resp, nil
}

// objectKey computes the storage key. Backups overwrite one stable object;
// ad-hoc exports get a freshly generated name so repeated or concurrent
// exports never collide.
func objectKey(enc encoders.Encoder, isBackup bool) string {
	name := BackupObjectName
	if !isBackup {
		name = uuid.NewString()
	}
	return fmt.Sprintf("%s.%s", name, enc.Extension)
}
