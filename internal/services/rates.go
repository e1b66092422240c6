package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-rates/internal/encoders"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// RateSaver writes validated rate records.
type RateSaver interface {
	Save(ctx context.Context, rates []models.RateDB) error
}

// RateRemover deletes rate records by identifier.
type RateRemover interface {
	Delete(ctx context.Context, ids []int64) (int64, error)
}

// LatestLister reads the most recent record per letter code.
type LatestLister interface {
	ListLatest(ctx context.Context, codes []string) ([]models.RateDB, error)
}

// LatestRateCache caches the all-codes latest-rates result.
type LatestRateCache interface {
	Get(ctx context.Context) ([]models.LatestRate, error)
	Set(ctx context.Context, rates []models.LatestRate) error
	Invalidate(ctx context.Context) error
}

// BackupExporter runs the export pipeline for a distinguished request value.
type BackupExporter interface {
	Export(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RateService handles rate mutations, the latest-rates read path, and the
// post-mutation side effects (cache invalidation, event publishing, backup).
type RateService struct {
	writeRepo   RateSaver
	deleteRepo  RateRemover
	latestRepo  LatestLister
	cache       LatestRateCache // nil when redis is disabled
	exporter    BackupExporter
	kafkaWriter KafkaWriter // nil when kafka is disabled
}

// NewRateService creates a new RateService.
func NewRateService(
	writeRepo RateSaver,
	deleteRepo RateRemover,
	latestRepo LatestLister,
	cache LatestRateCache,
	exporter BackupExporter,
	kafkaWriter KafkaWriter,
) *RateService {
	return &RateService{
		writeRepo:   writeRepo,
		deleteRepo:  deleteRepo,
		latestRepo:  latestRepo,
		cache:       cache,
		exporter:    exporter,
		kafkaWriter: kafkaWriter,
	}
}

// CreateRates persists a batch of records and then runs the post-mutation
// side effects. The insert is committed before the backup export starts; a
// failing backup is logged and does not fail the mutation.
func (s *RateService) CreateRates(ctx context.Context, rates []models.RateDB) error {
	if err := s.writeRepo.Save(ctx, rates); err != nil {
		logger.Log.Errorw("failed to save rates", "count", len(rates), "error", err)
		return err
	}

	s.afterMutation(ctx, models.RateEvent{
		EventID:   uuid.NewString(),
		Operation: "create",
		Count:     int64(len(rates)),
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// DeleteRates removes the records with the given identifiers and then runs
// the post-mutation side effects.
func (s *RateService) DeleteRates(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.deleteRepo.Delete(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to delete rates", "ids", ids, "error", err)
		return 0, err
	}

	s.afterMutation(ctx, models.RateEvent{
		EventID:   uuid.NewString(),
		Operation: "delete",
		Count:     deleted,
		Timestamp: time.Now().Unix(),
		Ids:       ids,
	})

	return deleted, nil
}

// LatestRates returns exactly one record per requested letter code, the one
// with the maximum effective date. All-codes requests read through the cache.
func (s *RateService) LatestRates(ctx context.Context, codes []string) ([]models.LatestRate, error) {
	if len(codes) == 0 && s.cache != nil {
		if rates, err := s.cache.Get(ctx); err == nil {
			return rates, nil
		}
	}

	records, err := s.latestRepo.ListLatest(ctx, codes)
	if err != nil {
		logger.Log.Errorw("failed to list latest rates", "codes", codes, "error", err)
		return nil, err
	}

	rates := make([]models.LatestRate, 0, len(records))
	for _, r := range records {
		rates = append(rates, models.LatestRateFromDB(r))
	}

	if len(codes) == 0 && s.cache != nil {
		if err := s.cache.Set(ctx, rates); err != nil {
			logger.Log.Errorw("failed to cache latest rates", "error", err)
		}
	}

	return rates, nil
}

// afterMutation runs the committed-mutation side effects: cache
// invalidation, best-effort event publishing, best-effort full backup.
func (s *RateService) afterMutation(ctx context.Context, event models.RateEvent) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate latest-rates cache", "error", err)
		}
	}

	s.publishEvent(ctx, event)

	if _, err := s.exporter.Export(ctx, models.BackupRequest(encoders.DefaultFormat)); err != nil {
		logger.Log.Errorw("backup export failed", "operation", event.Operation, "error", err)
	}
}

// publishEvent publishes a mutation event to Kafka.
func (s *RateService) publishEvent(ctx context.Context, event models.RateEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rate event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rate event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Rate event published to Kafka", "event_id", event.EventID, "operation", event.Operation, "count", event.Count)
	}
}
