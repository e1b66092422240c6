package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// RateReadRepository handles rate read operations.
type RateReadRepository struct {
	db *sqlx.DB
}

func NewRateReadRepository(db *sqlx.DB) *RateReadRepository {
	return &RateReadRepository{db: db}
}

// List returns records whose effective date falls within the inclusive
// bounds; a nil bound is open. Rows are ordered by date, then letter code.
func (r *RateReadRepository) List(ctx context.Context, startDate, endDate *time.Time) ([]models.RateDB, error) {
	const query = `
		SELECT id, digital_code, letter_code, units, currency_name, exchange_rate, date, timestamp, source
		FROM "currency-schema".currency_rates
		WHERE ($1::DATE IS NULL OR date >= $1)
		  AND ($2::DATE IS NULL OR date <= $2)
		ORDER BY date, letter_code
	`

	rates := []models.RateDB{}
	err := r.db.SelectContext(ctx, &rates, query, startDate, endDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{startDate, endDate},
		"result", len(rates),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rates, nil
}

// ListLatest returns, per letter code, the record with the maximum effective
// date; among records sharing that date the greatest id (most recently
// inserted) wins. An empty codes slice selects all known codes. Codes with
// no records are simply absent from the result.
func (r *RateReadRepository) ListLatest(ctx context.Context, codes []string) ([]models.RateDB, error) {
	query := `
		SELECT DISTINCT ON (letter_code)
		       id, digital_code, letter_code, units, currency_name, exchange_rate, date, timestamp, source
		FROM "currency-schema".currency_rates
		ORDER BY letter_code, date DESC, id DESC
	`
	args := []any{}
	if len(codes) > 0 {
		query = `
			SELECT DISTINCT ON (letter_code)
			       id, digital_code, letter_code, units, currency_name, exchange_rate, date, timestamp, source
			FROM "currency-schema".currency_rates
			WHERE letter_code = ANY($1)
			ORDER BY letter_code, date DESC, id DESC
		`
		args = append(args, codes)
	}

	rates := []models.RateDB{}
	err := r.db.SelectContext(ctx, &rates, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rates),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rates, nil
}

// RateWriteRepository handles rate write operations.
type RateWriteRepository struct {
	db *sqlx.DB
}

func NewRateWriteRepository(db *sqlx.DB) *RateWriteRepository {
	return &RateWriteRepository{db: db}
}

// Save inserts a batch of validated records in one statement.
func (r *RateWriteRepository) Save(ctx context.Context, rates []models.RateDB) error {
	if len(rates) == 0 {
		return nil
	}

	const query = `
		INSERT INTO "currency-schema".currency_rates
			(digital_code, letter_code, units, currency_name, exchange_rate, date, timestamp, source)
		VALUES
			(:digital_code, :letter_code, :units, :currency_name, :exchange_rate, :date, :timestamp, :source)
	`

	res, err := r.db.NamedExecContext(ctx, query, rates)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", len(rates),
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the rows with the given identifiers and reports how many
// were actually removed.
func (r *RateWriteRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	const query = `
		DELETE FROM "currency-schema".currency_rates
		WHERE id = ANY($1)
	`

	res, err := r.db.ExecContext(ctx, query, ids)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", ids,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
