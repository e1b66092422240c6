package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
)

// Bootstrap creates the rate schema and table if they do not exist yet.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	const schema = `
	CREATE SCHEMA IF NOT EXISTS "currency-schema";

	CREATE TABLE IF NOT EXISTS "currency-schema".currency_rates (
		id BIGSERIAL PRIMARY KEY,
		digital_code VARCHAR(3) NOT NULL,
		letter_code VARCHAR(3) NOT NULL,
		units BIGINT NOT NULL,
		currency_name VARCHAR(255) NOT NULL,
		exchange_rate DOUBLE PRECISION NOT NULL,
		date DATE NOT NULL,
		timestamp TIMESTAMP NOT NULL,
		source VARCHAR(50) NOT NULL DEFAULT 'cbr.ru'
	);
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to bootstrap rate schema", "error", err)
		return err
	}

	return nil
}
