package encoders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRates() []models.RateDB {
	return []models.RateDB{
		{
			ID:           1,
			DigitalCode:  "840",
			LetterCode:   "USD",
			Units:        1,
			CurrencyName: "US Dollar",
			ExchangeRate: 92.5,
			Date:         day(2024, time.January, 15),
			Timestamp:    time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			Source:       "cbr.ru",
		},
		{
			ID:           2,
			DigitalCode:  "978",
			LetterCode:   "EUR",
			Units:        1,
			CurrencyName: "Euro",
			ExchangeRate: 100.25,
			Date:         day(2024, time.January, 15),
			Timestamp:    time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			Source:       "cbr.ru",
		},
		{
			ID:           3,
			DigitalCode:  "643",
			LetterCode:   "RUB",
			Units:        100,
			CurrencyName: "Российский рубль",
			ExchangeRate: 1,
			Date:         day(2024, time.January, 16),
			Timestamp:    time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
			Source:       "cbr.ru",
		},
	}
}

func TestNewTable_PreservesRowAndColumnOrder(t *testing.T) {
	rates := sampleRates()

	table, err := NewTable(rates)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, models.RateColumns, table.Columns())

	rows := table.Rows()
	assert.Equal(t, "USD", rows[0].LetterCode)
	assert.Equal(t, "EUR", rows[1].LetterCode)
	assert.Equal(t, "RUB", rows[2].LetterCode)
}

func TestNewTable_Empty(t *testing.T) {
	table, err := NewTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, models.RateColumns, table.Columns())
}

func TestNewTable_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RateDB)
	}{
		{"no_letter_code", func(r *models.RateDB) { r.LetterCode = "" }},
		{"no_digital_code", func(r *models.RateDB) { r.DigitalCode = "" }},
		{"no_currency_name", func(r *models.RateDB) { r.CurrencyName = "" }},
		{"no_units", func(r *models.RateDB) { r.Units = 0 }},
		{"no_exchange_rate", func(r *models.RateDB) { r.ExchangeRate = 0 }},
		{"no_date", func(r *models.RateDB) { r.Date = time.Time{} }},
		{"no_timestamp", func(r *models.RateDB) { r.Timestamp = time.Time{} }},
		{"no_source", func(r *models.RateDB) { r.Source = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := sampleRates()
			tt.mutate(&rates[1])

			_, err := NewTable(rates)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}
