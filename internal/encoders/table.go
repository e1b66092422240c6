package encoders

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// ErrMissingField is returned when a record lacks a required column value.
var ErrMissingField = errors.New("rate record is missing a required column value")

// Table is an ordered tabular view over rate records. Row order follows the
// source sequence; column order is fixed to the table declaration order
// (models.RateColumns) regardless of how the rows were selected.
type Table struct {
	rows []models.RateDB
}

// NewTable materializes records into a Table. An empty input is valid and
// produces an empty table.
func NewTable(rates []models.RateDB) (*Table, error) {
	for i, r := range rates {
		if err := checkRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return &Table{rows: rates}, nil
}

func checkRow(r models.RateDB) error {
	switch {
	case r.DigitalCode == "", r.LetterCode == "", r.CurrencyName == "", r.Source == "":
		return ErrMissingField
	case r.Units == 0, r.ExchangeRate == 0:
		return ErrMissingField
	case r.Date.IsZero(), r.Timestamp.IsZero():
		return ErrMissingField
	}
	return nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the fixed column order.
func (t *Table) Columns() []string {
	cols := make([]string, len(models.RateColumns))
	copy(cols, models.RateColumns)
	return cols
}

// Rows returns the materialized rows in source order.
func (t *Table) Rows() []models.RateDB {
	return t.rows
}
