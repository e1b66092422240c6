package encoders

import (
	"bytes"
	"encoding/json"
	"time"
)

// jsonRow mirrors models.RateColumns; the struct field order keeps the
// rendered object keys in the declared column order.
type jsonRow struct {
	ID           int64   `json:"id"`
	DigitalCode  string  `json:"digital_code"`
	LetterCode   string  `json:"letter_code"`
	Units        int64   `json:"units"`
	CurrencyName string  `json:"currency_name"`
	ExchangeRate float64 `json:"exchange_rate"`
	Date         string  `json:"date"`
	Timestamp    string  `json:"timestamp"`
	Source       string  `json:"source"`
}

// encodeJSON writes a single pretty-printed array of per-row objects.
// Dates render in ISO-8601 form; non-ASCII characters stay literal.
func encodeJSON(t *Table) ([]byte, error) {
	rows := make([]jsonRow, 0, t.Len())
	for _, r := range t.Rows() {
		rows = append(rows, jsonRow{
			ID:           r.ID,
			DigitalCode:  r.DigitalCode,
			LetterCode:   r.LetterCode,
			Units:        r.Units,
			CurrencyName: r.CurrencyName,
			ExchangeRate: r.ExchangeRate,
			Date:         r.Date.Format(time.RFC3339),
			Timestamp:    r.Timestamp.Format(time.RFC3339),
			Source:       r.Source,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
