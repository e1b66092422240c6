package encoders

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// encodeCSV writes UTF-8 delimited text with a header row and no index
// column, one record per line.
func encodeCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns()); err != nil {
		return nil, err
	}
	for _, r := range t.Rows() {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.DigitalCode,
			r.LetterCode,
			strconv.FormatInt(r.Units, 10),
			r.CurrencyName,
			strconv.FormatFloat(r.ExchangeRate, 'f', -1, 64),
			r.Date.Format(models.ResponseDateLayout),
			r.Timestamp.Format(time.RFC3339),
			r.Source,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
