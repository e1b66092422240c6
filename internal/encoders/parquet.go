package encoders

import (
	"bytes"
	"time"

	"github.com/parquet-go/parquet-go"
)

// parquetRow keeps typed columns so values round-trip without string
// coercion: the effective date stays a parquet DATE, the rate a DOUBLE.
type parquetRow struct {
	ID           int64   `parquet:"id"`
	DigitalCode  string  `parquet:"digital_code"`
	LetterCode   string  `parquet:"letter_code"`
	Units        int64   `parquet:"units"`
	CurrencyName string  `parquet:"currency_name"`
	ExchangeRate float64 `parquet:"exchange_rate"`
	Date         int32   `parquet:"date,date"`
	Timestamp    int64   `parquet:"timestamp,timestamp(millisecond)"`
	Source       string  `parquet:"source"`
}

const secondsPerDay = 24 * 60 * 60

func daysSinceEpoch(t time.Time) int32 {
	return int32(t.Unix() / secondsPerDay)
}

func dateFromDays(days int32) time.Time {
	return time.Unix(int64(days)*secondsPerDay, 0).UTC()
}

// encodeParquet writes columnar binary output with no index column.
func encodeParquet(t *Table) ([]byte, error) {
	rows := make([]parquetRow, 0, t.Len())
	for _, r := range t.Rows() {
		rows = append(rows, parquetRow{
			ID:           r.ID,
			DigitalCode:  r.DigitalCode,
			LetterCode:   r.LetterCode,
			Units:        r.Units,
			CurrencyName: r.CurrencyName,
			ExchangeRate: r.ExchangeRate,
			Date:         daysSinceEpoch(r.Date),
			Timestamp:    r.Timestamp.UnixMilli(),
			Source:       r.Source,
		})
	}

	var buf bytes.Buffer
	w := parquet.NewGenericWriter[parquetRow](&buf)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
