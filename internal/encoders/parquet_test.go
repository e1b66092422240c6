package encoders

import (
	"bytes"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParquet_RoundTrip(t *testing.T) {
	table, err := NewTable(sampleRates())
	require.NoError(t, err)

	data, err := encodeParquet(table)
	require.NoError(t, err)

	rows, err := parquet.Read[parquetRow](bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "840", rows[0].DigitalCode)
	assert.Equal(t, "USD", rows[0].LetterCode)
	assert.Equal(t, 92.5, rows[0].ExchangeRate)
	assert.Equal(t, "Российский рубль", rows[2].CurrencyName)

	assert.Equal(t, day(2024, time.January, 15), dateFromDays(rows[0].Date))
	assert.Equal(t, day(2024, time.January, 16), dateFromDays(rows[2].Date))
	assert.Equal(t,
		time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		time.UnixMilli(rows[0].Timestamp).UTC())
}

func TestEncodeParquet_Empty(t *testing.T) {
	table, err := NewTable(nil)
	require.NoError(t, err)

	data, err := encodeParquet(table)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	rows, err := parquet.Read[parquetRow](bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDaysSinceEpoch_RoundTrip(t *testing.T) {
	for _, d := range []time.Time{
		day(1970, time.January, 1),
		day(2024, time.February, 29),
		day(2026, time.August, 31),
	} {
		assert.Equal(t, d, dateFromDays(daysSinceEpoch(d)))
	}
}
