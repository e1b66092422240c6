package encoders

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// encodeXLSX writes a single-sheet workbook with a header row and no index
// column. The xlsx container embeds archive metadata, so equality of two
// encodings is checked on decoded cell values, not bytes.
func encodeXLSX(t *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	columns := t.Columns()
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range t.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.ID,
			r.DigitalCode,
			r.LetterCode,
			r.Units,
			r.CurrencyName,
			r.ExchangeRate,
			r.Date.Format(models.ResponseDateLayout),
			r.Timestamp.Format(time.RFC3339),
			r.Source,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
