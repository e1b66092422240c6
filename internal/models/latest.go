package models

// LatestRate represents the most recent rate observation for one currency.
// swagger:model LatestRate
type LatestRate struct {
	// Digital currency code
	// example: 840
	DigitalCode string `json:"digital_code"`

	// Letter currency code
	// example: USD
	LetterCode string `json:"letter_code"`

	// Number of currency units the rate is quoted for
	// example: 1
	Units int64 `json:"units"`

	// Currency name
	// example: US Dollar
	CurrencyName string `json:"currency_name"`

	// Exchange rate per units of the currency
	// example: 92.5
	ExchangeRate float64 `json:"exchange_rate"`

	// Effective date, hyphenated ISO form
	// example: 2024-01-15
	Date string `json:"date"`

	// Source identifier
	// example: cbr.ru
	Source string `json:"source"`
}

// LatestRatesResponse represents a successful latest-rates response
// swagger:model LatestRatesResponse
type LatestRatesResponse struct {
	// Latest rate per currency code
	Rates []LatestRate `json:"rates"`
}

// LatestRatesErrorResponse represents an error response for latest rates
// swagger:model LatestRatesErrorResponse
type LatestRatesErrorResponse struct {
	// Error message
	// example: Failed to retrieve latest rates
	Error string `json:"error"`
}

// LatestRateFromDB flattens a persisted record into the latest-rate shape.
func LatestRateFromDB(r RateDB) LatestRate {
	return LatestRate{
		DigitalCode:  r.DigitalCode,
		LetterCode:   r.LetterCode,
		Units:        r.Units,
		CurrencyName: r.CurrencyName,
		ExchangeRate: r.ExchangeRate,
		Date:         r.Date.Format(ResponseDateLayout),
		Source:       r.Source,
	}
}
