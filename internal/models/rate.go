package models

import (
	"errors"
	"fmt"
	"time"
	"unicode"
)

// DefaultSource is the provenance tag assigned to submissions that omit one.
const DefaultSource = "cbr.ru"

// SubmissionDateLayout is the day.month.year layout used by rate submissions.
const SubmissionDateLayout = "02.01.2006"

// RateDB represents a persisted currency rate record.
type RateDB struct {
	ID           int64     `db:"id" json:"id"`
	DigitalCode  string    `db:"digital_code" json:"digital_code"`
	LetterCode   string    `db:"letter_code" json:"letter_code"`
	Units        int64     `db:"units" json:"units"`
	CurrencyName string    `db:"currency_name" json:"currency_name"`
	ExchangeRate float64   `db:"exchange_rate" json:"exchange_rate"`
	Date         time.Time `db:"date" json:"date"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	Source       string    `db:"source" json:"source"`
}

// RateColumns lists the rate columns in their table declaration order.
// Exports must keep this order regardless of query projection order.
var RateColumns = []string{
	"id",
	"digital_code",
	"letter_code",
	"units",
	"currency_name",
	"exchange_rate",
	"date",
	"timestamp",
	"source",
}

// RateSubmission represents one rate record as submitted by a client.
// swagger:model RateSubmission
type RateSubmission struct {
	// Digital currency code
	// required: true
	// default: 840
	DigitalCode string `json:"digital_code"`

	// Letter currency code
	// required: true
	// default: USD
	LetterCode string `json:"letter_code"`

	// Number of currency units the rate is quoted for
	// required: true
	// default: 1
	Units int64 `json:"units"`

	// Currency name
	// required: true
	// default: US Dollar
	CurrencyName string `json:"currency_name"`

	// Exchange rate per units of the currency
	// required: true
	// default: 92.5
	ExchangeRate float64 `json:"exchange_rate"`

	// Effective date in day.month.year form
	// required: true
	// default: 15.01.2024
	Date string `json:"date"`

	// Ingestion timestamp in ISO form
	// required: true
	// default: 2024-01-15T10:00:00Z
	Timestamp string `json:"timestamp"`

	// Source identifier, defaults to cbr.ru
	Source string `json:"source"`
}

var (
	ErrBadDigitalCode  = errors.New("digital code must be a 3-character numeric string")
	ErrBadLetterCode   = errors.New("letter code must be a 3-character alphabetic string")
	ErrBadUnits        = errors.New("units must be a positive integer")
	ErrBadExchangeRate = errors.New("exchange rate must be positive")
	ErrMissingName     = errors.New("currency name is required")
)

// ToDB validates the submission and converts it to a persistable record.
func (s RateSubmission) ToDB() (RateDB, error) {
	if len(s.DigitalCode) != 3 || !isNumeric(s.DigitalCode) {
		return RateDB{}, ErrBadDigitalCode
	}
	if len(s.LetterCode) != 3 || !isAlpha(s.LetterCode) {
		return RateDB{}, ErrBadLetterCode
	}
	if s.Units <= 0 {
		return RateDB{}, ErrBadUnits
	}
	if s.CurrencyName == "" {
		return RateDB{}, ErrMissingName
	}
	if s.ExchangeRate <= 0 {
		return RateDB{}, ErrBadExchangeRate
	}

	date, err := time.Parse(SubmissionDateLayout, s.Date)
	if err != nil {
		return RateDB{}, fmt.Errorf("invalid date %q: %w", s.Date, err)
	}
	ts, err := time.Parse(time.RFC3339, s.Timestamp)
	if err != nil {
		return RateDB{}, fmt.Errorf("invalid timestamp %q: %w", s.Timestamp, err)
	}

	source := s.Source
	if source == "" {
		source = DefaultSource
	}

	return RateDB{
		DigitalCode:  s.DigitalCode,
		LetterCode:   s.LetterCode,
		Units:        s.Units,
		CurrencyName: s.CurrencyName,
		ExchangeRate: s.ExchangeRate,
		Date:         date,
		Timestamp:    ts,
		Source:       source,
	}, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
