// Package encoders serializes rate tables into the supported export formats.
// The format set is closed: each variant is a value in the registry below,
// carrying its file extension, MIME content type and encode function, so the
// request validator and the export pipeline share one source of truth.
package encoders

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultFormat is the format used when a request does not name one.
const DefaultFormat = "parquet"

// ErrUnsupportedFormat is returned for format names outside the registry.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Encoder is one supported serialization variant.
type Encoder struct {
	Extension   string
	ContentType string
	encode      func(*Table) ([]byte, error)
}

// Encode serializes the table into the variant's byte representation.
// An empty table encodes to a valid header-only (or empty-array) artifact.
func (e Encoder) Encode(t *Table) ([]byte, error) {
	return e.encode(t)
}

var registry = map[string]Encoder{
	"csv": {
		Extension:   "csv",
		ContentType: "text/csv",
		encode:      encodeCSV,
	},
	"json": {
		Extension:   "json",
		ContentType: "application/json",
		encode:      encodeJSON,
	},
	"parquet": {
		Extension:   "parquet",
		ContentType: "application/vnd.apache.parquet",
		encode:      encodeParquet,
	},
	"xlsx": {
		Extension:   "xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		encode:      encodeXLSX,
	},
}

// ForFormat returns the encoder registered under the given format name.
func ForFormat(name string) (Encoder, error) {
	enc, ok := registry[name]
	if !ok {
		return Encoder{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return enc, nil
}

// Formats returns the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
