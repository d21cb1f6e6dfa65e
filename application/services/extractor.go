// Package services contains application services for the oracle keeper:
// JSON value extraction, fixed-point conversion, the in-flight update
// guard, and the update scheduler.
package services

import (
	"strings"

	"theta-oracle-keeper/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ExtractValue pulls a numeric scalar out of an arbitrary JSON document
// by dotted path. Each path segment descends one object level. A
// terminal number is returned as-is; a terminal string must parse to a
// finite decimal number. All failures carry the path that was probed.
func ExtractValue(document []byte, path string) (decimal.Decimal, error) {
	if strings.TrimSpace(path) == "" {
		return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrPathNotFound}
	}
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrPathNotFound}
		}
	}

	result := gjson.GetBytes(document, path)
	if !result.Exists() || result.Type == gjson.Null {
		return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrPathNotFound}
	}

	switch result.Type {
	case gjson.Number:
		// Parse from the raw token rather than the float64 view so
		// high-precision values survive intact.
		value, err := decimal.NewFromString(result.Raw)
		if err != nil {
			return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrNotNumeric}
		}
		return value, nil

	case gjson.String:
		value, err := decimal.NewFromString(strings.TrimSpace(result.Str))
		if err != nil {
			return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrNotNumeric}
		}
		return value, nil

	default:
		// Booleans, objects, and arrays cannot be coerced.
		return decimal.Zero, &errors.ExtractionError{Path: path, Reason: errors.ErrWrongType}
	}
}
