package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a provided field cannot be used as a number.
var ErrInvalidInput = errors.New("invalid input")

// ParseNumber coerces a raw JSON value to a float64.
// A missing value (nil raw) yields fallback. Numbers, numeric strings and
// booleans are accepted; null, arrays, objects and unparsable strings are not.
func ParseNumber(field string, raw json.RawMessage, fallback float64) (float64, error) {
	if raw == nil {
		return fallback, nil
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fallback, nil
	}

	var v float64
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, invalid(field, "malformed string")
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, invalid(field, fmt.Sprintf("%q is not a number", s))
		}
		v = f
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return 0, invalid(field, "malformed boolean")
		}
		if b {
			v = 1
		}
	case 'n':
		return 0, invalid(field, "null is not a number")
	case '[', '{':
		return 0, invalid(field, "expected a number")
	default:
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, invalid(field, "malformed number")
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "value must be finite")
	}
	return v, nil
}

// MatchToken reports whether raw is exactly the JSON string token.
// A missing value is compared using fallback instead. Any other value,
// including non-string JSON, is simply not a match.
func MatchToken(raw json.RawMessage, token, fallback string) bool {
	if raw == nil {
		return fallback == token
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s == token
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}
