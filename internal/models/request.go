package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedRequest is returned when a body is not a JSON object.
var ErrMalformedRequest = errors.New("malformed request")

// decodeObject splits a JSON object body into its raw members.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if fields == nil {
		// Body was the literal null.
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedRequest)
	}
	return fields, nil
}
