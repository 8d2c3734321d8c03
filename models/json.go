package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Marshal serializes a model value to its JSON wire form. Optional
// fields left unset (nil pointers, nil slices) produce no wire field at
// all rather than an explicit null.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// Unmarshal parses a JSON wire document into v. Optional fields absent
// from the document are left unset. A document whose shape does not
// match the model, or whose enumerated fields carry unknown tokens,
// fails with a *DecodingError; it is never silently coerced.
func Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var de *DecodingError
	if errors.As(err, &de) {
		return de
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodingError{Field: typeErr.Field, Err: err}
	}
	return &DecodingError{Err: err}
}

// DecodeToken parses a JSON string and checks it against the closed set
// of tokens valid for field. Unknown tokens are rejected so a vocabulary
// change on the remote side surfaces as an error instead of leaking an
// unrecognized value into caller code.
func DecodeToken(data []byte, field string, allowed []string) (string, error) {
	var tok string
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", &DecodingError{Field: field, Err: err}
	}
	for _, a := range allowed {
		if tok == a {
			return tok, nil
		}
	}
	return "", &DecodingError{Field: field, Err: fmt.Errorf("unknown token %q", tok)}
}
