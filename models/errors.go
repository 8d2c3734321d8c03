package models

import (
	"fmt"
	"strings"
)

// maxValueSummary caps how much of an offending value is echoed back in
// an error message. Some fields (callback data, message text) carry
// payloads of several kilobytes.
const maxValueSummary = 64

// Violation describes one constraint failed by one field.
type Violation struct {
	// Field is the struct namespace of the offending field, for
	// example "SendRequestBody.Subject".
	Field string
	// Constraint is the name of the failed rule, for example "max"
	// or "url".
	Constraint string
	// Param is the rule parameter, if the rule takes one, for
	// example "150" for "max=150".
	Param string
	// Value is a short summary of the value that failed the rule.
	Value string
}

func (v Violation) String() string {
	if v.Param != "" {
		return fmt.Sprintf("%s: failed %q (param %s, value %s)", v.Field, v.Constraint, v.Param, v.Value)
	}
	return fmt.Sprintf("%s: failed %q (value %s)", v.Field, v.Constraint, v.Value)
}

// ValidationError is returned when a request payload breaks one or more
// field constraints. It carries every violation found in a single pass,
// not just the first, so callers can repair a payload in one round.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid payload"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

// DecodingError is returned when a response payload cannot be decoded:
// the document is not valid JSON, a field holds the wrong JSON type, or
// an enumerated field carries a token outside its closed set.
type DecodingError struct {
	// Field names the wire field that failed to decode, when known.
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

func valueSummary(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > maxValueSummary {
		return s[:maxValueSummary] + "..."
	}
	return s
}
