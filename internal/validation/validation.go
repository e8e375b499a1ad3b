// Package validation contains one closed-shape parser per request payload.
// Parsers normalize their input (trim, lowercase, rounding) and reject
// unknown fields; they perform no I/O.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/example/vardhaman/internal/objectid"
)

// Error enumerates the payload fields that failed validation.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	if len(e.Problems) == 0 {
		return "invalid request body"
	}
	return "invalid request body: " + strings.Join(e.Problems, "; ")
}

func errorf(format string, args ...any) *Error {
	return &Error{Problems: []string{fmt.Sprintf(format, args...)}}
}

// decodeStrict unmarshals body into dst, failing on unknown fields and on
// trailing content after the first JSON value.
func decodeStrict(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing content")
	}
	return nil
}

// requireName trims and lowercases a required name field and enforces the
// minimum length shared by every taxonomy entity.
func requireName(field string, value *string, problems *[]string) string {
	if value == nil {
		*problems = append(*problems, field+" is required")
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(*value))
	if len(name) < 3 {
		*problems = append(*problems, field+" should be at least 3 characters")
	}
	return name
}

// requireID checks a required reference field for the 24-hex identifier
// format.
func requireID(field string, value *string, problems *[]string) string {
	if value == nil {
		*problems = append(*problems, field+" is required")
		return ""
	}
	if !objectid.IsValid(*value) {
		*problems = append(*problems, field+" is not a valid identifier")
	}
	return *value
}

// requireIDList enforces a non-empty list of well-formed identifiers.
func requireIDList(field string, values []string, problems *[]string) []string {
	if len(values) == 0 {
		*problems = append(*problems, "at least one "+field+" is required")
		return nil
	}
	for _, v := range values {
		if !objectid.IsValid(v) {
			*problems = append(*problems, field+" contains an invalid identifier")
			break
		}
	}
	return values
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
