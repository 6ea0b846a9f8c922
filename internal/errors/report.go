package errors

import (
	"encoding/json"
	"errors"
)

// Report is the structured error type that NewGeneric builds (the
// Encoded builders in json_encoder.go return Encoded instead); a
// *Report can be wrapped as ReportError so it survives an errors.As()
// unwrap.
type Report struct {
	Schema  string         `json:"schema"`         // Always "assocprove.error/v1"
	Code    string         `json:"code"`            // Error code (SRF001, ASC001, ...)
	Phase   string         `json:"phase"`            // Phase: "surface", "rewrite", "canon", ...
	Message string         `json:"message"`          // Human-readable message
	Pos     int            `json:"pos,omitempty"`    // Source offset, -1 if not applicable
	Data    map[string]any `json:"data,omitempty"`  // Structured data (sorted keys)
	Fix     *Fix           `json:"fix,omitempty"`    // Suggested fix (optional)
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (deterministic: fields in declaration
// order, Data keys sorted).
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewGeneric creates a generic error report for a phase that has no
// dedicated code yet.
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  "assocprove.error/v1",
		Code:    "GEN000",
		Phase:   phase,
		Message: err.Error(),
		Pos:     -1,
		Data:    map[string]any{},
	}
}
