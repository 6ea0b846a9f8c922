// Package errors provides structured error encoding for the prover's
// diagnostic output.
package errors

import (
	"fmt"

	"github.com/sunholo/assocprove/internal/schema"
)

// Fix represents a suggested fix with confidence score
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Encoded represents a structured error in JSON format
type Encoded struct {
	Schema  string      `json:"schema"`
	Phase   string      `json:"phase"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fix     Fix         `json:"fix"`
	Context interface{} `json:"context,omitempty"`
	Pos     int         `json:"pos,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// NewSurface creates a surface-parser error.
func NewSurface(code, msg string, pos int) Encoded {
	return Encoded{
		Schema:  schema.ErrorV1,
		Phase:   "surface",
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Pos:     pos,
	}
}

// NewProverRejection creates a diagnostic describing why Prove rejected
// an input (the ASC0xx family). This is display-only: it never
// substitutes for the IsAssociative boolean a caller branches on.
func NewProverRejection(phase, code, msg string, ctx interface{}) Encoded {
	return Encoded{
		Schema:  schema.ErrorV1,
		Phase:   phase,
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Context: ctx,
	}
}

// WithFix adds a fix suggestion to the error
func (e Encoded) WithFix(suggestion string, confidence float64) Encoded {
	e.Fix = Fix{Suggestion: suggestion, Confidence: confidence}
	return e
}

// WithMeta adds metadata to the error
func (e Encoded) WithMeta(meta interface{}) Encoded {
	e.Meta = meta
	return e
}

// ToJSON converts the error to deterministic JSON
func (e Encoded) ToJSON() ([]byte, error) {
	data, err := schema.MarshalDeterministic(e)
	if err != nil {
		fallback := Encoded{
			Schema:  schema.ErrorV1,
			Message: "encoding failed",
			Meta:    map[string]string{"original_error": err.Error()},
		}
		return schema.MarshalDeterministic(fallback)
	}
	return schema.FormatJSON(data)
}

// SafeEncodeError safely encodes any error, never panics
func SafeEncodeError(err error, phase string) []byte {
	if err == nil {
		return nil
	}
	encoded := Encoded{
		Schema:  schema.ErrorV1,
		Phase:   phase,
		Code:    "GEN000",
		Message: err.Error(),
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
	}
	data, _ := encoded.ToJSON()
	return data
}

// FormatPos formats a source offset as "pos:N", matching the surface
// lexer's Token.Pos rather than a file:line:col triple (the prover's
// inputs are single-expression strings, never multi-line files).
func FormatPos(pos int) string {
	return fmt.Sprintf("pos:%d", pos)
}
