// Package schema provides the deterministic JSON schemas assocprove
// exports: error reports (see internal/errors) and proof traces.
package schema

import (
	"encoding/json"
	"fmt"
)

// ProofTrace is a structured, exportable record of one Prove call: the
// tuple width, the per-index self-reference rewrite it went through,
// which subgraph (if any) proved each index, and the final verdict.
// It carries the same information a verbose tracer prints to stderr,
// just machine-readable.
type ProofTrace struct {
	Schema   string       `json:"schema"` // "assocprove.trace/v1"
	FuncName string       `json:"func_name"`
	Arity    int          `json:"arity"`
	Stages   []StageTrace `json:"stages"`
	Verdict  string       `json:"verdict"` // "associative", "not_associative"
}

// StageTrace records one pipeline stage's outcome for one tuple index
// (or for a whole subgraph, when Indices has more than one element).
type StageTrace struct {
	Phase   string `json:"phase"`   // "rewrite", "canon", "extract", "pattern", "subgraph"
	Indices []int  `json:"indices"` // tuple indices this stage entry covers
	Detail  string `json:"detail"`  // human-readable outcome, e.g. pattern name matched
}

// NewProofTrace creates an empty trace for a Prove call.
func NewProofTrace(funcName string, arity int) *ProofTrace {
	return &ProofTrace{
		Schema:   ProofTraceV1,
		FuncName: funcName,
		Arity:    arity,
		Stages:   []StageTrace{},
	}
}

// Record appends one stage entry to the trace.
func (t *ProofTrace) Record(phase string, indices []int, detail string) {
	t.Stages = append(t.Stages, StageTrace{Phase: phase, Indices: indices, Detail: detail})
}

// ToJSON converts the trace to deterministic JSON.
func (t *ProofTrace) ToJSON() ([]byte, error) {
	data, err := MarshalDeterministic(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proof trace: %w", err)
	}
	return FormatJSON(data)
}

// ProofTraceFromJSON loads a trace from JSON bytes.
func ProofTraceFromJSON(data []byte) (*ProofTrace, error) {
	var t ProofTrace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal proof trace: %w", err)
	}
	if t.Schema != ProofTraceV1 {
		return nil, fmt.Errorf("unsupported proof trace schema: %s (expected %s)", t.Schema, ProofTraceV1)
	}
	return &t, nil
}
