package schema

import (
	"encoding/json"
	"testing"
)

func TestNewProofTrace(t *testing.T) {
	tr := NewProofTrace("sum", 1)

	if tr.Schema != ProofTraceV1 {
		t.Errorf("expected schema %s, got %s", ProofTraceV1, tr.Schema)
	}
	if tr.FuncName != "sum" {
		t.Errorf("expected func_name 'sum', got '%s'", tr.FuncName)
	}
	if tr.Arity != 1 {
		t.Errorf("expected arity 1, got %d", tr.Arity)
	}
	if len(tr.Stages) != 0 {
		t.Error("expected empty stages for a new trace")
	}
}

func TestProofTraceJSON_RoundTrip(t *testing.T) {
	tr := NewProofTrace("argmin", 2)
	tr.Record("rewrite", []int{0, 1}, "both indices rewritten")
	tr.Record("pattern", []int{0, 1}, "matched built-in argmin")
	tr.Verdict = "associative"

	data, err := tr.ToJSON()
	if err != nil {
		t.Fatalf("failed to marshal trace: %v", err)
	}

	loaded, err := ProofTraceFromJSON(data)
	if err != nil {
		t.Fatalf("failed to unmarshal trace: %v", err)
	}

	if loaded.FuncName != tr.FuncName {
		t.Errorf("func_name mismatch: expected '%s', got '%s'", tr.FuncName, loaded.FuncName)
	}
	if len(loaded.Stages) != 2 {
		t.Errorf("expected 2 stages, got %d", len(loaded.Stages))
	}
	if loaded.Verdict != "associative" {
		t.Errorf("expected verdict 'associative', got '%s'", loaded.Verdict)
	}
}

func TestProofTraceFromJSON_InvalidSchema(t *testing.T) {
	invalidJSON := `{"schema": "unknown.v99", "func_name": "test"}`

	_, err := ProofTraceFromJSON([]byte(invalidJSON))
	if err == nil {
		t.Error("expected error for invalid schema version")
	}
}

func TestProofTraceFromJSON_InvalidJSON(t *testing.T) {
	invalidJSON := `{this is not valid json}`

	_, err := ProofTraceFromJSON([]byte(invalidJSON))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestProofTraceRecord(t *testing.T) {
	tr := NewProofTrace("f", 1)
	tr.Record("canon", []int{0}, "canonicalised to (x0 + y0)")

	if len(tr.Stages) != 1 {
		t.Fatalf("expected 1 stage, got %d", len(tr.Stages))
	}

	s := tr.Stages[0]
	if s.Phase != "canon" {
		t.Errorf("expected phase 'canon', got '%s'", s.Phase)
	}
	if len(s.Indices) != 1 || s.Indices[0] != 0 {
		t.Errorf("expected indices [0], got %v", s.Indices)
	}
	if s.Detail != "canonicalised to (x0 + y0)" {
		t.Errorf("unexpected detail: %s", s.Detail)
	}
}

func TestProofTraceJSONStructure(t *testing.T) {
	tr := NewProofTrace("g", 1)
	tr.Record("extract", []int{0}, "matched built-in Min")
	tr.Verdict = "associative"

	data, err := tr.ToJSON()
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	for _, field := range []string{"schema", "func_name", "arity", "stages", "verdict"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("missing %q field", field)
		}
	}
}
