package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestGoldenErrorJSON tests that error JSON is deterministic and matches schema
func TestGoldenErrorJSON(t *testing.T) {
	tests := []struct {
		name     string
		err      map[string]interface{}
		wantJSON string // Exact expected JSON output
	}{
		{
			name: "surface_parse_error",
			err: map[string]interface{}{
				"schema":  ErrorV1,
				"phase":   "surface",
				"code":    "SRF001",
				"message": "unexpected token \")\"",
				"pos":     7,
			},
			wantJSON: `{
  "code": "SRF001",
  "message": "unexpected token \")\"",
  "phase": "surface",
  "pos": 7,
  "schema": "assocprove.error/v1"
}`,
		},
		{
			name: "pattern_no_match_error",
			err: map[string]interface{}{
				"schema":  ErrorV1,
				"phase":   "pattern",
				"code":    "ASC002",
				"message": "no table entry matches the canonical form of tuple index 0",
			},
			wantJSON: `{
  "code": "ASC002",
  "message": "no table entry matches the canonical form of tuple index 0",
  "phase": "pattern",
  "schema": "assocprove.error/v1"
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalDeterministic(tt.err)
			if err != nil {
				t.Fatalf("MarshalDeterministic() error = %v", err)
			}

			formatted, err := FormatJSON(got)
			if err != nil {
				t.Fatalf("FormatJSON() error = %v", err)
			}

			wantNorm := normalizeJSON(t, tt.wantJSON)
			gotNorm := normalizeJSON(t, string(formatted))

			if gotNorm != wantNorm {
				t.Errorf("JSON mismatch:\nGot:\n%s\nWant:\n%s", gotNorm, wantNorm)
			}

			var parsed map[string]interface{}
			if err := json.Unmarshal(got, &parsed); err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}

			if schemaField, ok := parsed["schema"].(string); ok {
				if !Accepts(schemaField, ErrorV1) {
					t.Errorf("Schema %q does not accept %q", schemaField, ErrorV1)
				}
			} else {
				t.Error("Missing schema field in JSON output")
			}
		})
	}
}

// TestGoldenProofTraceJSON tests that a proof trace serializes deterministically.
func TestGoldenProofTraceJSON(t *testing.T) {
	tr := NewProofTrace("sum", 1)
	tr.Record("rewrite", []int{0}, "self-reference rewritten to op_x0/op_y0")
	tr.Record("extract", []int{0}, "matched built-in Add")
	tr.Verdict = "associative"

	got, err := tr.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if decoded["schema"] != ProofTraceV1 {
		t.Errorf("expected schema %s, got %v", ProofTraceV1, decoded["schema"])
	}
	if decoded["verdict"] != "associative" {
		t.Errorf("expected verdict associative, got %v", decoded["verdict"])
	}
}

// TestGoldenCompactMode tests that compact mode works correctly
func TestGoldenCompactMode(t *testing.T) {
	data := map[string]interface{}{
		"schema": ErrorV1,
		"counts": map[string]interface{}{
			"passed": 10,
			"failed": 2,
		},
	}

	SetCompactMode(false)
	pretty, err := MarshalDeterministic(data)
	if err != nil {
		t.Fatalf("MarshalDeterministic error = %v", err)
	}
	prettyFormatted, err := FormatJSON(pretty)
	if err != nil {
		t.Fatalf("FormatJSON error = %v", err)
	}
	if !strings.Contains(string(prettyFormatted), "\n") {
		t.Error("Pretty mode should contain newlines")
	}

	SetCompactMode(true)
	compact, err := MarshalDeterministic(data)
	if err != nil {
		t.Fatalf("MarshalDeterministic error = %v", err)
	}
	compactFormatted, err := FormatJSON(compact)
	if err != nil {
		t.Fatalf("FormatJSON error = %v", err)
	}
	if strings.Contains(string(compactFormatted), "\n") {
		t.Error("Compact mode should not contain newlines")
	}

	wantCompact := `{"counts":{"failed":2,"passed":10},"schema":"assocprove.error/v1"}`
	if string(compactFormatted) != wantCompact {
		t.Errorf("Compact JSON mismatch:\nGot:  %s\nWant: %s", string(compactFormatted), wantCompact)
	}

	SetCompactMode(false)
}

// TestAcceptsCompatibility tests schema version compatibility
func TestAcceptsCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		want     string
		expected bool
	}{
		{"exact error v1", "assocprove.error/v1", ErrorV1, true},
		{"exact trace v1", "assocprove.trace/v1", ProofTraceV1, true},
		{"error v1.1", "assocprove.error/v1.1", ErrorV1, true},
		{"trace v1.2.3", "assocprove.trace/v1.2.3", ProofTraceV1, true},
		{"error v2", "assocprove.error/v2", ErrorV1, false},
		{"trace v2", "assocprove.trace/v2", ProofTraceV1, false},
		{"wrong schema", "assocprove.trace/v1", ErrorV1, false},
		{"wrong schema 2", "assocprove.error/v1", ProofTraceV1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accepts(tt.got, tt.want); got != tt.expected {
				t.Errorf("Accepts(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.expected)
			}
		})
	}
}

// normalizeJSON normalizes JSON for comparison by parsing and re-formatting
func normalizeJSON(t *testing.T, jsonStr string) string {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		t.Fatalf("Invalid JSON: %v\nJSON: %s", err, jsonStr)
	}

	normalized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		t.Fatalf("Failed to normalize JSON: %v", err)
	}

	return string(normalized)
}
