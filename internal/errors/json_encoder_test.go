package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sunholo/assocprove/internal/schema"
)

func TestNewSurface(t *testing.T) {
	err := NewSurface(SRF001, "unexpected token", 7)

	if err.Schema != schema.ErrorV1 {
		t.Errorf("Expected schema %s, got %s", schema.ErrorV1, err.Schema)
	}
	if err.Phase != "surface" {
		t.Errorf("Expected phase surface, got %s", err.Phase)
	}
	if err.Code != SRF001 {
		t.Errorf("Expected code %s, got %s", SRF001, err.Code)
	}
	if err.Pos != 7 {
		t.Errorf("Expected pos 7, got %d", err.Pos)
	}
}

func TestNewProverRejection(t *testing.T) {
	err := NewProverRejection("pattern", ASC002, "no table entry matches", nil)

	if err.Schema != schema.ErrorV1 {
		t.Errorf("Expected schema %s, got %s", schema.ErrorV1, err.Schema)
	}
	if err.Phase != "pattern" {
		t.Errorf("Expected phase pattern, got %s", err.Phase)
	}
	if err.Code != ASC002 {
		t.Errorf("Expected code %s, got %s", ASC002, err.Code)
	}
}

func TestWithFix(t *testing.T) {
	err := NewSurface(SRF002, "missing closing paren", 12)
	err = err.WithFix("add a closing ')'", 0.9)

	if err.Fix.Suggestion != "add a closing ')'" {
		t.Errorf("Expected fix suggestion, got %s", err.Fix.Suggestion)
	}
	if err.Fix.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", err.Fix.Confidence)
	}
}

func TestWithMeta(t *testing.T) {
	meta := map[string]string{"hint": "check operand order"}

	err := NewProverRejection("subgraph", ASC003, "subgraph too large", nil)
	err = err.WithMeta(meta)

	if err.Meta == nil {
		t.Error("Expected meta to be set")
	}
}

func TestEncodedToJSON(t *testing.T) {
	err := NewProverRejection("pattern", ASC002, "no table entry matches tuple index 1", nil).
		WithFix("add a matching AssociativePattern entry", 0.6)

	jsonData, jsonErr := err.ToJSON()
	if jsonErr != nil {
		t.Fatalf("ToJSON failed: %v", jsonErr)
	}

	var result map[string]interface{}
	if parseErr := json.Unmarshal(jsonData, &result); parseErr != nil {
		t.Fatalf("Failed to parse JSON: %v", parseErr)
	}

	if result["schema"] != schema.ErrorV1 {
		t.Errorf("Expected schema %s, got %v", schema.ErrorV1, result["schema"])
	}
	if result["phase"] != "pattern" {
		t.Errorf("Expected phase pattern, got %v", result["phase"])
	}
	if result["code"] != ASC002 {
		t.Errorf("Expected code %s, got %v", ASC002, result["code"])
	}
	if _, ok := result["fix"]; !ok {
		t.Error("Fix field should always be present")
	}
}

func TestSafeEncodeError(t *testing.T) {
	result := SafeEncodeError(nil, "pattern")
	if result != nil {
		t.Error("Expected nil for nil error")
	}

	testErr := &testError{msg: "test error"}
	result = SafeEncodeError(testErr, "subgraph")

	var parsed map[string]interface{}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if parsed["phase"] != "subgraph" {
		t.Errorf("Expected phase subgraph, got %v", parsed["phase"])
	}
	if !strings.Contains(parsed["message"].(string), "test error") {
		t.Errorf("Expected message to contain 'test error', got %v", parsed["message"])
	}
}

func TestFormatPos(t *testing.T) {
	tests := []struct {
		pos      int
		expected string
	}{
		{0, "pos:0"},
		{7, "pos:7"},
		{123, "pos:123"},
	}

	for _, tt := range tests {
		if got := FormatPos(tt.pos); got != tt.expected {
			t.Errorf("FormatPos(%d) = %s, want %s", tt.pos, got, tt.expected)
		}
	}
}

func TestErrorCodes(t *testing.T) {
	surfaceCodes := []string{SRF001, SRF002, SRF003, SRF004}
	for _, code := range surfaceCodes {
		if !strings.HasPrefix(code, "SRF") {
			t.Errorf("Surface code %s should start with SRF", code)
		}
	}

	proverCodes := []string{ASC001, ASC002, ASC003, ASC004}
	for _, code := range proverCodes {
		if !strings.HasPrefix(code, "ASC") {
			t.Errorf("Prover rejection code %s should start with ASC", code)
		}
	}

	fatalCodes := []string{FAT001, FAT002, FAT003}
	for _, code := range fatalCodes {
		if !strings.HasPrefix(code, "FAT") {
			t.Errorf("Fatal assertion code %s should start with FAT", code)
		}
	}
}

// Helper type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
