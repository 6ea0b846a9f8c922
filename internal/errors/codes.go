// Package errors provides the structured error-code taxonomy for
// assocprove: every code names a phase (surface parsing or one of the
// C1-C6 prover stages) and a specific condition within it.
package errors

const (
	// ============================================================================
	// Surface parser errors (SRF###)
	// ============================================================================

	// SRF001 indicates an unexpected or illegal token during lexing/parsing.
	SRF001 = "SRF001"

	// SRF002 indicates a missing closing delimiter (paren or bracket).
	SRF002 = "SRF002"

	// SRF003 indicates trailing, unconsumed input after a complete expression.
	SRF003 = "SRF003"

	// SRF004 indicates an invalid cast type name.
	SRF004 = "SRF004"

	// ============================================================================
	// Prover rejection diagnostics (ASC###) -- surfaced in verbose/trace
	// mode only. These are never part of the one-bit IsAssociative result
	// a caller branches on; they explain *why* a given input failed to
	// prove associative.
	// ============================================================================

	// ASC001 indicates C1 could not rewrite every self-reference into
	// canonical x/y variables (a non-pure or out-of-place self-call).
	ASC001 = "ASC001"

	// ASC002 indicates C3/C4 found no table entry matching a tuple
	// element's canonical form.
	ASC002 = "ASC002"

	// ASC003 indicates C5 rejected a subgraph of size greater than the
	// prover's supported bound.
	ASC003 = "ASC003"

	// ASC004 indicates two overlapping subgraphs disagreed on the
	// replacement bound to a shared index.
	ASC004 = "ASC004"

	// ============================================================================
	// Internal consistency violations (fatal; must never fire on
	// well-formed input -- see fatalAssertion in internal/assoc).
	// ============================================================================

	// FAT001 indicates a Call's recorded value_index falls outside the
	// tuple arity the prover was invoked with.
	FAT001 = "FAT001"

	// FAT002 indicates C5 produced a tuple index that no subgraph ever
	// covered.
	FAT002 = "FAT002"

	// FAT003 indicates a pattern table entry's Ops/Identities slices
	// disagree in length.
	FAT003 = "FAT003"
)

// ErrorInfo provides structured information about an error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// ErrorRegistry maps error codes to their information.
var ErrorRegistry = map[string]ErrorInfo{
	SRF001: {SRF001, "surface", "syntax", "Unexpected or illegal token"},
	SRF002: {SRF002, "surface", "syntax", "Missing closing delimiter"},
	SRF003: {SRF003, "surface", "syntax", "Trailing unconsumed input"},
	SRF004: {SRF004, "surface", "syntax", "Invalid cast type name"},

	ASC001: {ASC001, "rewrite", "self-reference", "Self-reference could not be rewritten"},
	ASC002: {ASC002, "pattern", "no-match", "No table entry matches the canonical form"},
	ASC003: {ASC003, "subgraph", "arity", "Subgraph exceeds the supported size bound"},
	ASC004: {ASC004, "subgraph", "consistency", "Overlapping subgraphs disagree on a shared index"},

	FAT001: {FAT001, "fatal", "invariant", "value_index outside tuple arity"},
	FAT002: {FAT002, "fatal", "invariant", "tuple index uncovered by any subgraph"},
	FAT003: {FAT003, "fatal", "invariant", "pattern table Ops/Identities length mismatch"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := ErrorRegistry[code]
	return info, exists
}

// IsSurfaceError checks if the error code is a surface-parser error.
func IsSurfaceError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "surface"
}

// IsProverRejection checks if the error code is an ordinary prover
// rejection diagnostic (rewrite/pattern/subgraph), as opposed to a
// fatal internal-consistency violation.
func IsProverRejection(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && (info.Phase == "rewrite" || info.Phase == "pattern" || info.Phase == "subgraph")
}

// IsFatalAssertion checks if the error code is a fatal internal-consistency code.
func IsFatalAssertion(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "fatal"
}
