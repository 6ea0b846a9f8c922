package assoc

// Options configures a Prove call. It is never part of the pure
// `prove_associativity(func_name, args, exprs)` signature —
// Prove(funcName, args, exprs) is that exact signature, with Options
// threaded explicitly as a fourth argument only through ProveWithOptions
// and ProveTraced, which callers that need tracing or a supplementary
// pattern table use instead.
type Options struct {
	// Verbosity is the one tunable verbosity level, 0 (silent) through
	// 5 (per-node trace). Never alters the result.
	Verbosity int

	// ExtraPatterns, when non-nil, are consulted by C4 after the
	// built-in table for every arity they cover (see table.go). Use
	// LoadPatternConfig/LoadPatternConfigFile to build this from a YAML
	// document instead of Go literals.
	ExtraPatterns []AssociativePattern

	// CollectTrace makes ProveTraced build and return a machine-readable
	// schema.ProofTrace alongside the verdict. Ignored by Prove and
	// ProveWithOptions, which never return a trace.
	CollectTrace bool
}

// DefaultOptions is silent tracing with only the built-in pattern table.
func DefaultOptions() Options {
	return Options{Verbosity: 0}
}
