package ir

import (
	"fmt"
	"sync/atomic"
)

// Generator is a thread-safe fresh-identifier source for `unique_name`.
// A single shared global invites fresh-name collisions across parallel
// callers unless it is either a thread-safe counter or passed explicitly
// through the call stack. We do both: NewGenerator gives each prover
// invocation (internal/assoc's orchestrator) its own counter, and
// defaultGenerator exposes one process-wide instance for callers (tests,
// the CLI) that genuinely want global behavior.
type Generator struct {
	counter uint64
}

func NewGenerator() *Generator { return &Generator{} }

// Fresh returns a new identifier "<prefix><n>", unique among every call
// made against this Generator.
func (g *Generator) Fresh(prefix string) string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s%d", prefix, n)
}

var defaultGenerator = NewGenerator()

// UniqueName is the process-wide convenience wrapper around
// `unique_name(prefix) -> string`.
func UniqueName(prefix string) string {
	return defaultGenerator.Fresh(prefix)
}
