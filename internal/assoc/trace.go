package assoc

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sunholo/assocprove/internal/errors"
	"github.com/sunholo/assocprove/internal/schema"
)

// tracer emits debug output at a tunable verbosity level (0 silent
// through 5 per-node) that never alters the proof's result. It is
// threaded as an explicit parameter through C1-C6 rather than kept as
// object/package state, to model any traversal-local bookkeeping as an
// argument, not shared mutable state. When trace is non-nil, every
// logf/logCount call site that also calls record mirrors its message
// into the exportable schema.ProofTrace.
type tracer struct {
	level   int
	out     io.Writer
	dim     func(a ...interface{}) string
	bold    func(a ...interface{}) string
	printer *message.Printer
	trace   *schema.ProofTrace
}

func newTracer(level int) *tracer {
	return &tracer{
		level:   level,
		out:     os.Stderr,
		dim:     color.New(color.Faint).SprintFunc(),
		bold:    color.New(color.Bold).SprintFunc(),
		printer: message.NewPrinter(language.English),
	}
}

// at reports whether a trace message at the given level should print.
func (tr *tracer) at(level int) bool {
	return tr != nil && tr.level >= level
}

func (tr *tracer) logf(level int, format string, args ...interface{}) {
	if !tr.at(level) {
		return
	}
	fmt.Fprintln(tr.out, tr.dim("[assoc] "+fmt.Sprintf(format, args...)))
}

// logCount renders a labeled count using the locale-aware formatting
// golang.org/x/text/message provides (thousands separators once a
// pattern table or subgraph count gets large enough to matter).
func (tr *tracer) logCount(level int, label string, n int) {
	if !tr.at(level) {
		return
	}
	fmt.Fprintln(tr.out, tr.dim(tr.printer.Sprintf("[assoc] %s: %d", label, n)))
}

// record appends a stage entry to the exportable trace, if the caller
// requested one via Options.CollectTrace. A no-op otherwise.
func (tr *tracer) record(phase string, indices []int, detail string) {
	if tr == nil || tr.trace == nil {
		return
	}
	tr.trace.Record(phase, indices, detail)
}

// reject logs the ASC0xx diagnostic for one of C6's ordinary
// (non-fatal) rejection outcomes: it encodes the rejection through
// errors.NewProverRejection, prints the structured JSON at verbosity 1,
// and mirrors the same message into the exportable trace via record.
// It never influences the IsAssociative verdict -- callers still branch
// on that, not on whether a rejection was logged.
func (tr *tracer) reject(code, phase string, indices []int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if tr.at(1) {
		enc := errors.NewProverRejection(phase, code, msg, indices)
		data, err := enc.ToJSON()
		if err != nil {
			fmt.Fprintln(tr.out, tr.dim("[assoc] "+msg))
		} else {
			fmt.Fprintln(tr.out, tr.dim("[assoc] "+string(data)))
		}
	}
	tr.record(phase, indices, msg)
}
