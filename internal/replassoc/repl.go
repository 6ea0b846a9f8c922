// Package replassoc is the interactive associativity-prover shell
// `ailang repl` starts: type an update definition, see whether
// it proves associative, and inspect the synthesised operator.
//
// Input line syntax: `name(args) = expr0 [; expr1 [; ...]]`, e.g.
//
//	f(i) = y + z + f(i)[0]
//	f(i) = min(f(i)[0], g(i)) ; select(f(i)[0] < g(i), f(i)[1], rx)
package replassoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/assocprove/internal/assoc"
	"github.com/sunholo/assocprove/internal/ir"
	"github.com/sunholo/assocprove/internal/surface"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// REPL is a minimal line-at-a-time front end over Prove, grounded on
// the surface language's liner-backed interactive shell: a persistent
// history file, a command prefix (":"), and the same prompt/Goodbye
// idiom.
type REPL struct {
	Options assoc.Options
	history []string
}

func New(opts assoc.Options) *REPL {
	return &REPL{Options: opts}
}

func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".assocprove_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("assocprove"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt("assoc> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.handleCommand(input, out)
			continue
		}
		r.runLine(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) handleCommand(cmd string, out io.Writer) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help, :h   Show this help")
		fmt.Fprintln(out, "  :quit, :q   Exit")
		fmt.Fprintln(out, "  :history    Show input history")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Input: name(args) = expr0 [; expr1 [; ...]]")
	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "  %d: %s\n", i+1, h)
		}
	default:
		fmt.Fprintf(out, "%s unknown command %q\n", red("Error:"), cmd)
	}
}

func (r *REPL) runLine(input string, out io.Writer) {
	funcName, args, exprs, err := parseDefinition(input)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", red("Error:"), err)
		return
	}

	op := assoc.ProveWithOptions(funcName, args, exprs, r.Options)
	if !op.Associative() {
		fmt.Fprintf(out, "%s not associative\n", red("✗"))
		return
	}
	fmt.Fprintf(out, "%s associative (commutative=%v)\n", green("✓"), op.Commutative())
	for i := range op.Pattern.Ops {
		fmt.Fprintf(out, "  [%d] %s %s = %s, identity = %s\n", i, cyan("op"), op.Pattern.Ops[i], op.Pattern.Ops[i].Type(), op.Pattern.Identities[i])
		if op.Xs[i].Defined() {
			fmt.Fprintf(out, "      x = %s -> %s\n", op.Xs[i].Var, op.Xs[i].Expr)
		}
		if op.Ys[i].Defined() {
			fmt.Fprintf(out, "      y = %s -> %s\n", op.Ys[i].Var, op.Ys[i].Expr)
		}
	}
}

// parseDefinition splits "name(args) = e0 ; e1 ; ..." and parses the
// lhs args and each tuple element through the surface parser.
func parseDefinition(input string) (string, []ir.Expr, []ir.Expr, error) {
	eq := strings.Index(input, "=")
	if eq < 0 {
		return "", nil, nil, fmt.Errorf("expected 'name(args) = expr', no '=' found")
	}
	lhs := strings.TrimSpace(input[:eq])
	rhs := strings.TrimSpace(input[eq+1:])

	open := strings.Index(lhs, "(")
	close := strings.LastIndex(lhs, ")")
	if open < 0 || close < open {
		return "", nil, nil, fmt.Errorf("expected 'name(args)' on the left of '='")
	}
	funcName := strings.TrimSpace(lhs[:open])
	argNames := strings.Split(lhs[open+1:close], ",")

	var args []ir.Expr
	for _, a := range argNames {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		args = append(args, ir.NewVariable(a, ir.Int32))
	}

	var exprs []ir.Expr
	for _, part := range strings.Split(rhs, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		e, errs := surface.ParseExpr(part, funcName)
		if len(errs) > 0 {
			return "", nil, nil, errs[0]
		}
		exprs = append(exprs, e)
	}
	if len(exprs) == 0 {
		return "", nil, nil, fmt.Errorf("expected at least one tuple element expression")
	}
	return funcName, args, exprs, nil
}
