package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sunholo/assocprove/internal/assoc"
	"github.com/sunholo/assocprove/internal/ir"
	"github.com/sunholo/assocprove/internal/replassoc"
	"github.com/sunholo/assocprove/internal/surface"
)

var (
	// Version info - set by ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag  = flag.Bool("version", false, "Print version information")
		helpFlag     = flag.Bool("help", false, "Show this help message")
		patternsFlag = flag.String("patterns", "", "Load supplementary AssociativePatterns from a YAML file")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	opts := assoc.DefaultOptions()
	if *patternsFlag != "" {
		extra, err := assoc.LoadPatternConfigFile(*patternsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
			os.Exit(1)
		}
		opts.ExtraPatterns = extra
	}

	switch flag.Arg(0) {
	case "prove":
		runProve(flag.Args()[1:], opts)
	case "repl":
		replassoc.New(opts).Start(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("assocprove %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("Built:  %s\n", BuildTime)
	}
}

func printHelp() {
	fmt.Println(bold("assocprove - the associativity prover"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ailang [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <name(args)> <e0[;e1;...]>   Prove a single update definition\n", cyan("prove"))
	fmt.Printf("  %s                              Start the interactive prover shell\n", cyan("repl"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version            Print version information")
	fmt.Println("  --help               Show this help message")
	fmt.Println("  --patterns <file>    Load supplementary AssociativePatterns from a YAML file")
	fmt.Println("                       (valid for both prove and repl; must precede the command)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s\n", cyan(`ailang prove "f(i)" "y + z + f(i)[0]"`))
	fmt.Printf("  %s\n", cyan(`ailang prove "f(i)" "min(f(i)[0], g(i)); select(f(i)[0] < g(i), f(i)[1], rx)"`))
	fmt.Printf("  %s\n", cyan("ailang repl"))
	fmt.Printf("  %s\n", cyan(`ailang --patterns extra.yaml prove "f(i)" "y + z + f(i)[0]"`))
}

// runProve parses its two positional arguments -- the "name(args)" head
// and the semicolon-separated tuple-element expressions -- and reports
// whether the resulting update definition is associative.
func runProve(args []string, opts assoc.Options) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, red("Error:")+" expected: ailang [--patterns <file>] prove <name(args)> <expr0[;expr1;...]>")
		os.Exit(1)
	}

	head := strings.TrimSpace(args[0])
	body := strings.TrimSpace(args[1])

	funcName, lhsArgs, err := parseHead(head)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}

	var exprs []string
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			exprs = append(exprs, part)
		}
	}
	if len(exprs) == 0 {
		fmt.Fprintln(os.Stderr, red("Error:")+" no tuple-element expressions given")
		os.Exit(1)
	}

	irExprs := make([]ir.Expr, 0, len(exprs))
	for _, e := range exprs {
		parsed, errs := surface.ParseExpr(e, funcName)
		if len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), errs[0])
			os.Exit(1)
		}
		irExprs = append(irExprs, parsed)
	}

	op := assoc.ProveWithOptions(funcName, lhsArgs, irExprs, opts)
	if !op.Associative() {
		fmt.Printf("%s not associative\n", red("✗"))
		os.Exit(1)
	}

	fmt.Printf("%s associative (commutative=%v)\n", green("✓"), op.Commutative())
	for i := range op.Pattern.Ops {
		fmt.Printf("  [%d] op = %s, identity = %s\n", i, op.Pattern.Ops[i], op.Pattern.Identities[i])
	}
}

// parseHead splits "name(a, b)" into the function name and its
// argument variables (each typed Int32 -- the prover only inspects
// self-reference shape, never argument types).
func parseHead(head string) (string, []ir.Expr, error) {
	open := strings.Index(head, "(")
	close := strings.LastIndex(head, ")")
	if open < 0 || close < open {
		return "", nil, fmt.Errorf("expected %q, got %q", "name(args)", head)
	}
	name := strings.TrimSpace(head[:open])

	var args []ir.Expr
	for _, a := range strings.Split(head[open+1:close], ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			args = append(args, ir.NewVariable(a, ir.Int32))
		}
	}
	return name, args, nil
}
