package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli"
)

var startTime time.Time

func init() {
	startTime = time.Now()
}

// GetFlags mirrors the teacher's flag table (main.go), trimmed to the CLI
// surface spec.md §6 describes: a positional CNF path, a "-test N"
// self-test, verbosity/debug toggles, and an optional CPU time limit that
// is a CLI convenience, not part of the conforming core (spec.md §5).
func GetFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "pretty-print the final sequent and statistics for debugging",
		},
		cli.BoolFlag{
			Name:  "verbosity,verb",
			Usage: "print problem and search statistics",
		},
		cli.IntFlag{
			Name:  "test",
			Usage: "run the self-test generator over N variables instead of reading a file",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "limit on CPU time allowed in seconds (0 disables)",
			Value: 0,
		},
	}
}

// ValidateFlags enforces spec.md §6's "exactly one of a positional path OR
// -test N" rule.
func ValidateFlags(c *cli.Context) error {
	hasPath := c.NArg() == 1
	hasTest := c.IsSet("test")
	if c.NArg() > 1 {
		return fmt.Errorf("usage error: at most one CNF file path may be given")
	}
	if hasPath && hasTest {
		return fmt.Errorf("usage error: supply a CNF file path OR -test N, not both")
	}
	if !hasPath && !hasTest {
		return fmt.Errorf("usage error: supply a CNF file path OR -test N")
	}
	if hasTest && c.Int("test") < 1 {
		return fmt.Errorf("usage error: -test N requires N >= 1")
	}
	return nil
}

func printProblemStatistics(numVars, numClauses int) {
	fmt.Printf("c ============================[ Problem Statistics ]=============================\n")
	fmt.Printf("c |  Number of variables:  %12d                                         |\n", numVars)
	fmt.Printf("c |  Number of clauses:    %12d                                         |\n", numClauses)
	fmt.Printf("c ================================================================================\n")
}

func printSearchStatistics(st *Statistics) {
	elapsed := time.Since(startTime).Seconds()
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c decisions:     %12d (%.02f / sec)\n", st.DecisionCount, rate(st.DecisionCount, elapsed))
	fmt.Printf("c propagations:  %12d (%.02f / sec)\n", st.PropagationCount, rate(st.PropagationCount, elapsed))
	fmt.Printf("c axioms:        %12d\n", st.AxiomCount)
	fmt.Printf("c nodes:         %12d\n", st.NodesExplored)
	fmt.Printf("c max depth:     %12d\n", st.MaxStackDepth)
	fmt.Printf("c cpu time:      %12f\n", elapsed)
}

func rate(n uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(n) / seconds
}

// setTimeOut installs the CLI-only cooperative deadline spec.md §5
// mentions as an out-of-conformance convenience, grounded on the
// teacher's setTimeOut/setInterupt goroutines (main.go).
func setTimeOut(limitSeconds int, verbose bool, st *Statistics) {
	if limitSeconds <= 0 {
		return
	}
	go func() {
		<-time.After(time.Duration(limitSeconds) * time.Second)
		fmt.Println("c TIMEOUT")
		if verbose {
			printSearchStatistics(st)
		}
		fmt.Println("\ns INDETERMINATE")
		os.Exit(0)
	}()
}

func setInterrupt(verbose bool, st *Statistics) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("c INTERRUPT")
		if verbose {
			printSearchStatistics(st)
		}
		fmt.Println("\ns INDETERMINATE")
		os.Exit(0)
	}()
}

// PrintModel writes the "v ..." line (spec.md §6): every variable from 1
// to numVars, signed per the witness, defaulting unmentioned variables to
// positive (spec.md §4.7).
func PrintModel(model map[Var]bool, numVars int) {
	fmt.Print("v ")
	for i := 0; i < numVars; i++ {
		v := Var(i)
		positive := true
		if val, ok := model[v]; ok {
			positive = val
		}
		if positive {
			fmt.Printf("%d ", i+1)
		} else {
			fmt.Printf("%d ", -(i + 1))
		}
	}
	fmt.Print("0\n")
}

func debugDump(label string, v interface{}) {
	fmt.Fprintf(os.Stderr, "c --- debug: %s ---\n", label)
	fmt.Fprintln(os.Stderr, pp.Sprint(v))
}

func runFile(c *cli.Context) error {
	path := c.Args().Get(0)
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()

	problem, err := ParseDIMACS(fp)
	if err != nil {
		return err
	}
	if problem.DroppedTautologies > 0 {
		fmt.Printf("c dropped %d tautological clause(s)\n", problem.DroppedTautologies)
	}
	return runProblem(c, path, problem)
}

func runTest(c *cli.Context) error {
	n := c.Int("test")
	fmt.Printf("c self-test over %d variables\n", n)

	unsatClauses := GenerateFullClauseSet(n)
	fmt.Printf("c full clause set: %d clauses, expecting UNSATISFIABLE\n", len(unsatClauses))
	verdict := SolveClauses(unsatClauses)
	if verdict.Satisfiable {
		return fmt.Errorf("self-test FAILED: full clause set over %d variables was reported satisfiable", n)
	}
	printVerdict(verdict, n)
	if c.Bool("verbosity") {
		printSearchStatistics(verdict.Stats)
	}

	satClauses := GenerateNearFullClauseSet(n)
	fmt.Printf("c near-full clause set: %d clauses, expecting SATISFIABLE\n", len(satClauses))
	verdict = SolveClauses(satClauses)
	if !verdict.Satisfiable {
		return fmt.Errorf("self-test FAILED: near-full clause set over %d variables was reported unsatisfiable", n)
	}
	printVerdict(verdict, n)
	if c.Bool("verbosity") {
		printSearchStatistics(verdict.Stats)
	}
	return nil
}

func runProblem(c *cli.Context, label string, problem *Problem) error {
	if c.Bool("verbosity") {
		printProblemStatistics(problem.NumVars, len(problem.Clauses))
	}

	root := NewSequent(problem.Clauses)
	stats := NewStatistics()
	setTimeOut(c.Int("cpu-time-limit"), c.Bool("verbosity"), stats)
	setInterrupt(c.Bool("verbosity"), stats)

	verdict := SolveWithStats(root, stats)

	if c.Bool("verbosity") {
		printSearchStatistics(verdict.Stats)
	}
	if c.Bool("debug") {
		debugDump(label, verdict)
	}
	printVerdict(verdict, problem.NumVars)
	return nil
}

func printVerdict(v Verdict, numVars int) {
	if v.Satisfiable {
		fmt.Println("\ns SATISFIABLE")
		PrintModel(v.Model, numVars)
	} else {
		fmt.Println("\ns UNSATISFIABLE")
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "propsat"
	app.Usage = "a unit-propagation + atomic-cut SAT decision procedure"
	app.ArgsUsage = "[cnf-file]"
	app.Flags = GetFlags()

	app.Action = func(c *cli.Context) error {
		if err := ValidateFlags(c); err != nil {
			fmt.Fprintln(os.Stderr, err)
			cli.ShowAppHelpAndExit(c, 2)
		}
		if c.IsSet("test") {
			return runTest(c)
		}
		return runFile(c)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
