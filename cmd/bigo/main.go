package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/config"
	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/rank"
	"github.com/hellasleeper108/bigO/internal/report"
	"github.com/hellasleeper108/bigO/internal/sweep"
	"github.com/hellasleeper108/bigO/internal/timing"
	"github.com/hellasleeper108/bigO/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	policyFile = config.DefaultPath
	verbose    bool
	jsonOutput bool
	tuiMode    bool

	startN    int
	endN      int
	stepN     int
	modeFlag  string
	chartFlag string
	expectStr string

	rootCmd = &cobra.Command{
		Use:   "bigo",
		Short: "An educational tool that measures how algorithm runtime grows with input size.",
		Long:  `This tool runs reference algorithms from the canonical big-O complexity classes over increasing input sizes, times each invocation, and visualizes how the runtime curves diverge. A safety governor refuses input sizes that would freeze the machine, so even O(2^n) and O(n!) are safe to explore.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format instead of rich text")
	rootCmd.PersistentFlags().BoolVar(&tuiMode, "tui", false, "Enable interactive TUI mode with real-time progress")
	rootCmd.PersistentFlags().
		StringVar(&policyFile, "policy", config.DefaultPath, "Optional: path to a policy overrides file (ceilings, budgets, judgment bands)")

	runCmd.Flags().IntVar(&startN, "start", 100, "Smallest input size")
	runCmd.Flags().IntVar(&endN, "end", 1000, "Largest input size")
	runCmd.Flags().IntVar(&stepN, "step", 100, "Input size increment")
	runCmd.Flags().StringVar(&modeFlag, "mode", "teaching", "Safety mode: teaching or chaos")
	runCmd.Flags().StringVar(&chartFlag, "chart", sweep.ChartBars, "Report chart kind: table or bars")

	guessCmd.Flags().StringVar(&expectStr, "expect", "", "Optional: complexity class to check the measurements against")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(listCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// applyLogLevel sets log verbosity from flags; quiet under --json/--tui so
// structured output and the live view stay clean.
func applyLogLevel() {
	if (jsonOutput || tuiMode) && !verbose {
		logrus.SetLevel(logrus.WarnLevel)
	} else if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// loadPolicy builds the governor policy and judgment bands, applying any
// overrides from the policy file.
func loadPolicy() (*governor.Policy, rank.Bands) {
	store, err := config.NewPolicyStore(policyFile)
	if err != nil {
		logrus.Fatalf("Unable to read policy file: %v", err)
	}
	return store.BuildPolicy(), store.BuildBands()
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var runCmd = &cobra.Command{
	Use:   "run [ALGORITHM...]",
	Short: "Sweep algorithms over a range of input sizes and compare them. [Defaults to all built-ins]",
	Long:  "Measure each named algorithm at every input size in the range, then rank them by practicality. If no algorithms are specified, all built-in reference algorithms are swept.",
	Run: func(cmd *cobra.Command, args []string) {
		// Check for conflicting flags
		if jsonOutput && tuiMode {
			logrus.Fatal("Cannot use --json and --tui flags together")
		}
		applyLogLevel()

		mode, err := governor.ParseMode(modeFlag)
		if err != nil {
			logrus.Fatal(err)
		}

		cat := catalog.NewBuiltin()
		if len(args) == 0 {
			args = cat.Names()
		}

		cfg := sweep.RunConfig{
			Start:      startN,
			End:        endN,
			Step:       stepN,
			Algorithms: args,
			Mode:       mode,
			Chart:      chartFlag,
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatal(err)
		}

		policy, bands := loadPolicy()
		orch := sweep.New(cat, policy).WithRanker(rank.New(bands))

		var res *sweep.Result
		if tuiMode {
			res, err = tui.Run(cmd.Context(), orch, cfg)
		} else {
			res, err = orch.Start(cmd.Context(), cfg)
		}
		if err != nil {
			logrus.Fatal(err)
		}
		if err := report.PrintResult(os.Stdout, res, jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain what each complexity class means",
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintExplanations(os.Stdout)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered algorithms and their complexity classes",
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintCatalog(os.Stdout, catalog.NewBuiltin().List())
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var guessCmd = &cobra.Command{
	Use:   "guess [ALGORITHM]",
	Short: "Measure an algorithm with doubling input sizes and guess its complexity class",
	Long:  "Probe the named algorithm over a doubling range of input sizes, show how the runtime grows at each doubling, and fit the measurements against the canonical growth curves.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyLogLevel()

		cat := catalog.NewBuiltin()
		spec, err := cat.Get(args[0])
		if err != nil {
			logrus.Fatal(err)
		}

		expected := catalog.LabelUnknown
		if expectStr != "" {
			expected, err = catalog.ParseLabel(expectStr)
			if err != nil {
				logrus.Fatal(err)
			}
		}

		series := probeSweep(spec)
		g := report.GuessReport{
			Algorithm: spec.Name,
			Series:    series,
			Guess:     rank.GuessLabel(series.Points),
			Expected:  expected,
		}
		if err := report.PrintGuess(os.Stdout, g, jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

const (
	// probeBudget stops the doubling sweep once a single invocation crosses it.
	probeBudget = time.Second
	// slowProbeThreshold shrinks the probe range for workloads that are already
	// slow at a small input.
	slowProbeThreshold = 50 * time.Millisecond
	probeSteps         = 6
)

// probeSweep measures the workload over a doubling size range. The range
// adapts: a quick trial at a small size decides whether to probe in the
// hundreds or stay in single digits, so exponential workloads never see a
// large n.
func probeSweep(spec catalog.AlgorithmSpec) *sweep.Series {
	s := &sweep.Series{Algorithm: spec.Name, Label: spec.Label}

	start := 64
	if trial, err := timing.Measure(spec, 16); err != nil || trial > slowProbeThreshold {
		start = 2
	}

	n := start
	for i := 0; i < probeSteps; i++ {
		if spec.RecommendedMaxN > 0 && n > spec.RecommendedMaxN {
			s.Outcome = sweep.Outcome{Kind: sweep.OutcomePolicyDenied,
				Detail: fmt.Sprintf("n=%d exceeds the recommended ceiling of %d", n, spec.RecommendedMaxN)}
			return s
		}
		elapsed, err := timing.Measure(spec, n)
		if err != nil {
			s.Outcome = sweep.Outcome{Kind: sweep.OutcomeExecutionFailed, Detail: err.Error()}
			return s
		}
		s.Points = append(s.Points, sweep.SamplePoint{Algorithm: spec.Name, N: n, Elapsed: elapsed})
		if elapsed > probeBudget {
			logrus.Debugf("probe stopped at n=%d after %s", n, elapsed)
			break
		}
		n *= 2
	}
	s.Outcome = sweep.Outcome{Kind: sweep.OutcomeCompleted}
	return s
}

func main() {
	Execute()
}
