// Package report renders a finished run as a plain-text console report or as
// machine-readable JSON. It is one of the presentation adapters; it never
// touches the engine beyond reading the finished result.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/rank"
	"github.com/hellasleeper108/bigO/internal/sweep"
)

const (
	reportWidth = 72
	barWidth    = 40
)

// PrintResult outputs the run in the requested format. If jsonOutput is true,
// it prints machine-readable JSON of the full result. Otherwise, it prints a
// human-readable report with per-algorithm charts and the final ranking.
func PrintResult(w io.Writer, res *sweep.Result, jsonOutput bool) error {
	if jsonOutput {
		output, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	printBanner(w)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintln(w, "COMPLEXITY MEASUREMENT REPORT")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "Run: %s\n", res.RunID)
	fmt.Fprintf(w, "Mode: %s | Range: n=%d..%d step %d (duration: %s)\n",
		strings.ToUpper(res.Config.Mode.String()),
		res.Config.Start, res.Config.End, res.Config.Step,
		HumanDuration(res.Duration))
	if res.State == sweep.Aborted {
		fmt.Fprintln(w, "\n⚠️  Run was aborted; results below are partial.")
	}

	for _, s := range res.Series {
		printSeries(w, s, res.Config.Chart)
	}

	if len(res.Ranking) > 0 {
		printRanking(w, res.Ranking)
	}
	printComparisons(w, res.Series)
	printFooter(w)
	return nil
}

// printSeries renders one algorithm's samples, either as a bare table or with
// a bar per row scaled against the series maximum.
func printSeries(w io.Writer, s *sweep.Series, chart string) {
	fmt.Fprintf(w, "\n📈 %s (%s)\n", s.Algorithm, s.Label.Notation())
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))

	if len(s.Points) == 0 {
		fmt.Fprintln(w, "   (no samples)")
	}

	var maxElapsed time.Duration
	for _, p := range s.Points {
		if p.Elapsed > maxElapsed {
			maxElapsed = p.Elapsed
		}
	}
	for _, p := range s.Points {
		if chart == sweep.ChartTable {
			fmt.Fprintf(w, "   n=%-9d %10s\n", p.N, HumanDuration(p.Elapsed))
			continue
		}
		fmt.Fprintf(w, "   n=%-9d %10s |%s\n", p.N, HumanDuration(p.Elapsed), bar(p.Elapsed, maxElapsed))
	}

	if s.Outcome.Aborted() {
		fmt.Fprintf(w, "   ✋ stopped (%s): %s\n", s.Outcome.Kind, s.Outcome.Detail)
	}
}

// bar renders a fixed-width proportional bar. A non-zero value always shows at
// least one cell so tiny samples stay visible next to huge ones.
func bar(v, maxV time.Duration) string {
	if maxV <= 0 || v <= 0 {
		return ""
	}
	n := int(int64(v) * barWidth / int64(maxV))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func printRanking(w io.Writer, entries []sweep.RankingEntry) {
	fmt.Fprintf(w, "\n🏁 RANKING\n")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	for _, e := range entries {
		if !e.Measured {
			fmt.Fprintf(w, "   [%d] %-16s %-11s (unmeasured)\n", e.Position, e.Algorithm, e.Label.Notation())
			continue
		}
		fmt.Fprintf(w, "   [%d] %-16s %-11s %10s at n=%d — %s\n",
			e.Position, e.Algorithm, e.Label.Notation(), HumanDuration(e.Elapsed), e.N, e.Judgment)
	}
}

// printComparisons calls out head-to-head trends. Only adjacent-in-ranking
// noise-free pairs matter for teaching, so this sticks to consecutive series
// pairs as configured.
func printComparisons(w io.Writer, series []*sweep.Series) {
	if len(series) != 2 {
		return
	}
	cmp := rank.Compare(series[0], series[1])
	if len(cmp.Ratios) == 0 {
		return
	}
	fmt.Fprintf(w, "\n⚖️  HEAD TO HEAD\n")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	switch cmp.Trend {
	case rank.TrendCrossover:
		fmt.Fprintf(w, "   %s and %s swap places at n=%d.\n", cmp.First, cmp.Second, cmp.CrossoverN)
	case rank.TrendFirstFaster:
		fmt.Fprintf(w, "   %s stays faster than %s across the measured range.\n", cmp.First, cmp.Second)
	case rank.TrendSecondFaster:
		fmt.Fprintf(w, "   %s stays faster than %s across the measured range.\n", cmp.Second, cmp.First)
	}
	last := cmp.Ratios[len(cmp.Ratios)-1]
	fmt.Fprintf(w, "   At n=%d the ratio %s/%s is %.2fx.\n", last.N, cmp.First, cmp.Second, last.Ratio)
}

// PrintExplanations writes the teaching definition for every complexity class.
func PrintExplanations(w io.Writer) {
	printBanner(w)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintln(w, "COMPLEXITY CLASS DEFINITIONS")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	for _, l := range catalog.Labels() {
		fmt.Fprintf(w, "\n%-11s %s\n", l.Notation(), l.Description())
	}
	fmt.Fprintln(w)
}

// PrintCatalog lists the registered algorithms with their class and ceiling.
func PrintCatalog(w io.Writer, specs []catalog.AlgorithmSpec) {
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintln(w, "REGISTERED ALGORITHMS")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	for _, s := range specs {
		if s.RecommendedMaxN > 0 {
			fmt.Fprintf(w, "   %-16s %-11s recommended n ≤ %d\n", s.Name, s.Label.Notation(), s.RecommendedMaxN)
		} else {
			fmt.Fprintf(w, "   %-16s %-11s\n", s.Name, s.Label.Notation())
		}
	}
}

// GuessReport is the console view of a complexity guess over a probe sweep.
type GuessReport struct {
	Algorithm string        `json:"algorithm"`
	Series    *sweep.Series `json:"series"`
	Guess     rank.Guess    `json:"guess"`
	Expected  catalog.Label `json:"expected,omitempty"`
}

// PrintGuess renders the probe table, the doubling ratios, and the verdict.
func PrintGuess(w io.Writer, g GuessReport, jsonOutput bool) error {
	if jsonOutput {
		output, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "COMPLEXITY GUESS: %s\n", g.Algorithm)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	printSeries(w, g.Series, sweep.ChartBars)

	if len(g.Series.Points) >= 2 {
		fmt.Fprintf(w, "\n   Growth when n doubles:\n")
		pts := g.Series.Points
		for i := 1; i < len(pts); i++ {
			if pts[i-1].Elapsed <= 0 {
				continue
			}
			ratio := float64(pts[i].Elapsed) / float64(pts[i-1].Elapsed)
			fmt.Fprintf(w, "   n=%-7d → n=%-7d %.2fx\n", pts[i-1].N, pts[i].N, ratio)
		}
	}

	fmt.Fprintf(w, "\n   Best guess: %s (%s), confidence %.0f%%\n",
		g.Guess.Label.Notation(), g.Guess.Label, g.Guess.Confidence*100)
	if g.Expected != catalog.LabelUnknown {
		if g.Expected == g.Guess.Label {
			fmt.Fprintf(w, "   ✅ Matches the expected class %s.\n", g.Expected.Notation())
		} else {
			fmt.Fprintf(w, "   ❌ Does not look like %s; measurements suggest %s.\n",
				g.Expected.Notation(), g.Guess.Label.Notation())
		}
	}
	return nil
}

func printFooter(w io.Writer) {
	fmt.Fprintf(w, "\nRun 'bigo run --json' for machine-readable output\n")
	fmt.Fprintf(w, "Run 'bigo explain' for what these classes mean\n")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
}

func printBanner(w io.Writer) {
	fmt.Fprint(w, banner())
}

// banner returns a small figlet-style wordmark.
func banner() string {
	return "" +
		" ____  _  ____       ___\n" +
		"| __ )(_)/ ___|     / _ \\\n" +
		"|  _ \\| | |  _ ____| | | |\n" +
		"| |_) | | |_| |____| |_| |\n" +
		"|____/|_|\\____|     \\___/\n"
}

// HumanDuration returns a compact, human-readable duration string.
// Examples: 850ms, 1.23s, 2m05s, 1h02m.
func HumanDuration(d time.Duration) string {
	if d < time.Millisecond {
		us := d / time.Microsecond
		return fmt.Sprintf("%dµs", us)
	}
	if d < time.Second {
		ms := d / time.Millisecond
		return fmt.Sprintf("%dms", ms)
	}
	if d < time.Minute {
		secs := float64(d) / float64(time.Second)
		return fmt.Sprintf("%.2fs", secs)
	}
	if d < time.Hour {
		m := d / time.Minute
		s := (d % time.Minute) / time.Second
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh%02dm", h, m)
}
