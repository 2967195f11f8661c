//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/rank"
	"github.com/hellasleeper108/bigO/internal/sweep"
)

func sampleResult() *sweep.Result {
	return &sweep.Result{
		RunID: "test-run",
		Config: sweep.RunConfig{
			Start: 100, End: 300, Step: 100,
			Algorithms: []string{"constant", "quadratic"},
			Mode:       governor.Teaching,
			Chart:      sweep.ChartBars,
		},
		Series: []*sweep.Series{
			{
				Algorithm: "constant",
				Label:     catalog.Constant,
				Points: []sweep.SamplePoint{
					{Algorithm: "constant", N: 100, Elapsed: 10 * time.Microsecond},
					{Algorithm: "constant", N: 200, Elapsed: 10 * time.Microsecond},
					{Algorithm: "constant", N: 300, Elapsed: 11 * time.Microsecond},
				},
				Outcome: sweep.Outcome{Kind: sweep.OutcomeCompleted},
			},
			{
				Algorithm: "quadratic",
				Label:     catalog.Quadratic,
				Points: []sweep.SamplePoint{
					{Algorithm: "quadratic", N: 100, Elapsed: time.Millisecond},
				},
				Outcome: sweep.Outcome{Kind: sweep.OutcomePolicyDenied, Detail: "n=200 predicted to blow the budget"},
			},
		},
		Ranking: []sweep.RankingEntry{
			{Position: 1, Algorithm: "constant", Label: catalog.Constant, N: 100, Elapsed: 10 * time.Microsecond, Judgment: "Instant", Measured: true},
			{Position: 2, Algorithm: "quadratic", Label: catalog.Quadratic, N: 100, Elapsed: time.Millisecond, Judgment: "Fast", Measured: true},
		},
		State:    sweep.Completed,
		Duration: 2 * time.Second,
	}
}

func TestPrintResult_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, sampleResult(), false))
	out := buf.String()

	assert.Contains(t, out, "COMPLEXITY MEASUREMENT REPORT")
	assert.Contains(t, out, "Mode: TEACHING")
	assert.Contains(t, out, "constant (O(1))")
	assert.Contains(t, out, "quadratic (O(n^2))")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "RANKING")
	assert.Contains(t, out, "policy-denied")
	assert.Contains(t, out, "predicted to blow the budget")
	// Two series means a head-to-head section.
	assert.Contains(t, out, "HEAD TO HEAD")
}

func TestPrintResult_TableChartHasNoBars(t *testing.T) {
	res := sampleResult()
	res.Config.Chart = sweep.ChartTable

	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, res, false))
	assert.NotContains(t, buf.String(), "█")
}

func TestPrintResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintResult(&buf, sampleResult(), true))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "test-run", decoded["run_id"])
	assert.Len(t, decoded["series"], 2)
}

func TestPrintExplanations(t *testing.T) {
	var buf bytes.Buffer
	PrintExplanations(&buf)
	out := buf.String()

	for _, l := range catalog.Labels() {
		assert.Contains(t, out, l.Notation())
	}
	assert.Contains(t, out, "Quadratic Time")
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	PrintCatalog(&buf, catalog.NewBuiltin().List())
	out := buf.String()

	assert.Contains(t, out, "exponential")
	assert.Contains(t, out, "recommended n ≤ 30")
}

func TestPrintGuess(t *testing.T) {
	s := &sweep.Series{
		Algorithm: "mystery",
		Label:     catalog.LabelUnknown,
		Points: []sweep.SamplePoint{
			{N: 100, Elapsed: time.Millisecond},
			{N: 200, Elapsed: 4 * time.Millisecond},
			{N: 400, Elapsed: 16 * time.Millisecond},
		},
		Outcome: sweep.Outcome{Kind: sweep.OutcomeCompleted},
	}
	g := GuessReport{
		Algorithm: "mystery",
		Series:    s,
		Guess:     rank.Guess{Label: catalog.Quadratic, Confidence: 0.93},
		Expected:  catalog.Linear,
	}

	var buf bytes.Buffer
	require.NoError(t, PrintGuess(&buf, g, false))
	out := buf.String()

	assert.Contains(t, out, "COMPLEXITY GUESS: mystery")
	assert.Contains(t, out, "4.00x")
	assert.Contains(t, out, "Best guess: O(n^2)")
	assert.Contains(t, out, "93%")
	assert.Contains(t, out, "Does not look like O(n)")
}

func TestBar(t *testing.T) {
	assert.Empty(t, bar(0, time.Second))
	assert.Equal(t, 1, len([]rune(bar(time.Nanosecond, time.Second))))
	assert.Equal(t, barWidth, len([]rune(bar(time.Second, time.Second))))
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 850 * time.Microsecond, want: "850µs"},
		{d: 850 * time.Millisecond, want: "850ms"},
		{d: 1230 * time.Millisecond, want: "1.23s"},
		{d: 125 * time.Second, want: "2m05s"},
		{d: 62 * time.Minute, want: "1h02m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanDuration(tt.d))
	}
}
