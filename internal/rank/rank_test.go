//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/sweep"
)

func series(name string, label catalog.Label, points ...sweep.SamplePoint) *sweep.Series {
	return &sweep.Series{
		Algorithm: name,
		Label:     label,
		Points:    points,
		Outcome:   sweep.Outcome{Kind: sweep.OutcomeCompleted},
	}
}

func point(n int, d time.Duration) sweep.SamplePoint {
	return sweep.SamplePoint{N: n, Elapsed: d}
}

func TestBands_Judge(t *testing.T) {
	b := DefaultBands()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 500 * time.Microsecond, want: "Instant"},
		{d: 50 * time.Millisecond, want: "Fast"},
		{d: 500 * time.Millisecond, want: "Sluggish"},
		{d: 2 * time.Second, want: "Impractical"},
		{d: time.Second, want: "Impractical"}, // boundary belongs to the slower band
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Judge(tt.d), "duration %s", tt.d)
	}
}

func TestRank_OrdersByElapsedAtCommonN(t *testing.T) {
	constant := series("constant", catalog.Constant,
		point(1000, 10*time.Microsecond), point(2000, 10*time.Microsecond))
	linear := series("linear", catalog.Linear,
		point(1000, 25*time.Microsecond), point(2000, 50*time.Microsecond))
	quadratic := series("quadratic", catalog.Quadratic,
		point(1000, 60*time.Millisecond), point(2000, 250*time.Millisecond))

	entries := New(nil).Rank([]*sweep.Series{quadratic, constant, linear})
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"constant", "linear", "quadratic"}, entryNames(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, 2000, e.N)
		assert.True(t, e.Measured)
	}
	assert.Equal(t, "Instant", entries[0].Judgment)
	assert.Equal(t, "Instant", entries[1].Judgment)
	assert.Equal(t, "Sluggish", entries[2].Judgment)
}

func TestRank_CommonNIsSmallestSharedMax(t *testing.T) {
	full := series("full", catalog.Linear,
		point(1000, 10*time.Millisecond), point(2000, 20*time.Millisecond))
	cutShort := series("cut-short", catalog.Quadratic,
		point(1000, 5*time.Millisecond))

	entries := New(nil).Rank([]*sweep.Series{full, cutShort})
	require.Len(t, entries, 2)

	// Both compared at n=1000, where cut-short was actually faster.
	assert.Equal(t, "cut-short", entries[0].Algorithm)
	assert.Equal(t, 1000, entries[0].N)
	assert.Equal(t, 1000, entries[1].N)
}

func TestRank_UnmeasuredLast(t *testing.T) {
	measured := series("measured", catalog.Linear, point(100, time.Millisecond))
	denied := series("denied", catalog.Factorial)
	denied.Outcome = sweep.Outcome{Kind: sweep.OutcomePolicyDenied, Detail: "over ceiling"}

	entries := New(nil).Rank([]*sweep.Series{denied, measured})
	require.Len(t, entries, 2)

	assert.Equal(t, "measured", entries[0].Algorithm)
	last := entries[1]
	assert.Equal(t, "denied", last.Algorithm)
	assert.False(t, last.Measured)
	assert.Equal(t, "Unmeasured", last.Judgment)
	assert.Equal(t, 2, last.Position)
}

func TestRank_TiesBreakOnCanonicalOrder(t *testing.T) {
	a := series("log-ish", catalog.Logarithmic, point(100, time.Millisecond))
	b := series("const-ish", catalog.Constant, point(100, time.Millisecond))

	entries := New(nil).Rank([]*sweep.Series{a, b})
	require.Len(t, entries, 2)
	assert.Equal(t, "const-ish", entries[0].Algorithm)
	assert.Equal(t, "log-ish", entries[1].Algorithm)
}

func TestRank_Empty(t *testing.T) {
	assert.Nil(t, New(nil).Rank(nil))
}

func entryNames(entries []sweep.RankingEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Algorithm)
	}
	return names
}
