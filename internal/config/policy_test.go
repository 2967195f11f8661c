//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/governor"
)

func TestNewPolicyStore_MissingFileUsesDefaults(t *testing.T) {
	s, err := NewPolicyStore(filepath.Join(t.TempDir(), "policy.yaml"))
	require.NoError(t, err)

	p := s.BuildPolicy()
	rule := p.Rule(catalog.Quadratic)
	assert.Equal(t, 2_000, rule.TeachingMaxN)
	assert.Equal(t, 20_000, rule.ChaosMaxN)

	bands := s.BuildBands()
	require.Len(t, bands, 4)
	assert.Equal(t, "Instant", bands[0].Judgment)
}

func TestPolicyStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "policy.yaml")
	delay := 10

	s := &PolicyStore{Path: path}
	s.File = File{
		Rules: map[string]RuleFile{
			"quadratic": {TeachingMaxN: 5_000, ChaosMaxN: 50_000, BudgetMS: 2_000},
		},
		Bands: []BandFile{
			{CeilingMS: 10, Judgment: "Blazing"},
			{Judgment: "Meh"},
		},
		TeachingDelayMS: &delay,
	}
	require.NoError(t, s.Save())

	loaded, err := NewPolicyStore(path)
	require.NoError(t, err)

	p := loaded.BuildPolicy()
	rule := p.Rule(catalog.Quadratic)
	assert.Equal(t, 5_000, rule.TeachingMaxN)
	assert.Equal(t, 50_000, rule.ChaosMaxN)
	assert.Equal(t, 2*time.Second, rule.Budget)
	assert.Equal(t, 10*time.Millisecond, p.StepDelay(governor.Teaching))

	bands := loaded.BuildBands()
	require.Len(t, bands, 2)
	assert.Equal(t, "Blazing", bands[0].Judgment)
	assert.Equal(t, 10*time.Millisecond, bands[0].Ceiling)

	// Untouched classes keep their defaults.
	assert.Equal(t, 30, p.Rule(catalog.Exponential).TeachingMaxN)
}

func TestPolicyStore_HealsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	raw := `rules:
  cubic:
    teaching_max_n: 100
  quadratic:
    teaching_max_n: 3000
    chaos_max_n: 1000
    budget_ms: 500
bands:
  - ceiling_ms: 5
    judgment: ""
  - judgment: Everything
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s, err := NewPolicyStore(path)
	require.NoError(t, err)

	// Unknown class dropped.
	_, ok := s.File.Rules["cubic"]
	assert.False(t, ok)

	// Chaos ceiling below teaching raised to match.
	rule := s.BuildPolicy().Rule(catalog.Quadratic)
	assert.Equal(t, 3_000, rule.TeachingMaxN)
	assert.Equal(t, 3_000, rule.ChaosMaxN)

	// Band without a judgment dropped; the rest survive.
	bands := s.BuildBands()
	require.Len(t, bands, 1)
	assert.Equal(t, "Everything", bands[0].Judgment)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/policy.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "policy.yaml"), got)

	got, err = expandTilde("/etc/policy.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/policy.yaml", got)
}
