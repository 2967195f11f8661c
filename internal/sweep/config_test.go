//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellasleeper108/bigO/internal/governor"
)

func TestRunConfig_Sizes(t *testing.T) {
	tests := []struct {
		name string
		cfg  RunConfig
		want []int
	}{
		{
			name: "even range",
			cfg:  RunConfig{Start: 100, End: 500, Step: 100},
			want: []int{100, 200, 300, 400, 500},
		},
		{
			name: "step overshoots end",
			cfg:  RunConfig{Start: 1, End: 10, Step: 4},
			want: []int{1, 5, 9},
		},
		{
			name: "single size",
			cfg:  RunConfig{Start: 7, End: 7, Step: 1},
			want: []int{7},
		},
		{
			name: "inverted range",
			cfg:  RunConfig{Start: 10, End: 5, Step: 1},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Sizes())
			// Identical configs always produce identical sequences.
			assert.Equal(t, tt.cfg.Sizes(), tt.cfg.Sizes())
		})
	}
}

func TestRunConfig_Validate(t *testing.T) {
	valid := RunConfig{Start: 1, End: 100, Step: 10, Algorithms: []string{"linear"}, Mode: governor.Teaching}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RunConfig)
	}{
		{name: "zero start", mutate: func(c *RunConfig) { c.Start = 0 }},
		{name: "end below start", mutate: func(c *RunConfig) { c.End = 0 }},
		{name: "zero step", mutate: func(c *RunConfig) { c.Step = 0 }},
		{name: "no algorithms", mutate: func(c *RunConfig) { c.Algorithms = nil }},
		{name: "blank algorithm name", mutate: func(c *RunConfig) { c.Algorithms = []string{""} }},
		{name: "bad chart kind", mutate: func(c *RunConfig) { c.Chart = "pie" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Algorithms = append([]string(nil), valid.Algorithms...)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var ce ConfigError
			require.ErrorAs(t, err, &ce)
			assert.NotEmpty(t, ce.Error())
		})
	}
}
