//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	c := New()

	err := c.Register(AlgorithmSpec{Name: "linear", Label: Linear, Fn: linearTime})
	require.NoError(t, err)

	tests := []struct {
		name string
		spec AlgorithmSpec
	}{
		{name: "duplicate name", spec: AlgorithmSpec{Name: "linear", Label: Linear, Fn: linearTime}},
		{name: "empty name", spec: AlgorithmSpec{Name: "", Label: Linear, Fn: linearTime}},
		{name: "nil workload", spec: AlgorithmSpec{Name: "broken", Label: Linear}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.Register(tt.spec))
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	c := NewBuiltin()

	_, err := c.Get("bogosort")
	require.Error(t, err)

	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "bogosort", nf.Name)
}

func TestNewBuiltin_Order(t *testing.T) {
	c := NewBuiltin()

	want := []string{"constant", "logarithmic", "linear", "linearithmic", "quadratic", "exponential", "factorial"}
	assert.Equal(t, want, c.Names())

	for _, name := range want {
		spec, err := c.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, spec.Name)
		assert.NotNil(t, spec.Fn)
	}
}

// The op counts returned by the workloads must grow at the stated order, so
// doubling checks pin each class to its growth law without timing anything.
func TestWorkloadGrowth(t *testing.T) {
	t.Run("constant", func(t *testing.T) {
		assert.Equal(t, constantTime(1), constantTime(1_000_000))
	})

	t.Run("logarithmic", func(t *testing.T) {
		// Halving 2^16 down to 1 takes exactly 16 steps.
		assert.Equal(t, 16, logarithmicTime(1<<16))
		assert.Equal(t, logarithmicTime(1<<16)+1, logarithmicTime(1<<17))
	})

	t.Run("linear", func(t *testing.T) {
		assert.Equal(t, 1000, linearTime(1000))
		assert.Equal(t, 2*linearTime(1000), linearTime(2000))
	})

	t.Run("linearithmic", func(t *testing.T) {
		// n=1024 halves in 10 steps per outer pass.
		assert.Equal(t, 1024*10, linearithmicTime(1024))
	})

	t.Run("quadratic", func(t *testing.T) {
		assert.Equal(t, 100*100, quadraticTime(100))
		assert.Equal(t, 4*quadraticTime(100), quadraticTime(200))
	})

	t.Run("exponential", func(t *testing.T) {
		// Call counts follow c(n) = c(n-1) + c(n-2) + 1, so each increment
		// multiplies the work by roughly the golden ratio.
		ratio := float64(exponentialTime(22)) / float64(exponentialTime(21))
		assert.Greater(t, ratio, 1.5)
		assert.Less(t, ratio, 1.7)
	})

	t.Run("factorial", func(t *testing.T) {
		// Heap's algorithm emits exactly n! permutations.
		assert.Equal(t, 120, factorialTime(5))
		assert.Equal(t, 720, factorialTime(6))
	})
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{in: "quadratic", want: Quadratic},
		{in: "O(n^2)", want: Quadratic},
		{in: " Linear ", want: Linear},
		{in: "o(n!)", want: Factorial},
		{in: "cubic", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelStrings(t *testing.T) {
	for _, l := range Labels() {
		assert.NotEqual(t, "unknown", l.String())
		assert.NotEqual(t, "O(?)", l.Notation())
		assert.NotEmpty(t, l.Description())
	}
	assert.Equal(t, "unknown", LabelUnknown.String())
	assert.Equal(t, "O(?)", LabelUnknown.Notation())
}
