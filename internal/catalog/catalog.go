package catalog

import (
	"fmt"
	"strings"
)

// Label identifies one of the canonical asymptotic complexity classes.
// The zero value is LabelUnknown, used for custom workloads registered at
// runtime whose class has not been established yet. The remaining values are
// declared in canonical growth order, which ranking relies on for tie-breaks.
type Label int

const (
	LabelUnknown Label = iota
	Constant
	Logarithmic
	Linear
	Linearithmic
	Quadratic
	Exponential
	Factorial
)

// String returns the short lowercase name used on the CLI ("constant", "linear", ...).
func (l Label) String() string {
	switch l {
	case Constant:
		return "constant"
	case Logarithmic:
		return "logarithmic"
	case Linear:
		return "linear"
	case Linearithmic:
		return "linearithmic"
	case Quadratic:
		return "quadratic"
	case Exponential:
		return "exponential"
	case Factorial:
		return "factorial"
	default:
		return "unknown"
	}
}

// Notation returns the big-O notation for the class.
func (l Label) Notation() string {
	switch l {
	case Constant:
		return "O(1)"
	case Logarithmic:
		return "O(log n)"
	case Linear:
		return "O(n)"
	case Linearithmic:
		return "O(n log n)"
	case Quadratic:
		return "O(n^2)"
	case Exponential:
		return "O(2^n)"
	case Factorial:
		return "O(n!)"
	default:
		return "O(?)"
	}
}

// Description returns the teaching blurb shown by the explain command.
func (l Label) Description() string {
	switch l {
	case Constant:
		return "Constant Time: the operation takes the same amount of time regardless of input size. Gold standard."
	case Logarithmic:
		return "Logarithmic Time: grows slowly. Doubling N adds a tiny constant amount of work. Excellent."
	case Linear:
		return "Linear Time: growth is directly proportional to input. Fair and predictable."
	case Linearithmic:
		return "Linearithmic Time: slightly steeper than linear. Standard for good sorting algorithms."
	case Quadratic:
		return "Quadratic Time: doubling N quadruples the time. Avoid for large datasets."
	case Exponential:
		return "Exponential Time: the runtime doubles with every single addition to N. Impractical for N > 40."
	case Factorial:
		return "Factorial Time: checks every permutation. Impractical for N > 12."
	default:
		return "Unknown: empirical measurement is the only way to find out."
	}
}

// Labels lists the seven canonical classes in growth order.
func Labels() []Label {
	return []Label{Constant, Logarithmic, Linear, Linearithmic, Quadratic, Exponential, Factorial}
}

// ParseLabel resolves a class name or big-O notation to a Label.
func ParseLabel(s string) (Label, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Labels() {
		if needle == l.String() || needle == strings.ToLower(l.Notation()) {
			return l, nil
		}
	}
	return LabelUnknown, fmt.Errorf("unknown complexity class: %q", s)
}

// Workload executes the class's characteristic work for input size n and
// returns the number of primitive operations performed. The count lets tests
// verify asymptotic behavior deterministically, without timing anything.
type Workload func(n int) int

// AlgorithmSpec describes one registered algorithm. Immutable once registered.
type AlgorithmSpec struct {
	Name  string
	Label Label
	Fn    Workload

	// RecommendedMaxN is the largest input size considered sane for unattended
	// teaching runs. Zero means no recommendation.
	RecommendedMaxN int
}

// NotFoundError reports a lookup for an unregistered algorithm name.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("algorithm %q is not registered", e.Name)
}

// Catalog holds the registered algorithms in registration order.
// Populated at startup and read-only afterwards.
type Catalog struct {
	specs  []AlgorithmSpec
	byName map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]int)}
}

// NewBuiltin returns a catalog pre-populated with the seven reference classes.
func NewBuiltin() *Catalog {
	c := New()
	for _, spec := range builtinSpecs() {
		// Built-in registration cannot collide; ignore the error.
		_ = c.Register(spec)
	}
	return c
}

// Register adds a spec to the catalog. Names are unique.
func (c *Catalog) Register(spec AlgorithmSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("algorithm name must not be empty")
	}
	if spec.Fn == nil {
		return fmt.Errorf("algorithm %q has no workload function", spec.Name)
	}
	if _, ok := c.byName[spec.Name]; ok {
		return fmt.Errorf("algorithm %q is already registered", spec.Name)
	}
	c.byName[spec.Name] = len(c.specs)
	c.specs = append(c.specs, spec)
	return nil
}

// List returns the registered specs in registration order.
func (c *Catalog) List() []AlgorithmSpec {
	out := make([]AlgorithmSpec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Get returns the spec registered under name.
func (c *Catalog) Get(name string) (AlgorithmSpec, error) {
	idx, ok := c.byName[name]
	if !ok {
		return AlgorithmSpec{}, NotFoundError{Name: name}
	}
	return c.specs[idx], nil
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.specs))
	for i, s := range c.specs {
		names[i] = s.Name
	}
	return names
}
