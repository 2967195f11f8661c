package catalog

// The built-in workloads exhibit genuine asymptotic behavior at their stated
// order. Timing a constant-time stand-in would make every chart a flat line,
// so each body really performs the class's characteristic amount of work and
// reports how many operations it did.

const (
	// Safe teaching ceilings for the unbounded classes. One N too many on
	// these can stall a host for minutes, so the recommendations are tight.
	recommendedMaxExponential = 30
	recommendedMaxFactorial   = 10

	recommendedMaxLinearish = 1_000_000
	recommendedMaxQuadratic = 2_000
)

func builtinSpecs() []AlgorithmSpec {
	return []AlgorithmSpec{
		{Name: "constant", Label: Constant, Fn: constantTime, RecommendedMaxN: recommendedMaxLinearish},
		{Name: "logarithmic", Label: Logarithmic, Fn: logarithmicTime, RecommendedMaxN: recommendedMaxLinearish},
		{Name: "linear", Label: Linear, Fn: linearTime, RecommendedMaxN: recommendedMaxLinearish},
		{Name: "linearithmic", Label: Linearithmic, Fn: linearithmicTime, RecommendedMaxN: recommendedMaxLinearish},
		{Name: "quadratic", Label: Quadratic, Fn: quadraticTime, RecommendedMaxN: recommendedMaxQuadratic},
		{Name: "exponential", Label: Exponential, Fn: exponentialTime, RecommendedMaxN: recommendedMaxExponential},
		{Name: "factorial", Label: Factorial, Fn: factorialTime, RecommendedMaxN: recommendedMaxFactorial},
	}
}

// constantTime does one operation no matter how large n is.
func constantTime(n int) int {
	_ = n + 1
	return 1
}

// logarithmicTime halves the problem until it is gone.
func logarithmicTime(n int) int {
	count := 0
	for n > 1 {
		n /= 2
		count++
	}
	return count
}

// linearTime does one pass over the input size.
func linearTime(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		count++
	}
	return count
}

// linearithmicTime performs a logarithmic halving inside a linear pass.
func linearithmicTime(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for temp := n; temp > 1; temp /= 2 {
			count++
		}
	}
	return count
}

// quadraticTime is the classic nested pass.
func quadraticTime(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			count++
		}
	}
	return count
}

// exponentialTime is naive recursive Fibonacci, counting every call.
// The call tree doubles with each increment of n.
func exponentialTime(n int) int {
	count := 0
	var fib func(k int) int
	fib = func(k int) int {
		count++
		if k <= 1 {
			return k
		}
		return fib(k-1) + fib(k-2)
	}
	fib(n)
	return count
}

// factorialTime generates every permutation of n items (Heap's algorithm)
// and counts them as it goes.
func factorialTime(n int) int {
	if n <= 0 {
		return 0
	}
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	count := 0
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			count++
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				items[i], items[k-1] = items[k-1], items[i]
			} else {
				items[0], items[k-1] = items[k-1], items[0]
			}
		}
	}
	generate(n)
	return count
}
