package selfplay

import "math"

// binomTest returns the one-sided probability of at least a successes
// in a+b trials with success probability p.
func binomTest(a, b int64, p float64) float64 {
	n := a + b
	if n == 0 {
		return 1
	}
	var sum float64
	for k := a; k <= n; k++ {
		lg := lchoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log(1-p)
		sum += math.Exp(lg)
	}
	return math.Min(sum, 1)
}

func lchoose(n, k int64) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}
