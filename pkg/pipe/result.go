package pipe

import "fmt"

// Result is the terminal pair of one pipeline run: the sum of every emitted
// prime factor and how many factors were emitted.
type Result struct {
	Sum   int
	Count int
}

// Add folds one factor into the accumulator.
func (r *Result) Add(factor int) {
	r.Sum += factor
	r.Count++
}

func (r Result) String() string {
	return fmt.Sprintf("(sum=%d, count=%d)", r.Sum, r.Count)
}
