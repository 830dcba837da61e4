package cursor

import "github.com/ib-77/primepipe/pkg/pipe"

// Factors is a resumable cursor over one integer's prime factorization.
// The zero value is exhausted; use New.
type Factors struct {
	remainder int
	divisor   int
}

// New returns a cursor positioned before the first factor of n.
func New(n int) *Factors {
	return &Factors{remainder: n, divisor: 2}
}

// Next advances the cursor: it returns the next ascending factor and true,
// or zero and false once the remainder is fully factored. Calling Next on
// an exhausted cursor keeps returning false.
func (f *Factors) Next() (int, bool) {
	for f.remainder > 1 {
		if f.remainder%f.divisor == 0 {
			f.remainder /= f.divisor
			return f.divisor, true
		}
		if f.divisor == 2 {
			f.divisor = 3
		} else {
			f.divisor += 2
		}
	}
	return 0, false
}

// Run executes the pipeline with explicit external iteration: one cursor
// per surviving value, advanced to exhaustion, every factor folded by hand.
func Run(span pipe.Span) pipe.Result {
	var acc pipe.Result
	for v := span.Start; v <= span.End; v++ {
		if pipe.IsPowerOfTwo(v) || pipe.IsPowerOfThree(v) {
			continue
		}
		c := New(v)
		for factor, ok := c.Next(); ok; factor, ok = c.Next() {
			acc.Add(factor)
		}
	}
	return acc
}

// RunCanonical executes the pipeline over the canonical span.
func RunCanonical() pipe.Result {
	return Run(pipe.Canonical)
}
