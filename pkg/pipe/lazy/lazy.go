package lazy

import (
	"iter"

	"github.com/ib-77/primepipe/pkg/pipe"
)

// Span yields every integer of s in ascending order.
func Span(s pipe.Span) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := s.Start; v <= s.End; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Reject passes through the values of src for which pred is false.
func Reject(src iter.Seq[int], pred func(int) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range src {
			if pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FactorSeq yields the ascending prime factors of n lazily, one division
// step per pull.
func FactorSeq(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		factor := 2
		for n > 1 {
			if n%factor == 0 {
				if !yield(factor) {
					return
				}
				n /= factor
			} else if factor == 2 {
				factor = 3
			} else {
				factor += 2
			}
		}
	}
}

// Expand replaces each value of src with its ascending prime factors.
func Expand(src iter.Seq[int]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range src {
			for f := range FactorSeq(v) {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// Fold consumes src in one pass, folding every factor into the pair.
func Fold(src iter.Seq[int]) pipe.Result {
	var acc pipe.Result
	for f := range src {
		acc.Add(f)
	}
	return acc
}

// Run assembles the lazy stage chain over span and folds it.
func Run(span pipe.Span) pipe.Result {
	values := Span(span)
	values = Reject(values, pipe.IsPowerOfTwo)
	values = Reject(values, pipe.IsPowerOfThree)
	return Fold(Expand(values))
}

// RunCanonical executes the pipeline over the canonical span.
func RunCanonical() pipe.Result {
	return Run(pipe.Canonical)
}
