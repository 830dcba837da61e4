package staged

import "github.com/ib-77/primepipe/pkg/pipe"

// Stage is the shared capability every pipeline stage implements: take the
// working buffer, return the processed buffer. The buffer is passed by
// exclusive reference through the chain; a stage may mutate it in place or
// replace it.
type Stage interface {
	Process(data []int) []int
}

// SpanStage overwrites the buffer with the full inclusive range.
type SpanStage struct {
	Span pipe.Span
}

func (s SpanStage) Process(data []int) []int {
	data = data[:0]
	for v := s.Span.Start; v <= s.Span.End; v++ {
		data = append(data, v)
	}
	return data
}

// FilterStage removes every buffered value matching its predicate.
type FilterStage struct {
	Pred func(int) bool
}

func (s FilterStage) Process(data []int) []int {
	kept := data[:0]
	for _, v := range data {
		if !s.Pred(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// ExpandStage replaces each buffered value with its ascending prime factors.
type ExpandStage struct{}

func (ExpandStage) Process(data []int) []int {
	out := make([]int, 0, len(data))
	for _, v := range data {
		out = append(out, pipe.Factors(v)...)
	}
	return out
}

// Apply drives an ordered stage list over one shared buffer and returns the
// final buffer contents.
func Apply(stages []Stage) []int {
	var data []int
	for _, st := range stages {
		data = st.Process(data)
	}
	return data
}

// Run executes the batch pipeline over span and reduces the final buffer
// into the terminal pair.
func Run(span pipe.Span) pipe.Result {
	data := Apply([]Stage{
		SpanStage{Span: span},
		FilterStage{Pred: pipe.IsPowerOfTwo},
		FilterStage{Pred: pipe.IsPowerOfThree},
		ExpandStage{},
	})

	var acc pipe.Result
	for _, f := range data {
		acc.Add(f)
	}
	return acc
}

// RunCanonical executes the pipeline over the canonical span.
func RunCanonical() pipe.Result {
	return Run(pipe.Canonical)
}
