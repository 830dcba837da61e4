package pipe

// Span is the inclusive integer range [Start, End] produced by the Source
// stage. Start must be at least 1 so the factorizer only ever sees positive
// input; the strategies rely on that and do not re-check.
type Span struct {
	Start int
	End   int
}

// Runner executes the full pipeline over one span. Every strategy package
// exports its entry point with this shape.
type Runner func(span Span) Result

// Canonical is the benchmark span every strategy is validated against.
var Canonical = Span{Start: 3, End: 49}

// GroundTruth is the known-correct pair for the canonical span.
var GroundTruth = Result{Sum: 645, Count: 84}
