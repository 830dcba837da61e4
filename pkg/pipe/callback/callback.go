package callback

import "github.com/ib-77/primepipe/pkg/pipe"

// Run executes the pipeline over span with directly nested control flow.
// The accumulator is an explicit value owned by this frame; its Add method
// is the handler every factor is reported to.
func Run(span pipe.Span) pipe.Result {
	var acc pipe.Result
	for v := span.Start; v <= span.End; v++ {
		if pipe.IsPowerOfTwo(v) || pipe.IsPowerOfThree(v) {
			continue
		}
		pipe.Factorize(v, acc.Add)
	}
	return acc
}

// RunCanonical executes the pipeline over the canonical span.
func RunCanonical() pipe.Result {
	return Run(pipe.Canonical)
}
