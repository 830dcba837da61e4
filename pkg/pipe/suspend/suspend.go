package suspend

import (
	"context"

	"github.com/ib-77/primepipe/pkg/pipe"
)

// Source feeds every integer of span into an unbuffered channel, one
// handoff at a time. The channel closes when the span is exhausted or ctx
// is cancelled.
func Source(ctx context.Context, span pipe.Span) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		for v := span.Start; v <= span.End; v++ {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Reject forwards the values of in for which pred is false.
func Reject(ctx context.Context, in <-chan int, pred func(int) bool) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		for v := range in {
			if pred(v) {
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Expand replaces each incoming value with its ascending prime factors,
// suspending after every factor handoff.
func Expand(ctx context.Context, in <-chan int) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		for v := range in {
			factor := 2
			for v > 1 {
				if v%factor == 0 {
					v /= factor
					select {
					case out <- factor:
					case <-ctx.Done():
						return
					}
				} else if factor == 2 {
					factor = 3
				} else {
					factor += 2
				}
			}
		}
	}()

	return out
}

// Run executes the pipeline as four stage goroutines and drains the
// outermost one into the terminal pair.
func Run(span pipe.Span) pipe.Result {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := Source(ctx, span)
	values = Reject(ctx, values, pipe.IsPowerOfTwo)
	values = Reject(ctx, values, pipe.IsPowerOfThree)
	factors := Expand(ctx, values)

	var acc pipe.Result
	for f := range factors {
		acc.Add(f)
	}
	return acc
}

// RunCanonical executes the pipeline over the canonical span.
func RunCanonical() pipe.Result {
	return Run(pipe.Canonical)
}
