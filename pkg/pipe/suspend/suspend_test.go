package suspend

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"github.com/ib-77/primepipe/pkg/pipe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunCanonical(t *testing.T) {
	got := RunCanonical()
	if got != pipe.GroundTruth {
		t.Fatalf("canonical run = %s, want %s", got, pipe.GroundTruth)
	}
}

func TestFactorsArriveInSourceOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	span := pipe.Span{Start: 3, End: 12}
	values := Source(ctx, span)
	values = Reject(ctx, values, pipe.IsPowerOfTwo)
	values = Reject(ctx, values, pipe.IsPowerOfThree)

	var got []int
	for f := range Expand(ctx, values) {
		got = append(got, f)
	}

	// survivors: 5, 6, 7, 10, 11, 12
	want := []int{5, 2, 3, 7, 2, 5, 11, 2, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("factors = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("factors = %v, want %v", got, want)
		}
	}
}

func TestCancelUnblocksStages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	factors := Expand(ctx, Reject(ctx, Source(ctx, pipe.Canonical), pipe.IsPowerOfTwo))

	// take one factor, then abandon the pipeline
	<-factors
	cancel()

	// drain whatever was already in flight so every stage observes either
	// cancellation or a closed input; goleak verifies nothing is left behind
	for range factors {
	}
}
