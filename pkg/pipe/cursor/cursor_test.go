package cursor

import (
	"testing"

	"github.com/ib-77/primepipe/pkg/pipe"
)

func collect(c *Factors) []int {
	var fs []int
	for f, ok := c.Next(); ok; f, ok = c.Next() {
		fs = append(fs, f)
	}
	return fs
}

func TestNextYieldsAscendingFactors(t *testing.T) {
	t.Parallel()

	got := collect(New(20))
	want := []int{2, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("factors of 20 = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("factors of 20 = %v, want %v", got, want)
		}
	}
}

func TestNextExhaustionIsSticky(t *testing.T) {
	t.Parallel()

	c := New(6)
	collect(c)
	for range 3 {
		if f, ok := c.Next(); ok {
			t.Fatalf("exhausted cursor yielded %d", f)
		}
	}
}

func TestNextOnOneIsImmediatelyExhausted(t *testing.T) {
	t.Parallel()

	if f, ok := New(1).Next(); ok {
		t.Fatalf("cursor over 1 yielded %d", f)
	}
}

func TestRunCanonical(t *testing.T) {
	t.Parallel()

	got := RunCanonical()
	if got != pipe.GroundTruth {
		t.Fatalf("canonical run = %s, want %s", got, pipe.GroundTruth)
	}
}
