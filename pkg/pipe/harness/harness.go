package harness

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/primepipe/pkg/pipe"
	"github.com/ib-77/primepipe/pkg/pipe/callback"
	"github.com/ib-77/primepipe/pkg/pipe/cursor"
	"github.com/ib-77/primepipe/pkg/pipe/lazy"
	"github.com/ib-77/primepipe/pkg/pipe/staged"
	"github.com/ib-77/primepipe/pkg/pipe/suspend"
)

// Strategy pairs a name with the entry point of one pipeline realization.
type Strategy struct {
	Name string
	Run  pipe.Runner
}

// Strategies returns the five pipeline realizations in their conventional
// order. The slice is freshly allocated on every call.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "callback", Run: callback.Run},
		{Name: "lazy", Run: lazy.Run},
		{Name: "cursor", Run: cursor.Run},
		{Name: "staged", Run: staged.Run},
		{Name: "suspend", Run: suspend.Run},
	}
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("unknown strategy %q", name)
}

// Report captures one strategy execution.
type Report struct {
	ID       uuid.UUID
	Strategy string
	Result   pipe.Result
	Elapsed  time.Duration
}

// Verify runs every strategy independently over span and checks each pair
// against want. Reports for all strategies are returned even when a
// divergence is found; the error describes the first one.
func Verify(span pipe.Span, want pipe.Result) ([]Report, error) {
	reports := run(span)

	var err error
	for _, r := range reports {
		if err = diff(r.Strategy, r.Result, want); err != nil {
			break
		}
	}
	return reports, err
}

// VerifyCanonical checks every strategy against the ground truth for the
// canonical span.
func VerifyCanonical() ([]Report, error) {
	return Verify(pipe.Canonical, pipe.GroundTruth)
}

// Compare runs every strategy over span and checks that they all agree,
// taking the first strategy's pair as the reference. Use it for spans whose
// ground truth is not separately known.
func Compare(span pipe.Span) ([]Report, error) {
	reports := run(span)
	want := reports[0].Result

	var err error
	for _, r := range reports[1:] {
		if err = diff(r.Strategy, r.Result, want); err != nil {
			break
		}
	}
	return reports, err
}

// Repeat performs n independent canonical verification passes, each from a
// clean slate, stopping at the first divergence.
func Repeat(n int) ([][]Report, error) {
	all := make([][]Report, 0, n)
	for range n {
		reports, err := VerifyCanonical()
		all = append(all, reports)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func run(span pipe.Span) []Report {
	strategies := Strategies()
	reports := make([]Report, 0, len(strategies))

	for _, s := range strategies {
		started := time.Now()
		got := s.Run(span)
		reports = append(reports, Report{
			ID:       uuid.New(),
			Strategy: s.Name,
			Result:   got,
			Elapsed:  time.Since(started),
		})
	}
	return reports
}

func diff(name string, got, want pipe.Result) error {
	if got.Sum != want.Sum {
		return fmt.Errorf("strategy %s: sum diverged: got %d, want %d", name, got.Sum, want.Sum)
	}
	if got.Count != want.Count {
		return fmt.Errorf("strategy %s: count diverged: got %d, want %d", name, got.Count, want.Count)
	}
	return nil
}
