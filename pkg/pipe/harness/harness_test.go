package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/primepipe/pkg/pipe"
)

func TestVerifyCanonical(t *testing.T) {
	t.Parallel()

	reports, err := VerifyCanonical()
	require.NoError(t, err)
	require.Len(t, reports, 5)

	for _, r := range reports {
		assert.Equal(t, pipe.GroundTruth, r.Result, "strategy %s", r.Strategy)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.ID.String())
	}
}

func TestVerifyNamesStrategyAndField(t *testing.T) {
	t.Parallel()

	_, err := Verify(pipe.Canonical, pipe.Result{Sum: 645, Count: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callback")
	assert.Contains(t, err.Error(), "count")

	_, err = Verify(pipe.Canonical, pipe.Result{Sum: 1, Count: 84})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum")
}

func TestCompareOverGeneralSpans(t *testing.T) {
	t.Parallel()

	spans := []pipe.Span{
		{Start: 1, End: 1},
		{Start: 1, End: 100},
		{Start: 4, End: 4},
		{Start: 17, End: 23},
		{Start: 500, End: 600},
	}

	for _, span := range spans {
		reports, err := Compare(span)
		require.NoError(t, err, "span [%d, %d]", span.Start, span.End)
		require.Len(t, reports, 5)
	}
}

func TestRepeatRunsFreshEveryPass(t *testing.T) {
	t.Parallel()

	all, err := Repeat(3)
	require.NoError(t, err)
	require.Len(t, all, 3)

	seen := map[string]bool{}
	for _, reports := range all {
		for _, r := range reports {
			assert.Equal(t, pipe.GroundTruth, r.Result)
			assert.False(t, seen[r.ID.String()], "run id reused across passes")
			seen[r.ID.String()] = true
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"callback", "lazy", "cursor", "staged", "suspend"} {
		s, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
	}

	_, err := Lookup("threaded")
	assert.Error(t, err)
}
