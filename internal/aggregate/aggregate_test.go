package aggregate

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbacklens/feedbacklens/internal/sentiment"
)

// stubScorer classifies by keyword so tests do not depend on the
// lexicon.
type stubScorer struct{}

func (stubScorer) Score(text string) sentiment.Score {
	switch {
	case strings.Contains(text, "good"):
		return sentiment.Score{Label: sentiment.Positive, Compound: 0.6}
	case strings.Contains(text, "bad"):
		return sentiment.Score{Label: sentiment.Negative, Compound: -0.6}
	default:
		return sentiment.Score{Label: sentiment.Neutral, Compound: 0}
	}
}

func TestAggregateCounts(t *testing.T) {
	a := New(stubScorer{}, 1)

	units := []string{"good stay", "bad food", "plain room"}
	report, err := a.Aggregate(context.Background(), units, false)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalUnits)
	assert.Equal(t, 1, report.Counts[sentiment.Positive])
	assert.Equal(t, 1, report.Counts[sentiment.Negative])
	assert.Equal(t, 1, report.Counts[sentiment.Neutral])

	sum := 0.0
	for _, p := range report.Proportions {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	a := New(stubScorer{}, 1)

	report, err := a.Aggregate(context.Background(), nil, true)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalUnits)
	assert.Equal(t, sentiment.Neutral, report.Overall)
	for _, label := range sentiment.Labels {
		assert.Zero(t, report.Counts[label])
		assert.Zero(t, report.Proportions[label])
	}
	assert.Empty(t, report.Results)
	assert.Empty(t, report.Samples)
}

func TestAggregateDropsShortUnits(t *testing.T) {
	a := New(stubScorer{}, 1)

	units := []string{"ab", " x ", "", "good stay"}
	report, err := a.Aggregate(context.Background(), units, false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalUnits)
	assert.Equal(t, sentiment.Positive, report.Overall)
}

func TestAggregateOrderIndependence(t *testing.T) {
	a := New(stubScorer{}, 1)

	units := []string{
		"good stay", "bad food", "good view", "plain room",
		"bad noise", "good location", "fine enough",
	}
	base, err := a.Aggregate(context.Background(), units, false)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), units...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		report, err := a.Aggregate(context.Background(), shuffled, false)
		require.NoError(t, err)
		assert.Equal(t, base.Counts, report.Counts)
		assert.Equal(t, base.Proportions, report.Proportions)
	}
}

func TestAggregateTieBreak(t *testing.T) {
	a := New(stubScorer{}, 1)

	tests := []struct {
		name  string
		units []string
		want  sentiment.Label
	}{
		{"positive beats negative", []string{"good stay", "bad food"}, sentiment.Positive},
		{"negative beats neutral", []string{"bad food", "plain room"}, sentiment.Negative},
		{"positive beats neutral", []string{"good stay", "plain room"}, sentiment.Positive},
		{"three-way tie", []string{"good stay", "bad food", "plain room"}, sentiment.Positive},
		{"strict majority wins", []string{"bad food", "bad noise", "good stay"}, sentiment.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := a.Aggregate(context.Background(), tt.units, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Overall)
		})
	}
}

func TestAggregateDetails(t *testing.T) {
	a := New(stubScorer{}, 1)

	units := []string{"ab", "good stay", "bad food"}
	report, err := a.Aggregate(context.Background(), units, true)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	// Index is the 1-based position among retained units.
	assert.Equal(t, UnitResult{Index: 1, Text: "good stay", Label: sentiment.Positive, Compound: 0.6}, report.Results[0])
	assert.Equal(t, UnitResult{Index: 2, Text: "bad food", Label: sentiment.Negative, Compound: -0.6}, report.Results[1])
}

func TestAggregateWithoutDetails(t *testing.T) {
	a := New(stubScorer{}, 1)

	report, err := a.Aggregate(context.Background(), []string{"good stay"}, false)
	require.NoError(t, err)
	assert.Nil(t, report.Results)
}

func TestAggregateSamples(t *testing.T) {
	a := New(stubScorer{}, 1)

	units := []string{
		"ab", "first good", "second bad", "third one",
		"fourth one", "fifth one", "sixth one", "seventh one",
	}
	report, err := a.Aggregate(context.Background(), units, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"first good", "second bad", "third one", "fourth one", "fifth one",
	}, report.Samples)
}

func TestAggregateParallelMatchesSequential(t *testing.T) {
	units := make([]string, 0, 60)
	for i := 0; i < 20; i++ {
		units = append(units, "good stay", "bad food", "plain room")
	}

	sequential, err := New(stubScorer{}, 1).Aggregate(context.Background(), units, true)
	require.NoError(t, err)

	parallel, err := New(stubScorer{}, 8).Aggregate(context.Background(), units, true)
	require.NoError(t, err)

	assert.Equal(t, sequential.Counts, parallel.Counts)
	assert.Equal(t, sequential.Proportions, parallel.Proportions)
	assert.Equal(t, sequential.Overall, parallel.Overall)
	assert.Equal(t, sequential.Results, parallel.Results)
	assert.Equal(t, sequential.Samples, parallel.Samples)
}

func TestAggregateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(stubScorer{}, 4).Aggregate(ctx, []string{"good stay", "bad food"}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetain(t *testing.T) {
	assert.True(t, Retain("abc"))
	assert.True(t, Retain("  abc  "))
	assert.False(t, Retain("ab"))
	assert.False(t, Retain("  a  "))
	assert.False(t, Retain(""))
}
