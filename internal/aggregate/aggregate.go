// Package aggregate folds scored text units into an order-independent
// sentiment distribution.
package aggregate

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/feedbacklens/feedbacklens/internal/sentiment"
	"github.com/feedbacklens/feedbacklens/internal/utils"
)

const (
	// minUnitLength drops fragments too short to score meaningfully.
	minUnitLength = 3
	// sampleLimit caps how many retained units feed the AI prompt.
	sampleLimit = 5
)

// Scorer scores one text unit. *sentiment.Analyzer satisfies it.
type Scorer interface {
	Score(text string) sentiment.Score
}

// UnitResult is the per-unit detail record. Index is the 1-based
// position among retained units.
type UnitResult struct {
	Index    int             `json:"index"`
	Text     string          `json:"text"`
	Label    sentiment.Label `json:"sentiment"`
	Compound float64         `json:"score"`
}

// Report summarizes the sentiment distribution of one document.
type Report struct {
	TotalUnits  int
	Counts      map[sentiment.Label]int
	Proportions map[sentiment.Label]float64
	Overall     sentiment.Label
	Results     []UnitResult
	Samples     []string
}

// scoredUnit pairs a unit with its original position so parallel
// scoring can be re-ordered before folding.
type scoredUnit struct {
	pos   int
	text  string
	score sentiment.Score
}

// state is the fold accumulator. It is passed and returned by value so
// each fold step produces a new state instead of mutating shared
// counters.
type state struct {
	retained int
	positive int
	negative int
	neutral  int
	results  []UnitResult
	samples  []string
}

// fold advances the aggregate by one scored unit.
func fold(s state, u scoredUnit, withDetails bool) state {
	s.retained++
	switch u.score.Label {
	case sentiment.Positive:
		s.positive++
	case sentiment.Negative:
		s.negative++
	default:
		s.neutral++
	}
	if withDetails {
		s.results = append(s.results, UnitResult{
			Index:    s.retained,
			Text:     u.text,
			Label:    u.score.Label,
			Compound: u.score.Compound,
		})
	}
	if len(s.samples) < sampleLimit {
		s.samples = append(s.samples, u.text)
	}
	return s
}

func (s state) report() *Report {
	counts := map[sentiment.Label]int{
		sentiment.Positive: s.positive,
		sentiment.Negative: s.negative,
		sentiment.Neutral:  s.neutral,
	}
	proportions := map[sentiment.Label]float64{
		sentiment.Positive: 0,
		sentiment.Negative: 0,
		sentiment.Neutral:  0,
	}

	overall := sentiment.Neutral
	if s.retained > 0 {
		for label, count := range counts {
			proportions[label] = float64(count) / float64(s.retained)
		}

		// First strictly-greater count wins; iterating Labels in
		// precedence order makes ties resolve Positive > Negative > Neutral.
		best := -1
		for _, label := range sentiment.Labels {
			if counts[label] > best {
				best = counts[label]
				overall = label
			}
		}
	}

	return &Report{
		TotalUnits:  s.retained,
		Counts:      counts,
		Proportions: proportions,
		Overall:     overall,
		Results:     s.results,
		Samples:     s.samples,
	}
}

// Aggregator applies a Scorer to every retained unit and folds the
// results into a Report. With workers > 1 units are scored
// concurrently; label counts are commutative, so the report is
// identical regardless of execution order.
type Aggregator struct {
	scorer  Scorer
	workers int
}

func New(scorer Scorer, workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{scorer: scorer, workers: workers}
}

// Retain reports whether a unit is long enough to score.
func Retain(unit string) bool {
	return len(strings.TrimSpace(unit)) >= minUnitLength
}

// Aggregate scores the retained units and folds them into a Report.
// withDetails additionally records a per-unit result for each retained
// unit, in input order.
func (a *Aggregator) Aggregate(ctx context.Context, units []string, withDetails bool) (*Report, error) {
	var retained []string
	for _, unit := range units {
		if Retain(unit) {
			retained = append(retained, unit)
		}
	}

	scored, err := a.scoreAll(ctx, retained)
	if err != nil {
		return nil, err
	}

	s := state{}
	for _, u := range scored {
		s = fold(s, u, withDetails)
	}
	return s.report(), nil
}

func (a *Aggregator) scoreAll(ctx context.Context, units []string) ([]scoredUnit, error) {
	if a.workers == 1 || len(units) < 2 {
		scored := make([]scoredUnit, 0, len(units))
		for i, unit := range units {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scored = append(scored, scoredUnit{pos: i, text: unit, score: a.scorer.Score(unit)})
		}
		return scored, nil
	}

	buffer := utils.NewBatchBuffer[scoredUnit]()

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buffer.Add(scoredUnit{pos: i, text: unit, score: a.scorer.Score(unit)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scored := buffer.GetAndClear()
	sort.Slice(scored, func(i, j int) bool { return scored[i].pos < scored[j].pos })
	return scored, nil
}
