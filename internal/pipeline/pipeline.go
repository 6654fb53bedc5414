// Package pipeline orchestrates extraction, scoring, aggregation, and
// recommendation into final reports.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/feedbacklens/feedbacklens/internal/aggregate"
	"github.com/feedbacklens/feedbacklens/internal/extract"
	"github.com/feedbacklens/feedbacklens/internal/recommend"
	"github.com/feedbacklens/feedbacklens/internal/sentiment"
)

// TextReport is the outcome of single-review analysis.
type TextReport struct {
	Score    sentiment.Score
	Solution string
}

// FileReport is the outcome of bulk document analysis.
type FileReport struct {
	Filename string
	Report   *aggregate.Report
	Solution string
}

// Pipeline holds the application-scoped collaborators. All of them are
// read-only after construction; per-request state lives entirely in
// the call stack.
type Pipeline struct {
	analyzer    *sentiment.Analyzer
	extractor   *extract.Extractor
	aggregator  *aggregate.Aggregator
	recommender recommend.Recommender
}

// New wires a Pipeline. recommender may be nil when no generative
// credential is configured; reports then carry the placeholder text.
func New(analyzer *sentiment.Analyzer, extractor *extract.Extractor, aggregator *aggregate.Aggregator, recommender recommend.Recommender) *Pipeline {
	return &Pipeline{
		analyzer:    analyzer,
		extractor:   extractor,
		aggregator:  aggregator,
		recommender: recommender,
	}
}

// AnalyzeText scores a single review and requests a remediation
// narrative using the full text as the sample.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string) *TextReport {
	score := p.analyzer.Score(text)
	return &TextReport{
		Score:    score,
		Solution: p.solution(ctx, score.Label, text),
	}
}

// AnalyzeFile runs the bulk pipeline: extract, aggregate, recommend.
// Extraction failures short-circuit before any scoring happens.
func (p *Pipeline) AnalyzeFile(ctx context.Context, filename string, data []byte, withDetails bool) (*FileReport, error) {
	units, err := p.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}

	report, err := p.aggregator.Aggregate(ctx, units, withDetails)
	if err != nil {
		return nil, err
	}

	sample := strings.Join(report.Samples, " ")
	return &FileReport{
		Filename: filename,
		Report:   report,
		Solution: p.solution(ctx, report.Overall, sample),
	}, nil
}

// solution is the single place where recommendation failures become
// user-visible placeholder text; they never fail the report.
func (p *Pipeline) solution(ctx context.Context, label sentiment.Label, sample string) string {
	if p.recommender == nil {
		return "Error connecting to AI: recommendation service is not configured"
	}
	narrative, err := p.recommender.Recommend(ctx, label, sample)
	if err != nil {
		slog.Warn("[Pipeline] Recommendation unavailable",
			slog.String("error", err.Error()))
		return fmt.Sprintf("Error connecting to AI: %v", err)
	}
	return narrative
}
