package models

import "github.com/feedbacklens/feedbacklens/internal/aggregate"

// AnalyzeRequest is the single-review request body.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeResponse carries the single-review analysis result.
type AnalyzeResponse struct {
	Sentiment      string             `json:"sentiment"`
	Score          float64            `json:"score"`
	DetailedScores map[string]float64 `json:"detailed_scores"`
	AISolution     string             `json:"ai_solution"`
}

// SentimentProportions is the per-label share of reviews, each in
// [0, 1] and summing to 1 for a non-empty document.
type SentimentProportions struct {
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
}

// AnalyzeFileResponse carries the bulk analysis result. Results is
// populated only when per-item detail was requested.
type AnalyzeFileResponse struct {
	Filename       string                 `json:"filename"`
	TotalReviews   int                    `json:"total_reviews"`
	DetailedScores SentimentProportions   `json:"detailed_scores"`
	Sentiment      string                 `json:"sentiment"`
	Results        []aggregate.UnitResult `json:"results,omitempty"`
	AISolution     string                 `json:"ai_solution"`
}

// ErrorResponse reports a user-correctable failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
