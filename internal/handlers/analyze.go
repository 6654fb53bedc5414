package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbacklens/feedbacklens/internal/extract"
	"github.com/feedbacklens/feedbacklens/internal/models"
	"github.com/feedbacklens/feedbacklens/internal/pipeline"
	"github.com/feedbacklens/feedbacklens/internal/sentiment"
)

// AnalyzeText handles single-review analysis.
func AnalyzeText(c *gin.Context, p *pipeline.Pipeline) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "request body must contain a text field"})
		return
	}

	report := p.AnalyzeText(c.Request.Context(), req.Text)

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Sentiment:      string(report.Score.Label),
		Score:          report.Score.Compound,
		DetailedScores: report.Score.Breakdown,
		AISolution:     report.Solution,
	})
}

// AnalyzeFile handles bulk document analysis. Pass details=true to
// include per-review results in the response.
func AnalyzeFile(c *gin.Context, p *pipeline.Pipeline) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "request must contain a file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "could not open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "could not read uploaded file"})
		return
	}

	withDetails := c.Query("details") == "true"

	report, err := p.AnalyzeFile(c.Request.Context(), fileHeader.Filename, data, withDetails)
	if err != nil {
		status, msg := classifyError(err)
		c.JSON(status, models.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeFileResponse{
		Filename:     report.Filename,
		TotalReviews: report.Report.TotalUnits,
		DetailedScores: models.SentimentProportions{
			Positive: report.Report.Proportions[sentiment.Positive],
			Negative: report.Report.Proportions[sentiment.Negative],
			Neutral:  report.Report.Proportions[sentiment.Neutral],
		},
		Sentiment:  string(report.Report.Overall),
		Results:    report.Report.Results,
		AISolution: report.Solution,
	})
}

// classifyError maps pipeline errors onto HTTP responses.
// User-correctable extraction errors are reported verbatim; anything
// else stays opaque to the caller.
func classifyError(err error) (int, string) {
	var unsupported *extract.UnsupportedFormatError
	var missing *extract.MissingColumnError
	var readErr *extract.FileReadError

	switch {
	case errors.As(err, &unsupported), errors.As(err, &missing), errors.As(err, &readErr):
		return http.StatusBadRequest, err.Error()
	default:
		slog.Error("[AnalyzeFile] Unexpected pipeline failure",
			slog.String("error", err.Error()))
		return http.StatusInternalServerError, "internal error while analyzing file"
	}
}
