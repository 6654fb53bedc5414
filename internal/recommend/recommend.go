// Package recommend asks the generative service for a remediation
// narrative matching an overall sentiment.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/feedbacklens/feedbacklens/internal/clients"
	"github.com/feedbacklens/feedbacklens/internal/sentiment"
)

// maxSampleChars caps how much feedback text is embedded in the prompt.
const maxSampleChars = 1000

const defaultModel = openai.GPT4oMini

// Recommender produces a remediation narrative for an overall
// sentiment. Implementations confine failures to the returned error;
// callers decide how a failure surfaces to users.
type Recommender interface {
	Recommend(ctx context.Context, label sentiment.Label, sample string) (string, error)
}

// Requester is the OpenAI-backed Recommender.
type Requester struct {
	client *clients.OpenAIClient
	model  string
}

// NewRequester builds a Requester using OPENAI_MODEL when set.
func NewRequester(client *clients.OpenAIClient) *Requester {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Requester{client: client, model: model}
}

// BuildPrompt renders the consultant prompt with the feedback sample
// truncated to maxSampleChars.
func BuildPrompt(label sentiment.Label, sample string) string {
	if len(sample) > maxSampleChars {
		sample = sample[:maxSampleChars]
	}
	return fmt.Sprintf(`You are a smart business consultant. I have analyzed customer feedback and here is the result:

Sentiment: %s
Customer Feedback Summary/Text: "%s"... (truncated)

Based on this, provide:
1. A brief explanation of WHY the customer feels this way.
2. Three (3) actionable strategic steps/solutions the business should take immediately.

Keep the answer professional, concise, and easy to read.`, label, sample)
}

// Recommend requests a narrative for the given sentiment and sample.
func (r *Requester) Recommend(ctx context.Context, label sentiment.Label, sample string) (string, error) {
	resp, err := r.client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(label, sample),
			},
		},
	})
	if err != nil {
		slog.Warn("[Recommend] Completion request failed",
			slog.String("model", r.model),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("requesting recommendation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("recommendation response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
