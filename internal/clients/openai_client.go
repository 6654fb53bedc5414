package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openAIRequestTimeout bounds individual completion requests so a slow
// generative call cannot stall a report.
const openAIRequestTimeout = 30 * time.Second

var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY in environment")

var (
	openAIClientInstance *OpenAIClient
	openAIClientErr      error
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
}

// GetOpenAIClient returns the process-wide OpenAI client, built once
// from OPENAI_API_KEY. A missing credential is an error rather than a
// panic so the sentiment pipeline can still serve reports without
// recommendations.
func GetOpenAIClient() (*OpenAIClient, error) {
	openAIOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			openAIClientErr = ErrMissingAPIKey
			return
		}

		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: openAIRequestTimeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance, openAIClientErr
}
