package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/feedbacklens/feedbacklens/config"
	"github.com/feedbacklens/feedbacklens/internal/aggregate"
	"github.com/feedbacklens/feedbacklens/internal/clients"
	"github.com/feedbacklens/feedbacklens/internal/extract"
	"github.com/feedbacklens/feedbacklens/internal/logging"
	"github.com/feedbacklens/feedbacklens/internal/pipeline"
	"github.com/feedbacklens/feedbacklens/internal/recommend"
	"github.com/feedbacklens/feedbacklens/internal/routes"
	"github.com/feedbacklens/feedbacklens/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	analyzer := sentiment.NewAnalyzer()

	extractor, err := extract.NewExtractor()
	if err != nil {
		slog.Error("[Main] Failed to build extractor", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// A missing OpenAI credential disables recommendations; sentiment
	// reports are still served with the placeholder narrative.
	var recommender recommend.Recommender
	if client, err := clients.GetOpenAIClient(); err != nil {
		slog.Warn("[Main] Recommendations disabled", slog.String("error", err.Error()))
	} else {
		recommender = recommend.NewRequester(client)
	}

	aggregator := aggregate.New(analyzer, runtime.GOMAXPROCS(0))
	p := pipeline.New(analyzer, extractor, aggregator, recommender)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r := routes.SetupRouter(p)
	slog.Info("[Main] Starting server", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("[Main] Server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
