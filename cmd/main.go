package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tldr/internal/config"
	"tldr/internal/content"
	"tldr/internal/pipeline"
	"tldr/internal/server"
	"tldr/internal/style"
	"tldr/internal/summarizer"
)

func main() {
	level := new(slog.LevelVar)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loaded, err := config.LoadDotEnv(".env")
	if err != nil {
		log.ErrorContext(ctx, "Failed to load .env file",
			"error", err)

		return
	}
	if loaded {
		log.InfoContext(ctx, ".env file is loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}
	level.Set(cfg.SlogLevel())

	s, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return
	}
	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai",
		"model", cfg.OpenAIModel)
	log.InfoContext(ctx, "Summary styles are available",
		"styles", style.All(),
		"defaultStyle", string(style.Default))

	p := pipeline.New(
		content.NewFetcher(cfg.FetchTimeout, cfg.FetchMaxBodyBytes, log),
		content.NewExtractor(initStrategies(ctx, cfg, log)...),
		s,
		log,
	)

	srv := server.New(p, server.Options{
		Port:           cfg.Port,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, log)

	if err = srv.Run(ctx); err != nil {
		log.ErrorContext(ctx, "Server failed",
			"error", err,
			"addr", srv.Addr())
	}

	log.InfoContext(context.WithoutCancel(ctx), "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initStrategies(ctx context.Context, cfg config.Config, log *slog.Logger) []content.Strategy {
	strategies := content.DefaultStrategies()
	if cfg.ExtractReadability {
		strategies = append(strategies, content.NewReadabilityStrategy())
	}

	names := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		names = append(names, strategy.Name())
	}
	log.InfoContext(ctx, "Extraction strategies are configured",
		"strategies", names)

	return strategies
}
