package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/question-csv-exporter/internal/config"
	"github.com/aliskhannn/question-csv-exporter/internal/logger"
	"github.com/aliskhannn/question-csv-exporter/internal/repository"
	"github.com/aliskhannn/question-csv-exporter/internal/service"
	"github.com/aliskhannn/question-csv-exporter/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Print(err)
		return 2
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg = lg.With(
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
	)

	// Initialize source, sink and converter.
	questionRepo := repository.NewQuestionRepository(cfg.InputPath)
	openOutput := func(context.Context) (service.RowWriter, error) {
		w, err := storage.NewCSVWriter(cfg.OutputPath)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	converter := service.NewConverter(questionRepo, openOutput, lg)

	summary, err := converter.Convert(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrInputNotFound) {
			lg.Error("input file not found", zap.Error(err))
			return 1
		}
		lg.Error("an unexpected error occurred", zap.Error(err))
		return 1
	}

	lg.Info("conversion completed",
		zap.Int("converted", summary.Written),
		zap.Int("skipped", summary.Skipped),
		zap.Int("total", summary.Total),
	)

	if !cfg.VerifyOutput {
		return 0
	}

	records, err := storage.ReadAll(ctx, cfg.OutputPath)
	if err != nil {
		lg.Error("failed to read output for verification", zap.Error(err))
		return 1
	}
	if _, err := service.NewVerifier(lg).Verify(ctx, records); err != nil {
		lg.Error("output verification failed", zap.Error(err))
		return 1
	}

	return 0
}
