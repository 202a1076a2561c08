package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iammorganparry/interview-coach/internal/api"
	"github.com/iammorganparry/interview-coach/internal/config"
	"github.com/iammorganparry/interview-coach/internal/interview"
	"github.com/iammorganparry/interview-coach/internal/metrics"
	"github.com/iammorganparry/interview-coach/internal/questions"
	"github.com/iammorganparry/interview-coach/internal/scoring"
	"github.com/iammorganparry/interview-coach/internal/sessions"
	"github.com/iammorganparry/interview-coach/internal/speech"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the interview HTTP API",
		Long: `Start the interview HTTP API.

Configuration is read from the environment (and a .env file in the working
directory): PORT, LOG_LEVEL, QUESTION_BANK_PATH, QUESTIONS_PER_SESSION,
SESSION_TTL, SESSION_SWEEP_INTERVAL, RATE_LIMIT_PER_MINUTE, SPEECH_* and TTS_*.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(os.Stdout, cfg.LogLevel)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	bank, err := questions.Load(cfg.QuestionBankPath)
	if err != nil {
		return err
	}

	m := metrics.New()
	svc := interview.NewService(bank, scoring.New(bank), sessions.NewStore(), m, logger, cfg.QuestionsPerSession)

	deps := api.Deps{
		Service: svc,
		Metrics: m,
		Logger:  logger,
	}

	// Speech collaborators are optional; leave the interfaces nil when disabled.
	if cfg.SpeechEnabled() {
		t := speech.NewTranscriber(cfg.SpeechBaseURL, cfg.SpeechAPIKey, cfg.SpeechModel)
		if err := t.HealthCheck(ctx); err != nil {
			logger.Warn("speech service not available at startup, will retry on first use", "error", err)
		}
		deps.Transcriber = t
	}
	if cfg.NarrationEnabled() {
		n := speech.NewNarrator(cfg.TTSBaseURL, cfg.SpeechAPIKey, cfg.TTSModel, cfg.TTSVoice)
		if err := n.HealthCheck(ctx); err != nil {
			logger.Warn("narration service not available at startup, will retry on first use", "error", err)
		}
		deps.Narrator = n
	}
	if cfg.RateLimitPerMinute > 0 {
		deps.RateLimiter = api.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.NewRouter(deps),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("interview server starting",
			"addr", srv.Addr,
			"speech_enabled", cfg.SpeechEnabled(),
			"narration_enabled", cfg.NarrationEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return svc.RunSweeper(ctx, cfg.SessionSweepInterval, cfg.SessionTTL)
	})

	if deps.RateLimiter != nil {
		g.Go(func() error {
			pruneLoop(ctx, deps.RateLimiter, time.Minute)
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("server stopped")
	return err
}

// pruneLoop drops idle rate-limit entries until ctx is cancelled.
func pruneLoop(ctx context.Context, rl *api.RateLimiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Prune()
		}
	}
}
