package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/lrstanley/go-ytdlp"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/bot"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/config"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/fetch"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/health"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configPath := flag.String("config", os.Getenv("BOT_CONFIG_PATH"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg.Logging)
	logger.Info("starting bot",
		slog.String("download_dir", cfg.Download.Dir),
		slog.Int("health_port", cfg.Server.Port),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fetch the yt-dlp binary if the host doesn't have one.
	ytdlp.MustInstall(ctx, nil)

	if err := os.MkdirAll(cfg.Download.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create download dir: %w", err)
	}

	engine := fetch.NewEngine(fetch.Config{
		AudioFormat:         cfg.Download.AudioFormat,
		AudioQuality:        cfg.Download.AudioQuality,
		ConcurrentFragments: cfg.Download.ConcurrentFragments,
		HTTPChunkSize:       cfg.Download.HTTPChunkSize,
		Retries:             cfg.Download.Retries,
		FragmentRetries:     cfg.Download.FragmentRetries,
	}, logger)

	b, err := bot.New(cfg, engine, logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	healthServer := health.NewServer(cfg.Server.Port, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	errChan := make(chan error, 1)
	go func() {
		logger.Info("health endpoint listening", slog.String("addr", healthServer.Addr))
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	botDone := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(botDone)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("health server error", slog.Any("error", err))
		cancel()
		<-botDone
		return err
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("health server shutdown failed", slog.Any("error", err))
	}

	select {
	case <-botDone:
		logger.Info("bot stopped gracefully")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, forcing exit")
	}

	return nil
}

// newLogger builds the process logger: colorful console output for local
// runs, JSON for anything that ships logs to a collector.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
