package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"trackify/config"
	"trackify/internal/adapter/acrcloud"
	"trackify/internal/adapter/download"
	"trackify/internal/adapter/ffmpeg"
	HTTPAdapter "trackify/internal/adapter/http"
	"trackify/internal/adapter/spotify"
	"trackify/internal/adapter/storage/memory"
	"trackify/internal/infrastructure/logger"
	"trackify/internal/infrastructure/metrics"
	"trackify/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("starting trackify", slog.Int("port", cfg.Port), slog.String("data_dir", cfg.DataDir))

	for _, dir := range []string{cfg.DataDir, filepath.Join(cfg.DataDir, "uploads"), filepath.Join(cfg.DataDir, "temp")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create data directory", slog.String("dir", dir), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	met := metrics.New()
	eventBus := service.NewEventBus()
	store := memory.NewJobStore()

	extractor := ffmpeg.NewExtractor(download.New())
	segmenter := ffmpeg.NewSegmenter()

	recognizer := acrcloud.NewClient(acrcloud.Config{
		Host:         cfg.ACRCloudHost,
		AccessKey:    cfg.ACRCloudAccessKey,
		AccessSecret: cfg.ACRCloudAccessSecret,
	})
	recognition := service.NewRecognitionClient(recognizer, log,
		service.WithMaxRetries(cfg.MaxRetries),
		service.WithRetryBaseDelay(time.Duration(cfg.RetryBaseDelayMs)*time.Millisecond),
		service.WithRecognitionMetrics(met),
	)

	aggregator := service.NewAggregator(cfg.ConfidenceThreshold, log)

	identifierOpts := []service.IdentifierOption{
		service.WithChunkSeconds(float64(cfg.ChunkSeconds)),
		service.WithIdentifierMetrics(met),
	}

	var playlistSvc *service.PlaylistService
	if cfg.SpotifyEnabled() {
		var tokens spotify.TokenSource
		if cfg.SpotifyAccessToken != "" {
			tokens = spotify.StaticTokenSource(cfg.SpotifyAccessToken)
		} else {
			tokens = spotify.NewClientCredentialsSource(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		}
		catalog := spotify.NewClient(spotify.Config{OwnerID: cfg.SpotifyOwnerID}, tokens)

		identifierOpts = append(identifierOpts, service.WithCatalogMatcher(service.NewCatalogMatcher(catalog, log)))
		playlistSvc = service.NewPlaylistService(catalog, log)
	} else {
		log.Warn("catalog credentials not configured, tracks will not be matched")
	}

	identifier := service.NewIdentifier(segmenter, recognition, aggregator, log, identifierOpts...)
	jobSvc := service.NewJobService(store, extractor, identifier, cfg.DataDir, log,
		service.WithEventBus(eventBus),
		service.WithJobsMetrics(met),
	)

	handlers := HTTPAdapter.NewHandlers(jobSvc, playlistSvc, filepath.Join(cfg.DataDir, "uploads"), cfg.MaxUploadSizeMB, log)
	server := HTTPAdapter.NewServer(handlers, eventBus, met, log)

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info("shutting down", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Info("server listening", slog.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
