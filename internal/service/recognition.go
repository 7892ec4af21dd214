package service

import (
	"context"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"trackify/internal/domain"
	"trackify/internal/infrastructure/metrics"
	"trackify/internal/port"
)

const (
	// DefaultMaxRetries bounds recognition attempts per segment.
	DefaultMaxRetries = 3
	// DefaultRetryBaseDelay is multiplied by the attempt number between
	// retries: 1s, 2s, 3s. Linear, not exponential.
	DefaultRetryBaseDelay = 1 * time.Second
)

// RecognitionClient submits segments to the fingerprint provider with
// bounded retry. It is the only pipeline component that talks to the
// recognition network boundary.
type RecognitionClient struct {
	recognizer port.Recognizer
	maxRetries int
	baseDelay  time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
	met        *metrics.Metrics
	log        *slog.Logger
}

// RecognitionOption customizes the client.
type RecognitionOption func(*RecognitionClient)

// WithMaxRetries overrides the per-segment attempt bound.
func WithMaxRetries(n int) RecognitionOption {
	return func(c *RecognitionClient) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryBaseDelay overrides the linear backoff base delay.
func WithRetryBaseDelay(d time.Duration) RecognitionOption {
	return func(c *RecognitionClient) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// WithSleeper overrides how retry waits are performed (useful for tests).
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) RecognitionOption {
	return func(c *RecognitionClient) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithRecognitionMetrics wires pipeline metrics into the client.
func WithRecognitionMetrics(met *metrics.Metrics) RecognitionOption {
	return func(c *RecognitionClient) {
		c.met = met
	}
}

func NewRecognitionClient(recognizer port.Recognizer, log *slog.Logger, opts ...RecognitionOption) *RecognitionClient {
	c := &RecognitionClient{
		recognizer: recognizer,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultRetryBaseDelay,
		sleep:      sleepContext,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IdentifySegment recognizes one segment. Returns (nil, nil) when the
// provider answered but found nothing. After maxRetries failed attempts the
// error is a *domain.RecognitionError scoped to this segment only.
func (c *RecognitionClient) IdentifySegment(ctx context.Context, seg domain.AudioSegment) (*domain.RecognitionResult, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			c.met.IncRecognitionRetries()
			// Linear backoff: the wait grows with the attempt number.
			if err := c.sleep(ctx, time.Duration(attempt-1)*c.baseDelay); err != nil {
				lastErr = err
				break
			}
		}

		match, err := c.identifyOnce(ctx, seg)
		if err == nil {
			if match == nil {
				return nil, nil
			}
			return c.normalize(match, seg), nil
		}

		lastErr = err
		c.log.Warn("recognition attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", c.maxRetries),
			slog.Float64("offset_seconds", seg.StartOffsetSeconds),
			slog.String("error", err.Error()),
		)
	}

	return nil, &domain.RecognitionError{Attempts: c.maxRetries, Err: lastErr}
}

func (c *RecognitionClient) identifyOnce(ctx context.Context, seg domain.AudioSegment) (*domain.RawMatch, error) {
	sample, err := os.ReadFile(seg.SourcePath)
	if err != nil {
		return nil, err
	}
	return c.recognizer.Identify(ctx, sample)
}

func (c *RecognitionClient) normalize(match *domain.RawMatch, seg domain.AudioSegment) *domain.RecognitionResult {
	return &domain.RecognitionResult{
		Title:                match.Title,
		Artist:               strings.Join(match.Artists, ", "),
		Album:                match.Album,
		ReleaseDate:          match.ReleaseDate,
		DurationSeconds:      int(math.Round(float64(match.DurationMs) / 1000)),
		ConfidencePercent:    domain.ConfidencePercent(match.Score),
		ProviderID:           match.ProviderID,
		ExternalIDs:          match.ExternalIDs,
		FoundAtOffsetSeconds: seg.StartOffsetSeconds,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
