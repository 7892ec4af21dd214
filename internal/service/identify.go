package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"trackify/internal/domain"
	"trackify/internal/infrastructure/metrics"
	"trackify/internal/port"
)

// DefaultChunkSeconds is the segment length submitted to the recognition
// provider. Thirty seconds is comfortably above the provider's minimum
// sample length while keeping offsets precise enough to be useful.
const DefaultChunkSeconds = 30

// Identifier runs the core pipeline for one audio file: segment, recognize,
// aggregate, and optionally resolve against the catalog.
type Identifier struct {
	segmenter    port.AudioSegmenter
	recognition  *RecognitionClient
	aggregator   *Aggregator
	matcher      *CatalogMatcher
	chunkSeconds float64
	met          *metrics.Metrics
	log          *slog.Logger
}

// IdentifierOption customizes the pipeline.
type IdentifierOption func(*Identifier)

// WithChunkSeconds overrides the segment length.
func WithChunkSeconds(seconds float64) IdentifierOption {
	return func(i *Identifier) {
		if seconds > 0 {
			i.chunkSeconds = seconds
		}
	}
}

// WithCatalogMatcher enables catalog resolution after aggregation. Without
// it every track is reported unmatched.
func WithCatalogMatcher(matcher *CatalogMatcher) IdentifierOption {
	return func(i *Identifier) {
		i.matcher = matcher
	}
}

// WithIdentifierMetrics wires pipeline metrics.
func WithIdentifierMetrics(met *metrics.Metrics) IdentifierOption {
	return func(i *Identifier) {
		i.met = met
	}
}

func NewIdentifier(segmenter port.AudioSegmenter, recognition *RecognitionClient, aggregator *Aggregator, log *slog.Logger, opts ...IdentifierOption) *Identifier {
	i := &Identifier{
		segmenter:    segmenter,
		recognition:  recognition,
		aggregator:   aggregator,
		chunkSeconds: DefaultChunkSeconds,
		log:          log,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IdentifyTracks runs the pipeline over one extracted audio file. Failing to
// segment fails the whole pass; a failing segment only loses that segment.
// Segment files are removed as soon as they have been processed.
func (i *Identifier) IdentifyTracks(ctx context.Context, audioPath, scratchDir string) ([]domain.IdentifiedTrack, error) {
	segments, err := i.segmenter.Split(ctx, audioPath, scratchDir, i.chunkSeconds)
	if err != nil {
		return nil, fmt.Errorf("splitting audio: %w", err)
	}
	i.log.Info("audio segmented",
		slog.Int("segments", len(segments)),
		slog.Float64("chunk_seconds", i.chunkSeconds),
	)

	outcomes := make([]SegmentOutcome, 0, len(segments))
	for _, seg := range segments {
		result, err := i.recognition.IdentifySegment(ctx, seg)
		outcomes = append(outcomes, SegmentOutcome{Segment: seg, Result: result, Err: err})
		i.met.IncSegmentsProcessed()

		if err := os.Remove(seg.SourcePath); err != nil {
			i.log.Warn("segment cleanup failed",
				slog.String("path", seg.SourcePath),
				slog.String("error", err.Error()),
			)
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	tracks := i.aggregator.Aggregate(outcomes)
	if i.matcher != nil {
		tracks = i.matcher.Match(ctx, tracks)
	}
	return tracks, nil
}
