package service

import (
	"log/slog"

	"trackify/internal/domain"
)

// DefaultConfidenceThreshold is the minimum confidence (inclusive) a match
// needs to survive aggregation.
const DefaultConfidenceThreshold = 50

// SegmentOutcome is the per-segment result of the recognition loop, in
// segment order. Exactly one of Result and Err may be set; both nil means
// the provider found nothing for that segment.
type SegmentOutcome struct {
	Segment domain.AudioSegment
	Result  *domain.RecognitionResult
	Err     error
}

// Aggregator turns per-segment outcomes into the job's final track list.
type Aggregator struct {
	threshold int
	log       *slog.Logger
}

// NewAggregator returns an Aggregator with the given confidence threshold.
// If threshold <= 0, DefaultConfidenceThreshold is used.
func NewAggregator(threshold int, log *slog.Logger) *Aggregator {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Aggregator{threshold: threshold, log: log}
}

// Aggregate filters and deduplicates outcomes in first-seen segment order.
// A confidence exactly at the threshold is kept. Repeated (artist, title)
// pairs keep the first qualifying occurrence, so the emitted offset is the
// earliest segment the song was heard in. Per-segment errors are logged and
// swallowed: one bad segment never fails the pass.
func (a *Aggregator) Aggregate(outcomes []SegmentOutcome) []domain.IdentifiedTrack {
	tracks := make([]domain.IdentifiedTrack, 0)
	seen := make(map[string]bool)

	for _, o := range outcomes {
		if o.Err != nil {
			a.log.Warn("segment skipped",
				slog.Float64("offset_seconds", o.Segment.StartOffsetSeconds),
				slog.String("error", o.Err.Error()),
			)
			continue
		}
		if o.Result == nil {
			a.log.Debug("no match for segment",
				slog.Float64("offset_seconds", o.Segment.StartOffsetSeconds),
			)
			continue
		}
		if o.Result.ConfidencePercent < a.threshold {
			a.log.Debug("match below confidence threshold",
				slog.String("title", o.Result.Title),
				slog.Int("confidence", o.Result.ConfidencePercent),
				slog.Int("threshold", a.threshold),
			)
			continue
		}

		key := o.Result.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true

		tracks = append(tracks, domain.IdentifiedTrack{RecognitionResult: *o.Result})
		a.log.Info("identified track",
			slog.String("artist", o.Result.Artist),
			slog.String("title", o.Result.Title),
			slog.Int("confidence", o.Result.ConfidencePercent),
			slog.Float64("found_at", o.Result.FoundAtOffsetSeconds),
		)
	}

	return tracks
}
