package port

import (
	"context"

	"trackify/internal/domain"
)

// AudioSegmenter slices a normalized audio file into ordered fixed-duration
// segments covering the whole duration, each materialized as its own file in
// scratchDir. A duration that cannot be determined is a *domain.ProbeError;
// any failed segment encode is a *domain.SegmentationError and aborts the
// pass, since downstream aggregation depends on complete coverage.
type AudioSegmenter interface {
	Split(ctx context.Context, audioPath, scratchDir string, chunkSeconds float64) ([]domain.AudioSegment, error)
}
