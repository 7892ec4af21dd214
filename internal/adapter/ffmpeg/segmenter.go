package ffmpeg

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// Segmenter slices a normalized audio file into fixed-length segment files.
type Segmenter struct{}

func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Split probes the total duration and encodes one file per planned chunk.
// Coverage is all-or-nothing: a failed chunk aborts the pass and removes the
// siblings already written, because downstream dedup assumes the full
// duration was scanned.
func (s *Segmenter) Split(ctx context.Context, audioPath, scratchDir string, chunkSeconds float64) ([]domain.AudioSegment, error) {
	total, err := ProbeDuration(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	plan := planSegments(total, chunkSeconds)
	base := filepath.Base(audioPath)
	base = base[:len(base)-len(filepath.Ext(base))]

	segments := make([]domain.AudioSegment, 0, len(plan))
	for i, p := range plan {
		segPath := filepath.Join(scratchDir, fmt.Sprintf("%s_chunk_%03d.wav", base, i))
		args := []string{
			"-ss", formatSeconds(p.offset),
			"-t", formatSeconds(p.duration),
			"-i", audioPath,
			"-c", "copy",
			"-y", segPath,
		}
		if err := runFFmpeg(ctx, args); err != nil {
			for _, seg := range segments {
				os.Remove(seg.SourcePath)
			}
			os.Remove(segPath)
			return nil, &domain.SegmentationError{Index: i, Err: err}
		}
		segments = append(segments, domain.AudioSegment{
			SourcePath:         segPath,
			StartOffsetSeconds: p.offset,
			DurationSeconds:    p.duration,
		})
	}
	return segments, nil
}

type segmentPlan struct {
	offset   float64
	duration float64
}

// planSegments covers total seconds with ceil(total/chunk) chunks at offsets
// 0, chunk, 2*chunk and so on; the final chunk carries the remainder and is
// never discarded or padded. Durations sum exactly to total.
func planSegments(total, chunk float64) []segmentPlan {
	if total <= 0 || chunk <= 0 {
		return nil
	}
	n := int(math.Ceil(total / chunk))
	plan := make([]segmentPlan, 0, n)
	for i := 0; i < n; i++ {
		offset := float64(i) * chunk
		duration := chunk
		if offset+duration > total {
			duration = total - offset
		}
		plan = append(plan, segmentPlan{offset: offset, duration: duration})
	}
	return plan
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

var _ port.AudioSegmenter = (*Segmenter)(nil)
