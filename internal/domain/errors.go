package domain

import (
	"errors"
	"fmt"
)

// ErrJobNotFound is returned for status queries with an unknown job id.
var ErrJobNotFound = errors.New("job not found")

// ExtractionKind distinguishes failures the user can act on (pick another
// source) from internal processing failures.
type ExtractionKind string

const (
	// ExtractionSourceUnavailable means the source could not be fetched:
	// removed, private, or unreachable media.
	ExtractionSourceUnavailable ExtractionKind = "source_unavailable"
	// ExtractionDecodeFailed means the source was fetched but could not
	// be decoded into audio.
	ExtractionDecodeFailed ExtractionKind = "decode_failed"
)

// ExtractionError reports a failed audio extraction, keeping the cause kind
// so the orchestrator can produce a meaningful terminal message.
type ExtractionError struct {
	Kind   ExtractionKind
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case ExtractionSourceUnavailable:
		return fmt.Sprintf("source unavailable: %s: %v", e.Source, e.Err)
	case ExtractionDecodeFailed:
		return fmt.Sprintf("decode failed: %s: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("extraction failed: %s: %v", e.Source, e.Err)
	}
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// UserMessage renders the error for a job's status payload.
func (e *ExtractionError) UserMessage() string {
	if e.Kind == ExtractionSourceUnavailable {
		return "Input video not found or has been removed. Please try a different source."
	}
	return "Could not decode audio from the provided video."
}

// ProbeError means the total duration of an audio file could not be
// determined, which makes segmentation impossible.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// SegmentationError reports a failed encode of one segment index. Any such
// failure is fatal for the whole pass: downstream dedup assumes full
// coverage of the audio duration.
type SegmentationError struct {
	Index int
	Err   error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("segment %d: %v", e.Index, e.Err)
}

func (e *SegmentationError) Unwrap() error { return e.Err }

// RecognitionError is a per-segment recognition failure after retry
// exhaustion. It never fails the job; the segment is simply skipped.
type RecognitionError struct {
	Attempts int
	Err      error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// MatchError is a per-track catalog lookup failure; the track stays in the
// output as unmatched.
type MatchError struct {
	Artist string
	Title  string
	Err    error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("catalog match %s - %s: %v", e.Artist, e.Title, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }
