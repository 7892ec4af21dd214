package port

import "context"

// AudioExtractor produces a single normalized PCM audio artifact from a video
// source, written into the caller-supplied scratch directory. The caller owns
// deleting the returned file. Failures are *domain.ExtractionError.
type AudioExtractor interface {
	// ExtractFile decodes a local video file.
	ExtractFile(ctx context.Context, videoPath, scratchDir string) (audioPath string, err error)
	// ExtractURL downloads a remote video (streaming-site or generic
	// media URL) and decodes it to the same normalized format.
	ExtractURL(ctx context.Context, rawURL, scratchDir string) (audioPath string, err error)
}
