// Package ffmpeg shells out to ffmpeg and ffprobe for audio extraction,
// duration probing, and segment encoding.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// Normalized output format: every extraction path produces the same artifact
// so the recognition provider always sees identical input characteristics.
const (
	sampleRate = 44100
	channels   = 2
)

// VideoFetcher downloads a remote video into scratchDir and returns its path.
// Implemented by the download adapter.
type VideoFetcher interface {
	Fetch(ctx context.Context, rawURL, scratchDir string) (videoPath string, err error)
}

type Extractor struct {
	fetcher VideoFetcher
}

func NewExtractor(fetcher VideoFetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// ExtractFile decodes a local video file into a normalized PCM WAV artifact
// in scratchDir.
func (e *Extractor) ExtractFile(ctx context.Context, videoPath, scratchDir string) (string, error) {
	if err := validatePath(videoPath); err != nil {
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: videoPath, Err: err}
	}
	if _, err := os.Stat(videoPath); err != nil {
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: videoPath, Err: err}
	}

	audioPath := filepath.Join(scratchDir, uuid.NewString()+".wav")
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ac", fmt.Sprintf("%d", channels),
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-c:a", "pcm_s16le",
		"-y", audioPath,
	}
	if err := runFFmpeg(ctx, args); err != nil {
		os.Remove(audioPath)
		return "", &domain.ExtractionError{Kind: domain.ExtractionDecodeFailed, Source: videoPath, Err: err}
	}
	return audioPath, nil
}

// ExtractURL downloads the remote video and decodes it the same way as a
// local file. The intermediate video download is removed before returning.
func (e *Extractor) ExtractURL(ctx context.Context, rawURL, scratchDir string) (string, error) {
	videoPath, err := e.fetcher.Fetch(ctx, rawURL, scratchDir)
	if err != nil {
		return "", err
	}
	defer os.Remove(videoPath)

	return e.ExtractFile(ctx, videoPath, scratchDir)
}

func runFFmpeg(ctx context.Context, args []string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// lastLine keeps error output readable: ffmpeg prints its banner and stream
// maps before the actual failure reason.
func lastLine(s string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}

var _ port.AudioExtractor = (*Extractor)(nil)
