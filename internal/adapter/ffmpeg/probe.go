package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"trackify/internal/domain"
)

// ProbeDuration returns the total duration of an audio file in seconds using
// ffprobe. Segmentation cannot proceed without it.
func ProbeDuration(ctx context.Context, path string) (float64, error) {
	if err := validatePath(path); err != nil {
		return 0, &domain.ProbeError{Path: path, Err: err}
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	}
	out, err := exec.CommandContext(ctx, "ffprobe", args...).Output()
	if err != nil {
		return 0, &domain.ProbeError{Path: path, Err: fmt.Errorf("ffprobe failed: %w", err)}
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, &domain.ProbeError{Path: path, Err: fmt.Errorf("parse ffprobe output: %w", err)}
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil || duration <= 0 {
		return 0, &domain.ProbeError{Path: path, Err: fmt.Errorf("no usable duration in ffprobe output (%q)", probe.Format.Duration)}
	}
	return duration, nil
}
