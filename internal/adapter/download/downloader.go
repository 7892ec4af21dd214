// Package download fetches remote videos into a local scratch directory.
// Recognized streaming-site URLs go through yt-dlp; anything else is treated
// as a direct media URL and fetched over plain HTTP.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"trackify/internal/domain"
)

const defaultHTTPTimeout = 5 * time.Minute

// streamingHosts are sites whose pages are not the media itself; yt-dlp
// knows how to resolve them to a stream.
var streamingHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
	"vimeo.com":       true,
	"www.vimeo.com":   true,
	"dailymotion.com": true,
	"www.dailymotion.com": true,
}

type Downloader struct {
	httpClient *http.Client
	ytdlpPath  string
}

type Option func(*Downloader)

// WithHTTPClient overrides the client used for direct media downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		if client != nil {
			d.httpClient = client
		}
	}
}

// WithYtdlpPath overrides the yt-dlp binary name (useful for tests).
func WithYtdlpPath(path string) Option {
	return func(d *Downloader) {
		d.ytdlpPath = path
	}
}

func New(opts ...Option) *Downloader {
	d := &Downloader{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		ytdlpPath:  "yt-dlp",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsStreamingURL reports whether rawURL points at a recognized streaming
// site rather than at a media file directly.
func IsStreamingURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return streamingHosts[strings.ToLower(u.Host)]
}

// Fetch downloads the video behind rawURL into scratchDir and returns the
// local path. All failures are source-unavailable extraction errors: from
// the caller's point of view the media could not be obtained.
func (d *Downloader) Fetch(ctx context.Context, rawURL, scratchDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", &domain.ExtractionError{
			Kind:   domain.ExtractionSourceUnavailable,
			Source: rawURL,
			Err:    fmt.Errorf("not a valid http(s) url"),
		}
	}

	if IsStreamingURL(rawURL) {
		return d.fetchStreaming(ctx, rawURL, scratchDir)
	}
	return d.fetchDirect(ctx, rawURL, scratchDir)
}

func (d *Downloader) fetchStreaming(ctx context.Context, rawURL, scratchDir string) (string, error) {
	outPath := filepath.Join(scratchDir, uuid.NewString()+".mp4")
	args := []string{
		"-f", "best[ext=mp4]/best",
		"--no-playlist",
		"-o", outPath,
		rawURL,
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.ytdlpPath, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		return "", &domain.ExtractionError{
			Kind:   domain.ExtractionSourceUnavailable,
			Source: rawURL,
			Err:    fmt.Errorf("yt-dlp: %w: %s", err, strings.TrimSpace(stderr.String())),
		}
	}
	return outPath, nil
}

func (d *Downloader) fetchDirect(ctx context.Context, rawURL, scratchDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: rawURL, Err: err}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.ExtractionError{
			Kind:   domain.ExtractionSourceUnavailable,
			Source: rawURL,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	outPath := filepath.Join(scratchDir, uuid.NewString()+mediaExt(rawURL))
	out, err := os.Create(outPath)
	if err != nil {
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: rawURL, Err: err}
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: rawURL, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return "", &domain.ExtractionError{Kind: domain.ExtractionSourceUnavailable, Source: rawURL, Err: err}
	}
	return outPath, nil
}

func mediaExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".mp4"
	}
	if ext := filepath.Ext(u.Path); ext != "" && len(ext) <= 5 {
		return ext
	}
	return ".mp4"
}
