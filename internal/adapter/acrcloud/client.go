// Package acrcloud implements the fingerprint-recognition provider client.
// Requests are signed with HMAC-SHA1 over the form fields, as the ACRCloud
// identify API requires.
package acrcloud

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trackify/internal/domain"
	"trackify/internal/port"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	identifyPath       = "/v1/identify"

	statusOK       = 0
	statusNoResult = 1001
)

// Config captures the runtime settings required to talk to the provider.
type Config struct {
	// Host is the regional endpoint, e.g. "identify-eu-west-1.acrcloud.com".
	Host           string
	AccessKey      string
	AccessSecret   string
	TimeoutSeconds int
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	now        func() time.Time
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithNow overrides the timestamp source (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type statusError struct {
	Code int
	Msg  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("acrcloud: status %d: %s", e.Code, e.Msg)
}

type identifyResponse struct {
	Status struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"status"`
	Metadata struct {
		Music []struct {
			Title   string `json:"title"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			Album struct {
				Name string `json:"name"`
			} `json:"album"`
			ReleaseDate string                     `json:"release_date"`
			DurationMs  int                        `json:"duration_ms"`
			Score       float64                    `json:"score"`
			ACRID       string                     `json:"acrid"`
			ExternalIDs map[string]json.RawMessage `json:"external_ids"`
		} `json:"music"`
	} `json:"metadata"`
}

// Identify submits one audio sample for fingerprint matching. A response
// with no matches is (nil, nil); provider-side errors and malformed bodies
// are returned as errors so the caller can retry.
func (c *Client) Identify(ctx context.Context, sample []byte) (*domain.RawMatch, error) {
	body, contentType, err := c.buildRequestBody(sample)
	if err != nil {
		return nil, fmt.Errorf("acrcloud: build request: %w", err)
	}

	endpoint := c.cfg.Host
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+identifyPath, body)
	if err != nil {
		return nil, fmt.Errorf("acrcloud: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("acrcloud: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("acrcloud: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{Code: resp.StatusCode, Msg: strings.TrimSpace(string(raw))}
	}

	var parsed identifyResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("acrcloud: parse response: %w", err)
	}

	switch parsed.Status.Code {
	case statusOK:
		// fall through to metadata
	case statusNoResult:
		return nil, nil
	default:
		return nil, &statusError{Code: parsed.Status.Code, Msg: parsed.Status.Msg}
	}

	if len(parsed.Metadata.Music) == 0 {
		return nil, nil
	}

	music := parsed.Metadata.Music[0]
	artists := make([]string, 0, len(music.Artists))
	for _, a := range music.Artists {
		if a.Name != "" {
			artists = append(artists, a.Name)
		}
	}
	if len(artists) == 0 {
		artists = []string{"Unknown Artist"}
	}

	return &domain.RawMatch{
		Title:       music.Title,
		Artists:     artists,
		Album:       music.Album.Name,
		ReleaseDate: music.ReleaseDate,
		DurationMs:  music.DurationMs,
		// The provider scores on a 0-100 scale; RawMatch carries [0,1].
		Score:       music.Score / 100,
		ProviderID:  music.ACRID,
		ExternalIDs: flattenExternalIDs(music.ExternalIDs),
	}, nil
}

// buildRequestBody assembles the signed multipart form. The signature covers
// method, path, access key, data type, sample size and timestamp, in that
// order, newline separated.
func (c *Client) buildRequestBody(sample []byte) (*bytes.Buffer, string, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	sampleBytes := strconv.Itoa(len(sample))

	stringToSign := strings.Join([]string{
		http.MethodPost,
		identifyPath,
		c.cfg.AccessKey,
		"audio",
		sampleBytes,
		timestamp,
	}, "\n")

	mac := hmac.New(sha1.New, []byte(c.cfg.AccessSecret))
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"access_key":        c.cfg.AccessKey,
		"sample_bytes":      sampleBytes,
		"data_type":         "audio",
		"signature_version": "1",
		"timestamp":         timestamp,
		"signature":         signature,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	part, err := w.CreateFormFile("sample", "sample.wav")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(sample); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// flattenExternalIDs keeps whatever identifier shapes the provider sends
// (strings, numbers, nested ids) as plain strings.
func flattenExternalIDs(ids map[string]json.RawMessage) map[string]string {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[string]string, len(ids))
	for k, raw := range ids {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = string(raw)
	}
	return out
}

var _ port.Recognizer = (*Client)(nil)
