// Package spotify implements catalog search and playlist creation against
// the Spotify Web API.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// addTracksBatchSize is the API's cap on URIs per add-tracks call.
const addTracksBatchSize = 100

// Config captures the runtime settings for the catalog client.
type Config struct {
	// BaseURL defaults to the public API; overridable for tests.
	BaseURL string
	// OwnerID is the user the playlists are created for.
	OwnerID        string
	TimeoutSeconds int
}

type Client struct {
	cfg        Config
	tokens     TokenSource
	httpClient *http.Client
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

func NewClient(cfg Config, tokens TokenSource, opts ...Option) *Client {
	timeout := 15 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.spotify.com/v1"
	}
	c := &Client{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Tracks struct {
		Items []struct {
			ID           string `json:"id"`
			URI          string `json:"uri"`
			Popularity   int    `json:"popularity"`
			PreviewURL   string `json:"preview_url"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"items"`
	} `json:"tracks"`
}

// Search queries the track catalog and returns up to limit entries. An empty
// result is not an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.CatalogMatch, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{
		"q":     {query},
		"type":  {"track"},
		"limit": {strconv.Itoa(limit)},
	}

	var parsed searchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/search?"+params.Encode(), nil, &parsed); err != nil {
		return nil, err
	}

	matches := make([]domain.CatalogMatch, 0, len(parsed.Tracks.Items))
	for _, item := range parsed.Tracks.Items {
		matches = append(matches, domain.CatalogMatch{
			ID:          item.ID,
			URI:         item.URI,
			ExternalURL: item.ExternalURLs.Spotify,
			Popularity:  item.Popularity,
			PreviewURL:  item.PreviewURL,
		})
	}
	return matches, nil
}

// CreatePlaylist creates a private playlist for the configured owner.
func (c *Client) CreatePlaylist(ctx context.Context, name, description string) (port.PlaylistRef, error) {
	if c.cfg.OwnerID == "" {
		return port.PlaylistRef{}, fmt.Errorf("spotify: no playlist owner configured")
	}

	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      false,
	}

	var parsed struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		ExternalURLs struct {
			Spotify string `json:"spotify"`
		} `json:"external_urls"`
	}
	path := "/users/" + url.PathEscape(c.cfg.OwnerID) + "/playlists"
	if err := c.doJSON(ctx, http.MethodPost, path, body, &parsed); err != nil {
		return port.PlaylistRef{}, err
	}

	return port.PlaylistRef{
		ID:          parsed.ID,
		Name:        parsed.Name,
		ExternalURL: parsed.ExternalURLs.Spotify,
	}, nil
}

// AddTracks appends URIs to a playlist in batches of at most 100 per call.
func (c *Client) AddTracks(ctx context.Context, playlistID string, trackURIs []string) error {
	for start := 0; start < len(trackURIs); start += addTracksBatchSize {
		end := start + addTracksBatchSize
		if end > len(trackURIs) {
			end = len(trackURIs)
		}
		body := map[string]any{"uris": trackURIs[start:end]}
		path := "/playlists/" + url.PathEscape(playlistID) + "/tracks"
		if err := c.doJSON(ctx, http.MethodPost, path, body, nil); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("spotify: encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("spotify: build request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("spotify: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("spotify: http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("spotify: parse response: %w", err)
		}
	}
	return nil
}

var _ port.CatalogSearcher = (*Client)(nil)
var _ port.PlaylistCreator = (*Client)(nil)
