package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryBuffer forces a refresh shortly before the token actually expires,
// so in-flight requests don't race the deadline.
const expiryBuffer = 5 * time.Minute

// TokenSource supplies a valid access credential for catalog calls. How the
// credential is obtained (user OAuth, client credentials) is the
// authorization subsystem's business, not the pipeline's.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource wraps a token handed over by an external authorization
// flow.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("spotify: no access token configured")
	}
	return string(s), nil
}

// ClientCredentialsSource fetches app-level tokens with the client
// credentials grant and caches them until shortly before expiry. Sufficient
// for catalog search; playlist modification needs a user token instead.
type ClientCredentialsSource struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewClientCredentialsSource(clientID, clientSecret string, opts ...SourceOption) *ClientCredentialsSource {
	s := &ClientCredentialsSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     "https://accounts.spotify.com/api/token",
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SourceOption customizes a ClientCredentialsSource.
type SourceOption func(*ClientCredentialsSource)

// WithTokenURL overrides the token endpoint (useful for tests).
func WithTokenURL(u string) SourceOption {
	return func(s *ClientCredentialsSource) { s.tokenURL = u }
}

// WithSourceHTTPClient overrides the HTTP client used for token requests.
func WithSourceHTTPClient(client *http.Client) SourceOption {
	return func(s *ClientCredentialsSource) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithSourceNow overrides the clock (useful for tests).
func WithSourceNow(now func() time.Time) SourceOption {
	return func(s *ClientCredentialsSource) {
		if now != nil {
			s.now = now
		}
	}
}

func (s *ClientCredentialsSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("spotify token: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify token: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("spotify token: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify token: http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("spotify token: parse response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("spotify token: empty access_token in response")
	}

	s.token = parsed.AccessToken
	s.expiresAt = s.now().Add(time.Duration(parsed.ExpiresIn) * time.Second).Add(-expiryBuffer)
	return s.token, nil
}
