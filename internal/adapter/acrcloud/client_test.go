package acrcloud

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(
		Config{Host: srv.URL, AccessKey: "test-key", AccessSecret: "test-secret"},
		WithHTTPClient(srv.Client()),
		WithNow(func() time.Time { return time.Unix(1700000000, 0) }),
	)
}

const matchResponse = `{
	"status": {"code": 0, "msg": "Success"},
	"metadata": {
		"music": [{
			"title": "Around the World",
			"artists": [{"name": "Daft Punk"}],
			"album": {"name": "Homework"},
			"release_date": "1997-01-20",
			"duration_ms": 428000,
			"score": 92.5,
			"acrid": "abc123",
			"external_ids": {"isrc": "GBDUW0600021", "upc": 724384260958}
		}]
	}
}`

func TestIdentifyMatch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/identify", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "test-key", r.FormValue("access_key"))
		assert.Equal(t, "audio", r.FormValue("data_type"))
		assert.Equal(t, "1", r.FormValue("signature_version"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "11", r.FormValue("sample_bytes"))

		stringToSign := strings.Join([]string{
			"POST", "/v1/identify", "test-key", "audio", "11", "1700000000",
		}, "\n")
		mac := hmac.New(sha1.New, []byte("test-secret"))
		mac.Write([]byte(stringToSign))
		assert.Equal(t, base64.StdEncoding.EncodeToString(mac.Sum(nil)), r.FormValue("signature"))

		file, _, err := r.FormFile("sample")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(matchResponse))
	})

	match, err := c.Identify(context.Background(), []byte("sample data"))
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, "Around the World", match.Title)
	assert.Equal(t, []string{"Daft Punk"}, match.Artists)
	assert.Equal(t, "Homework", match.Album)
	assert.Equal(t, 428000, match.DurationMs)
	assert.Equal(t, 0.925, match.Score)
	assert.Equal(t, "abc123", match.ProviderID)
	assert.Equal(t, "GBDUW0600021", match.ExternalIDs["isrc"])
	assert.Equal(t, "724384260958", match.ExternalIDs["upc"])
}

func TestIdentifyNoResult(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": {"code": 1001, "msg": "No result"}}`))
	})

	match, err := c.Identify(context.Background(), []byte("silence"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestIdentifyEmptyMusicList(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": {"code": 0, "msg": "Success"}, "metadata": {"music": []}}`))
	})

	match, err := c.Identify(context.Background(), []byte("silence"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestIdentifyProviderError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": {"code": 3001, "msg": "Invalid access key"}}`))
	})

	_, err := c.Identify(context.Background(), []byte("sample"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3001")
}

func TestIdentifyHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})

	_, err := c.Identify(context.Background(), []byte("sample"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestIdentifyMalformedResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := c.Identify(context.Background(), []byte("sample"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestIdentifyArtistFallback(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": {"code": 0, "msg": "Success"},
			"metadata": {"music": [{"title": "Untitled", "score": 80}]}
		}`))
	})

	match, err := c.Identify(context.Background(), []byte("sample"))
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, []string{"Unknown Artist"}, match.Artists)
}
