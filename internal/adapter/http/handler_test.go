package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trackify/internal/domain"
	"trackify/internal/port"
	"trackify/internal/port/mocks"
	"trackify/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubJobs is a JobService double for handler tests.
type stubJobs struct {
	mu            sync.Mutex
	jobs          map[string]domain.Job
	lastVideoPath string
	lastName      string
	lastURL       string
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: make(map[string]domain.Job)}
}

func (s *stubJobs) SubmitFile(videoPath, originalName string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastVideoPath = videoPath
	s.lastName = originalName
	job := domain.NewFileJob(videoPath, originalName)
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobs) SubmitURL(rawURL string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastURL = rawURL
	job := domain.NewURLJob(rawURL)
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobs) put(job domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *stubJobs) Status(id string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return job, nil
}

func testServer(t *testing.T, jobs JobService, playlists *service.PlaylistService) *Server {
	t.Helper()
	handlers := NewHandlers(jobs, playlists, t.TempDir(), 10, discardLogger())
	return NewServer(handlers, nil, nil, discardLogger())
}

// mp4Payload is a minimal buffer carrying the MP4 ftyp magic bytes.
func mp4Payload() []byte {
	buf := make([]byte, 32)
	copy(buf[4:], "ftypisom")
	return buf
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestStatusNotFoundSentinel(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/unknown-id", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "not_found"}, body)
}

func TestStatusKnownJob(t *testing.T) {
	jobs := newStubJobs()
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)

	srv := testServer(t, jobs, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/"+job.ID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, job.ID, body["jobId"])
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, "downloading_video", body["step"])
}

func TestProcessURL(t *testing.T) {
	jobs := newStubJobs()
	srv := testServer(t, jobs, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process-url",
		strings.NewReader(`{"url": "https://www.youtube.com/watch?v=abc"}`))
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", jobs.lastURL)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["jobId"])
}

func TestProcessURLRejectsBadInput(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing url", `{}`},
		{"non-http scheme", `{"url": "ftp://example.com/v.mp4"}`},
		{"no host", `{"url": "https://"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/process-url", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpload(t *testing.T) {
	jobs := newStubJobs()
	srv := testServer(t, jobs, nil)

	body, contentType := multipartBody(t, "videoFile", "party mix.mp4", mp4Payload())
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, "party mix.mp4", jobs.lastName)

	// The upload was written to disk before the job was submitted.
	_, err := os.Stat(jobs.lastVideoPath)
	assert.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["jobId"])
}

func TestUploadRejectsNonVideo(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	body, contentType := multipartBody(t, "videoFile", "notes.txt", []byte("just some text, definitely not video"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUploadMissingField(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	body, contentType := multipartBody(t, "wrongField", "clip.mp4", mp4Payload())
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePlaylistNotConfigured(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-playlist",
		strings.NewReader(`{"jobId": "j1"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreatePlaylist(t *testing.T) {
	jobs := newStubJobs()
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)

	tracks := []domain.IdentifiedTrack{
		{
			RecognitionResult: domain.RecognitionResult{Title: "Hit", Artist: "A", ConfidencePercent: 90},
			Matched:           true,
			Catalog:           &domain.CatalogMatch{ID: "t1", URI: "spotify:track:t1"},
		},
	}
	jobs.put(job.Completed(tracks, domain.NewIdentifyStats(tracks)))

	creator := mocks.NewPlaylistCreatorMock(t)
	creator.EXPECT().CreatePlaylist(mock.Anything, "Party Mix", "").
		Return(port.PlaylistRef{ID: "pl1", Name: "Party Mix"}, nil).
		Once()
	creator.EXPECT().AddTracks(mock.Anything, "pl1", []string{"spotify:track:t1"}).
		Return(nil).
		Once()

	srv := testServer(t, jobs, service.NewPlaylistService(creator, discardLogger()))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-playlist",
		strings.NewReader(`{"jobId": "`+job.ID+`", "name": "Party Mix"}`)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var summary service.PlaylistSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "pl1", summary.Playlist.ID)
	assert.Equal(t, 1, summary.AddedTracks)
}

func TestCreatePlaylistJobNotCompleted(t *testing.T) {
	jobs := newStubJobs()
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)

	creator := mocks.NewPlaylistCreatorMock(t)
	srv := testServer(t, jobs, service.NewPlaylistService(creator, discardLogger()))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-playlist",
		strings.NewReader(`{"jobId": "`+job.ID+`"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreatePlaylistUnknownJob(t *testing.T) {
	creator := mocks.NewPlaylistCreatorMock(t)
	srv := testServer(t, newStubJobs(), service.NewPlaylistService(creator, discardLogger()))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-playlist",
		strings.NewReader(`{"jobId": "nope"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestSecurityHeadersApplied(t *testing.T) {
	srv := testServer(t, newStubJobs(), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
