package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackify/internal/domain"
	"trackify/internal/service"
)

func sseServer(t *testing.T, jobs JobService, events *service.EventBus) *Server {
	t.Helper()
	handlers := NewHandlers(jobs, nil, t.TempDir(), 10, discardLogger())
	return NewServer(handlers, events, nil, discardLogger())
}

func TestEventsUnknownJob(t *testing.T) {
	srv := sseServer(t, newStubJobs(), service.NewEventBus())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventsTerminalJobSendsSnapshotAndCloses(t *testing.T) {
	jobs := newStubJobs()
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)
	jobs.put(job.Completed(nil, domain.IdentifyStats{}))

	srv := sseServer(t, jobs, service.NewEventBus())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/"+job.ID, nil))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, `"status":"completed"`)
}

// lateFinishJobs delegates to stubJobs but completes the job right after the
// first Status call, before any subscription can be established.
type lateFinishJobs struct {
	*stubJobs
	once sync.Once
}

func (s *lateFinishJobs) Status(id string) (domain.Job, error) {
	job, err := s.stubJobs.Status(id)
	if err != nil {
		return job, err
	}
	s.once.Do(func() {
		s.put(job.Completed(nil, domain.IdentifyStats{}))
	})
	return job, nil
}

func TestEventsJobFinishingBeforeSubscribeCloses(t *testing.T) {
	jobs := &lateFinishJobs{stubJobs: newStubJobs()}
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)

	// No event is ever published; the handler must notice the terminal state
	// on its own instead of idling on keep-alives.
	srv := sseServer(t, jobs, service.NewEventBus())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+job.ID, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.ServeHTTP(rec, req)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not close for a job that finished before subscribing")
	}

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: status"))
	assert.Contains(t, body, `"status":"completed"`)
}

func TestEventsStreamsUntilTerminal(t *testing.T) {
	jobs := newStubJobs()
	job, err := jobs.SubmitURL("https://example.com/v.mp4")
	require.NoError(t, err)

	events := service.NewEventBus()
	srv := sseServer(t, jobs, events)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/"+job.ID, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.ServeHTTP(rec, req)
	}()

	// Give the handler time to subscribe, then complete the job.
	time.Sleep(50 * time.Millisecond)
	jobs.put(job.Completed(nil, domain.IdentifyStats{}))
	events.Publish(job.ID, service.JobEvent{Status: domain.JobStatusCompleted})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not finish after terminal event")
	}

	body := rec.Body.String()
	frames := strings.Count(body, "event: status")
	assert.Equal(t, 2, frames, "initial snapshot plus terminal update")
	assert.Contains(t, body, `"status":"completed"`)
}
