package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trackify/internal/domain"
	"trackify/internal/service"
)

// SSEHandler streams job progress over Server-Sent Events so clients can
// follow a job without polling.
type SSEHandler struct {
	eventBus *service.EventBus
	jobs     JobService
}

func NewSSEHandler(eventBus *service.EventBus, jobs JobService) *SSEHandler {
	return &SSEHandler{
		eventBus: eventBus,
		jobs:     jobs,
	}
}

// sseWrite writes one SSE event with a JSON payload.
func sseWrite(w http.ResponseWriter, eventName string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "jobID")
		if id == "" {
			http.Error(w, "Missing job ID", http.StatusBadRequest)
			return
		}

		job, err := h.jobs.Status(id)
		if err != nil {
			if errors.Is(err, domain.ErrJobNotFound) {
				http.Error(w, "Job not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Could not read job", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		// Send the current snapshot first, then live updates.
		sseWrite(w, "status", job)
		if job.Status.Terminal() {
			return
		}

		ch := h.eventBus.Subscribe(id)
		defer h.eventBus.Unsubscribe(id, ch)

		// The job may have finished between the snapshot and the subscription,
		// in which case no further event will arrive. Re-check once.
		if job, err := h.jobs.Status(id); err == nil && job.Status.Terminal() {
			sseWrite(w, "status", job)
			return
		}

		ctx := r.Context()
		keepAlive := time.NewTicker(15 * time.Second)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				// Re-fetch so the payload carries the full snapshot, not
				// just the transition.
				job, err := h.jobs.Status(id)
				if err != nil {
					return
				}
				sseWrite(w, "status", job)

				if event.Status.Terminal() {
					return
				}
			}
		}
	}
}
