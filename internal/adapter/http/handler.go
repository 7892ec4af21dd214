package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"trackify/internal/adapter/http/validation"
	"trackify/internal/domain"
	"trackify/internal/service"
)

// JobService is the slice of the job orchestrator the HTTP layer needs.
type JobService interface {
	SubmitFile(videoPath, originalName string) (domain.Job, error)
	SubmitURL(rawURL string) (domain.Job, error)
	Status(id string) (domain.Job, error)
}

type Handlers struct {
	jobs      JobService
	playlists *service.PlaylistService
	uploadDir string
	maxSizeMB int
	log       *slog.Logger
}

// NewHandlers builds the API handlers. playlists may be nil when no catalog
// credentials are configured; the create-playlist endpoint then returns 503.
func NewHandlers(jobs JobService, playlists *service.PlaylistService, uploadDir string, maxSizeMB int, log *slog.Logger) *Handlers {
	return &Handlers{
		jobs:      jobs,
		playlists: playlists,
		uploadDir: uploadDir,
		maxSizeMB: maxSizeMB,
		log:       log,
	}
}

// Upload accepts a multipart video upload under the "videoFile" field and
// starts an identification job.
func (h *Handlers) Upload() http.HandlerFunc {
	maxBytes := int64(h.maxSizeMB) * 1024 * 1024
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file too large (max %d MB)", h.maxSizeMB))
			return
		}

		file, header, err := r.FormFile("videoFile")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing videoFile field")
			return
		}
		defer file.Close() //nolint:errcheck

		mime, allowed, err := validation.ValidateMagicBytes(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not inspect upload")
			return
		}
		if !allowed {
			h.log.Warn("rejected upload", slog.String("mime", mime), slog.String("filename", header.Filename))
			writeError(w, http.StatusUnsupportedMediaType, "only video uploads are accepted")
			return
		}

		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			writeError(w, http.StatusInternalServerError, "could not store upload")
			return
		}

		name := validation.SanitizeFilename(header.Filename)
		videoPath := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(name))
		dst, err := os.Create(videoPath)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not store upload")
			return
		}
		if _, err := io.Copy(dst, file); err != nil {
			dst.Close()          //nolint:errcheck
			os.Remove(videoPath) //nolint:errcheck
			writeError(w, http.StatusInternalServerError, "could not store upload")
			return
		}
		if err := dst.Close(); err != nil {
			os.Remove(videoPath) //nolint:errcheck
			writeError(w, http.StatusInternalServerError, "could not store upload")
			return
		}

		job, err := h.jobs.SubmitFile(videoPath, name)
		if err != nil {
			os.Remove(videoPath) //nolint:errcheck
			writeError(w, http.StatusInternalServerError, "could not start job")
			return
		}

		writeJSON(w, http.StatusAccepted, job)
	}
}

type processURLRequest struct {
	URL string `json:"url"`
}

// ProcessURL starts an identification job for a remote video URL.
func (h *Handlers) ProcessURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		u, err := url.Parse(strings.TrimSpace(req.URL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			writeError(w, http.StatusBadRequest, "url must be a valid http(s) URL")
			return
		}

		job, err := h.jobs.SubmitURL(u.String())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not start job")
			return
		}

		writeJSON(w, http.StatusAccepted, job)
	}
}

// Status reports a job snapshot. An unknown ID is not an error: the body is
// {"status": "not_found"} with 200, so pollers can treat expiry uniformly.
func (h *Handlers) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "jobID")

		job, err := h.jobs.Status(id)
		if err != nil {
			if errors.Is(err, domain.ErrJobNotFound) {
				writeJSON(w, http.StatusOK, map[string]string{"status": "not_found"})
				return
			}
			writeError(w, http.StatusInternalServerError, "could not read job status")
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}

type createPlaylistRequest struct {
	JobID       string `json:"jobId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePlaylist builds a catalog playlist from a completed job's matched
// tracks.
func (h *Handlers) CreatePlaylist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.playlists == nil {
			writeError(w, http.StatusServiceUnavailable, "playlist creation is not configured")
			return
		}

		var req createPlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.JobID == "" {
			writeError(w, http.StatusBadRequest, "jobId is required")
			return
		}

		job, err := h.jobs.Status(req.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrJobNotFound) {
				writeError(w, http.StatusNotFound, "job not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "could not read job status")
			return
		}
		if job.Status != domain.JobStatusCompleted {
			writeError(w, http.StatusConflict, "job has not completed")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = defaultPlaylistName(job)
		}

		summary, err := h.playlists.Create(r.Context(), name, req.Description, job.Tracks)
		if err != nil {
			if errors.Is(err, service.ErrNoMatchedTracks) {
				writeError(w, http.StatusConflict, "no catalog-matched tracks in this job")
				return
			}
			h.log.Error("playlist creation failed", slog.String("job_id", job.ID), slog.String("error", err.Error()))
			writeError(w, http.StatusBadGateway, "playlist creation failed")
			return
		}

		writeJSON(w, http.StatusCreated, summary)
	}
}

// Healthz is a liveness probe.
func (h *Handlers) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func defaultPlaylistName(job domain.Job) string {
	if job.Source.Name != "" {
		return "Tracks from " + job.Source.Name
	}
	if job.Source.URL != "" {
		return "Tracks from " + job.Source.URL
	}
	return "Identified tracks"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
