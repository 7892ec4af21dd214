package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"trackify/internal/domain"
	"trackify/internal/infrastructure/metrics"
	"trackify/internal/port"
)

// JobService owns the lifecycle of identification jobs. Submitting returns
// immediately with a job ID; the pipeline runs in a background goroutine and
// publishes every transition to the store and the event bus.
type JobService struct {
	store      port.JobStore
	extractor  port.AudioExtractor
	identifier *Identifier
	events     *EventBus
	tempDir    string
	met        *metrics.Metrics
	log        *slog.Logger
}

// JobsOption customizes the service.
type JobsOption func(*JobService)

// WithEventBus enables progress notifications.
func WithEventBus(events *EventBus) JobsOption {
	return func(s *JobService) {
		s.events = events
	}
}

// WithJobsMetrics wires job lifecycle metrics.
func WithJobsMetrics(met *metrics.Metrics) JobsOption {
	return func(s *JobService) {
		s.met = met
	}
}

func NewJobService(store port.JobStore, extractor port.AudioExtractor, identifier *Identifier, dataDir string, log *slog.Logger, opts ...JobsOption) *JobService {
	s := &JobService{
		store:      store,
		extractor:  extractor,
		identifier: identifier,
		tempDir:    filepath.Join(dataDir, "temp"),
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitFile starts a job for an uploaded video already written to disk.
// The uploaded file is removed when the job finishes, on every path.
func (s *JobService) SubmitFile(videoPath, originalName string) (domain.Job, error) {
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return domain.Job{}, fmt.Errorf("creating temp dir: %w", err)
	}

	job := domain.NewFileJob(videoPath, originalName)
	s.store.Put(job)
	s.met.IncJobsStarted()
	s.log.Info("job started",
		slog.String("job_id", job.ID),
		slog.String("source", string(job.Source.Kind)),
		slog.String("filename", originalName),
	)

	go s.runFile(job)
	return job, nil
}

// SubmitURL starts a job for a remote video URL.
func (s *JobService) SubmitURL(rawURL string) (domain.Job, error) {
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return domain.Job{}, fmt.Errorf("creating temp dir: %w", err)
	}

	job := domain.NewURLJob(rawURL)
	s.store.Put(job)
	s.met.IncJobsStarted()
	s.log.Info("job started",
		slog.String("job_id", job.ID),
		slog.String("source", string(job.Source.Kind)),
		slog.String("url", rawURL),
	)

	go s.runURL(job)
	return job, nil
}

// Status returns the current snapshot of a job.
func (s *JobService) Status(id string) (domain.Job, error) {
	job, ok := s.store.Get(id)
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) runFile(job domain.Job) {
	ctx := context.Background()
	defer s.removeQuietly(job.Source.Path)

	audioPath, err := s.extractor.ExtractFile(ctx, job.Source.Path, s.tempDir)
	if err != nil {
		s.fail(job, err)
		return
	}
	s.identify(ctx, job, audioPath)
}

func (s *JobService) runURL(job domain.Job) {
	ctx := context.Background()

	// Download and decode both happen under the downloading_video step.
	audioPath, err := s.extractor.ExtractURL(ctx, job.Source.URL, s.tempDir)
	if err != nil {
		s.fail(job, err)
		return
	}
	s.identify(ctx, job, audioPath)
}

func (s *JobService) identify(ctx context.Context, job domain.Job, audioPath string) {
	defer s.removeQuietly(audioPath)

	job = s.advance(job, domain.StepIdentifyingSongs)
	tracks, err := s.identifier.IdentifyTracks(ctx, audioPath, s.tempDir)
	if err != nil {
		s.fail(job, err)
		return
	}
	s.complete(job, tracks)
}

// advance moves a running job to its next step and publishes the snapshot.
func (s *JobService) advance(job domain.Job, step domain.JobStep) domain.Job {
	job = job.WithStep(step)
	s.store.Put(job)
	s.publish(job)
	return job
}

func (s *JobService) complete(job domain.Job, tracks []domain.IdentifiedTrack) {
	job = job.Completed(tracks, domain.NewIdentifyStats(tracks))
	s.store.Put(job)
	s.publish(job)
	s.met.IncJobsCompleted()
	s.met.AddTracksIdentified(len(tracks))
	s.log.Info("job completed",
		slog.String("job_id", job.ID),
		slog.Int("tracks", len(tracks)),
	)
}

func (s *JobService) fail(job domain.Job, err error) {
	job = job.Failed(err)
	var exErr *domain.ExtractionError
	if errors.As(err, &exErr) {
		job.Error = exErr.UserMessage()
	}
	s.store.Put(job)
	s.publish(job)
	s.met.IncJobsFailed()
	s.log.Error("job failed",
		slog.String("job_id", job.ID),
		slog.String("error", err.Error()),
	)
}

func (s *JobService) publish(job domain.Job) {
	if s.events == nil {
		return
	}
	s.events.Publish(job.ID, JobEvent{
		Status: job.Status,
		Step:   job.Step,
		Error:  job.Error,
	})
}

func (s *JobService) removeQuietly(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("cleanup failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}
