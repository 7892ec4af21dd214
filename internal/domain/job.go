package domain

import (
	"time"

	"github.com/google/uuid"
)

type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindURL  SourceKind = "url"
)

// Source describes where a job's video comes from: an uploaded file on disk
// or a remote URL.
type Source struct {
	Kind SourceKind `json:"kind"`
	// Path is the local video path for file sources.
	Path string `json:"-"`
	// Name is the original upload filename, shown back to the client.
	Name string `json:"filename,omitempty"`
	// URL is the remote address for url sources.
	URL string `json:"url,omitempty"`
}

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobStep labels the active phase while a job is processing.
type JobStep string

const (
	StepExtractingAudio  JobStep = "extracting_audio"
	StepDownloadingVideo JobStep = "downloading_video"
	StepIdentifyingSongs JobStep = "identifying_songs"
)

// Job is one asynchronous identification run. Jobs are value types: the store
// holds snapshots, and every transition replaces the entry wholesale, so a
// reader never observes a half-written job.
type Job struct {
	ID          string            `json:"jobId"`
	Status      JobStatus         `json:"status"`
	Step        JobStep           `json:"step,omitempty"`
	Source      Source            `json:"source"`
	Tracks      []IdentifiedTrack `json:"tracks,omitempty"`
	TotalTracks int               `json:"totalTracks,omitempty"`
	Stats       *IdentifyStats    `json:"stats,omitempty"`
	Error       string            `json:"error,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewFileJob creates a job for an uploaded video, already in its first
// processing step so an immediate poll reports real progress.
func NewFileJob(videoPath, originalName string) Job {
	return Job{
		ID:     uuid.NewString(),
		Status: JobStatusProcessing,
		Step:   StepExtractingAudio,
		Source: Source{
			Kind: SourceKindFile,
			Path: videoPath,
			Name: originalName,
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// NewURLJob creates a job for a remote video URL.
func NewURLJob(rawURL string) Job {
	return Job{
		ID:     uuid.NewString(),
		Status: JobStatusProcessing,
		Step:   StepDownloadingVideo,
		Source: Source{
			Kind: SourceKindURL,
			URL:  rawURL,
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// WithStep returns a copy of the job advanced to the given step.
func (j Job) WithStep(step JobStep) Job {
	j.Step = step
	j.UpdatedAt = time.Now().UTC()
	return j
}

// Completed returns a terminal copy carrying the final track list.
func (j Job) Completed(tracks []IdentifiedTrack, stats IdentifyStats) Job {
	j.Status = JobStatusCompleted
	j.Step = ""
	j.Tracks = tracks
	j.TotalTracks = len(tracks)
	j.Stats = &stats
	j.UpdatedAt = time.Now().UTC()
	return j
}

// Failed returns a terminal copy carrying only the error message. Partial
// results are discarded: a failed job has no track list.
func (j Job) Failed(err error) Job {
	j.Status = JobStatusFailed
	j.Step = ""
	j.Tracks = nil
	j.TotalTracks = 0
	j.Stats = nil
	j.Error = err.Error()
	j.UpdatedAt = time.Now().UTC()
	return j
}
