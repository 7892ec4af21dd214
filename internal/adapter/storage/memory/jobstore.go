// Package memory holds job state in process memory. Nothing survives a
// restart: the job table's lifecycle is explicitly tied to process lifetime,
// and there is no eviction. Long-running deployments that need one should
// add a TTL sweep on top.
package memory

import (
	"sync"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// JobStore is a concurrency-safe in-memory job table. Entries are stored and
// returned by value, so a Put replaces the entry wholesale and readers never
// observe a partially written job.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
}

func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]domain.Job),
	}
}

// Put stores or replaces the entry for job.ID.
func (s *JobStore) Put(job domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// Get returns a snapshot of the job, or false for unknown ids.
func (s *JobStore) Get(id string) (domain.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// Len reports the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

var _ port.JobStore = (*JobStore)(nil)
