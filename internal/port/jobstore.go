package port

import "trackify/internal/domain"

// JobStore keeps job state for the lifetime of the process. Put replaces the
// entry wholesale, so concurrent Gets never observe a partially written job.
// There is no delete: jobs live until the process exits.
type JobStore interface {
	Put(job domain.Job)
	Get(id string) (domain.Job, bool)
}
