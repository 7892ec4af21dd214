package port

import (
	"context"

	"trackify/internal/domain"
)

// Recognizer submits one audio sample to an external fingerprint-matching
// service. A (nil, nil) return is a legitimate "no match", distinct from a
// failed request; errors are transient from the caller's point of view and
// retried there.
type Recognizer interface {
	Identify(ctx context.Context, sample []byte) (*domain.RawMatch, error)
}
