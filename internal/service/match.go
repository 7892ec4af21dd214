package service

import (
	"context"
	"log/slog"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// CatalogMatcher resolves identified tracks against the external catalog.
type CatalogMatcher struct {
	searcher port.CatalogSearcher
	log      *slog.Logger
}

func NewCatalogMatcher(searcher port.CatalogSearcher, log *slog.Logger) *CatalogMatcher {
	return &CatalogMatcher{searcher: searcher, log: log}
}

// Match looks up each track in the catalog and attaches the best hit. Every
// input track appears exactly once in the output, in order: a search error
// or an empty result leaves the track unmatched rather than failing the job.
func (m *CatalogMatcher) Match(ctx context.Context, tracks []domain.IdentifiedTrack) []domain.IdentifiedTrack {
	out := make([]domain.IdentifiedTrack, 0, len(tracks))
	for _, track := range tracks {
		hits, err := m.searcher.Search(ctx, track.CatalogQuery(), 1)
		if err != nil {
			matchErr := &domain.MatchError{Artist: track.Artist, Title: track.Title, Err: err}
			m.log.Warn("catalog lookup failed", slog.String("error", matchErr.Error()))
			out = append(out, track)
			continue
		}
		if len(hits) == 0 {
			m.log.Debug("no catalog match",
				slog.String("artist", track.Artist),
				slog.String("title", track.Title),
			)
			out = append(out, track)
			continue
		}

		hit := hits[0]
		track.Matched = true
		track.Catalog = &hit
		out = append(out, track)
	}
	return out
}
