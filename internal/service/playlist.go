package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trackify/internal/domain"
	"trackify/internal/port"
)

// ErrNoMatchedTracks is returned when a playlist is requested for a track
// list with no catalog matches.
var ErrNoMatchedTracks = errors.New("no catalog-matched tracks to add")

// PlaylistSummary reports what a playlist build actually did.
type PlaylistSummary struct {
	Playlist      port.PlaylistRef `json:"playlist"`
	AddedTracks   int              `json:"addedTracks"`
	TotalTracks   int              `json:"totalTracks"`
	SkippedTracks int              `json:"skippedTracks"`
}

// PlaylistService turns an identified track list into a catalog playlist.
type PlaylistService struct {
	creator port.PlaylistCreator
	log     *slog.Logger
}

func NewPlaylistService(creator port.PlaylistCreator, log *slog.Logger) *PlaylistService {
	return &PlaylistService{creator: creator, log: log}
}

// Create builds a playlist from the catalog-matched subset of tracks.
// Unmatched tracks are skipped, not errors; an entirely unmatched list is.
func (s *PlaylistService) Create(ctx context.Context, name, description string, tracks []domain.IdentifiedTrack) (PlaylistSummary, error) {
	uris := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if t.Matched && t.Catalog != nil {
			uris = append(uris, t.Catalog.URI)
		}
	}
	if len(uris) == 0 {
		return PlaylistSummary{}, ErrNoMatchedTracks
	}

	ref, err := s.creator.CreatePlaylist(ctx, name, description)
	if err != nil {
		return PlaylistSummary{}, fmt.Errorf("creating playlist: %w", err)
	}
	if err := s.creator.AddTracks(ctx, ref.ID, uris); err != nil {
		return PlaylistSummary{}, fmt.Errorf("adding tracks to playlist %s: %w", ref.ID, err)
	}

	s.log.Info("playlist created",
		slog.String("playlist_id", ref.ID),
		slog.Int("added", len(uris)),
		slog.Int("skipped", len(tracks)-len(uris)),
	)
	return PlaylistSummary{
		Playlist:      ref,
		AddedTracks:   len(uris),
		TotalTracks:   len(tracks),
		SkippedTracks: len(tracks) - len(uris),
	}, nil
}
