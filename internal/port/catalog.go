package port

import (
	"context"

	"trackify/internal/domain"
)

// CatalogSearcher looks up tracks in the external music catalog. The access
// credential behind it is supplied by the authorization subsystem, not by
// callers.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.CatalogMatch, error)
}

// PlaylistCreator turns a list of catalog track URIs into a playlist on the
// external service. Implementations batch AddTracks at 100 URIs per call.
type PlaylistCreator interface {
	CreatePlaylist(ctx context.Context, name, description string) (PlaylistRef, error)
	AddTracks(ctx context.Context, playlistID string, trackURIs []string) error
}

// PlaylistRef identifies a created playlist.
type PlaylistRef struct {
	ID          string
	Name        string
	ExternalURL string
}
