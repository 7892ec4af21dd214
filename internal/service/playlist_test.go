package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trackify/internal/domain"
	"trackify/internal/port"
	"trackify/internal/port/mocks"
)

func matched(title, uri string) domain.IdentifiedTrack {
	return domain.IdentifiedTrack{
		RecognitionResult: domain.RecognitionResult{Title: title, Artist: "A", ConfidencePercent: 80},
		Matched:           true,
		Catalog:           &domain.CatalogMatch{ID: title, URI: uri},
	}
}

func TestPlaylistCreateAddsMatchedTracksOnly(t *testing.T) {
	creator := mocks.NewPlaylistCreatorMock(t)
	creator.EXPECT().CreatePlaylist(mock.Anything, "My Mix", "from a video").
		Return(port.PlaylistRef{ID: "pl1", Name: "My Mix", ExternalURL: "https://open.spotify.com/playlist/pl1"}, nil).
		Once()
	creator.EXPECT().AddTracks(mock.Anything, "pl1", []string{"spotify:track:a", "spotify:track:b"}).
		Return(nil).
		Once()

	svc := NewPlaylistService(creator, discardLogger())
	summary, err := svc.Create(context.Background(), "My Mix", "from a video", []domain.IdentifiedTrack{
		matched("a", "spotify:track:a"),
		identified("A", "unmatched"),
		matched("b", "spotify:track:b"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pl1", summary.Playlist.ID)
	assert.Equal(t, 2, summary.AddedTracks)
	assert.Equal(t, 3, summary.TotalTracks)
	assert.Equal(t, 1, summary.SkippedTracks)
}

func TestPlaylistCreateNoMatchedTracks(t *testing.T) {
	creator := mocks.NewPlaylistCreatorMock(t)

	svc := NewPlaylistService(creator, discardLogger())
	_, err := svc.Create(context.Background(), "Empty", "", []domain.IdentifiedTrack{
		identified("A", "unmatched"),
	})

	assert.ErrorIs(t, err, ErrNoMatchedTracks)
}

func TestPlaylistCreateCreationFailure(t *testing.T) {
	creator := mocks.NewPlaylistCreatorMock(t)
	creator.EXPECT().CreatePlaylist(mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlaylistRef{}, errors.New("forbidden")).
		Once()

	svc := NewPlaylistService(creator, discardLogger())
	_, err := svc.Create(context.Background(), "Mix", "", []domain.IdentifiedTrack{
		matched("a", "spotify:track:a"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating playlist")
}

func TestPlaylistCreateAddFailure(t *testing.T) {
	creator := mocks.NewPlaylistCreatorMock(t)
	creator.EXPECT().CreatePlaylist(mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlaylistRef{ID: "pl1"}, nil).
		Once()
	creator.EXPECT().AddTracks(mock.Anything, "pl1", mock.Anything).
		Return(errors.New("rate limited")).
		Once()

	svc := NewPlaylistService(creator, discardLogger())
	_, err := svc.Create(context.Background(), "Mix", "", []domain.IdentifiedTrack{
		matched("a", "spotify:track:a"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pl1")
}
