package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trackify/internal/domain"
	"trackify/internal/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSegment(t *testing.T, offset float64) domain.AudioSegment {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunk.wav")
	require.NoError(t, os.WriteFile(path, []byte("pcm bytes"), 0o644))
	return domain.AudioSegment{
		SourcePath:         path,
		StartOffsetSeconds: offset,
		DurationSeconds:    30,
	}
}

// recordingSleeper captures requested waits without actually waiting.
type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func TestIdentifySegmentSuccess(t *testing.T) {
	seg := writeSegment(t, 60)

	recognizer := mocks.NewRecognizerMock(t)
	recognizer.EXPECT().Identify(mock.Anything, []byte("pcm bytes")).Return(&domain.RawMatch{
		Title:      "Da Funk",
		Artists:    []string{"Daft Punk", "Someone Else"},
		Album:      "Homework",
		DurationMs: 329500,
		Score:      0.87,
		ProviderID: "acr1",
	}, nil).Once()

	c := NewRecognitionClient(recognizer, discardLogger())
	result, err := c.IdentifySegment(context.Background(), seg)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Da Funk", result.Title)
	assert.Equal(t, "Daft Punk, Someone Else", result.Artist)
	assert.Equal(t, 330, result.DurationSeconds)
	assert.Equal(t, 87, result.ConfidencePercent)
	assert.Equal(t, 60.0, result.FoundAtOffsetSeconds)
}

func TestIdentifySegmentNoMatch(t *testing.T) {
	seg := writeSegment(t, 0)

	recognizer := mocks.NewRecognizerMock(t)
	recognizer.EXPECT().Identify(mock.Anything, mock.Anything).Return(nil, nil).Once()

	c := NewRecognitionClient(recognizer, discardLogger())
	result, err := c.IdentifySegment(context.Background(), seg)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestIdentifySegmentRetriesThenSucceeds(t *testing.T) {
	seg := writeSegment(t, 30)
	transient := errors.New("connection reset")

	recognizer := mocks.NewRecognizerMock(t)
	recognizer.EXPECT().Identify(mock.Anything, mock.Anything).Return(nil, transient).Twice()
	recognizer.EXPECT().Identify(mock.Anything, mock.Anything).Return(&domain.RawMatch{
		Title:   "Around the World",
		Artists: []string{"Daft Punk"},
		Score:   0.9,
	}, nil).Once()

	sleeper := &recordingSleeper{}
	c := NewRecognitionClient(recognizer, discardLogger(), WithSleeper(sleeper.sleep))

	result, err := c.IdentifySegment(context.Background(), seg)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Around the World", result.Title)

	// Linear backoff: 1x base before the second attempt, 2x before the third.
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, sleeper.delays)
}

func TestIdentifySegmentExhaustsRetries(t *testing.T) {
	seg := writeSegment(t, 0)
	persistent := errors.New("provider down")

	recognizer := mocks.NewRecognizerMock(t)
	recognizer.EXPECT().Identify(mock.Anything, mock.Anything).Return(nil, persistent).Times(3)

	sleeper := &recordingSleeper{}
	c := NewRecognitionClient(recognizer, discardLogger(), WithSleeper(sleeper.sleep))

	result, err := c.IdentifySegment(context.Background(), seg)
	assert.Nil(t, result)
	require.Error(t, err)

	var recErr *domain.RecognitionError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 3, recErr.Attempts)
	assert.ErrorIs(t, err, persistent)
	assert.Len(t, sleeper.delays, 2)
}

func TestIdentifySegmentCustomRetryBounds(t *testing.T) {
	seg := writeSegment(t, 0)

	recognizer := mocks.NewRecognizerMock(t)
	recognizer.EXPECT().Identify(mock.Anything, mock.Anything).Return(nil, errors.New("nope")).Times(5)

	sleeper := &recordingSleeper{}
	c := NewRecognitionClient(recognizer, discardLogger(),
		WithMaxRetries(5),
		WithRetryBaseDelay(100*time.Millisecond),
		WithSleeper(sleeper.sleep),
	)

	_, err := c.IdentifySegment(context.Background(), seg)
	require.Error(t, err)
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		400 * time.Millisecond,
	}, sleeper.delays)
}

func TestIdentifySegmentUnreadableFile(t *testing.T) {
	recognizer := mocks.NewRecognizerMock(t)

	sleeper := &recordingSleeper{}
	c := NewRecognitionClient(recognizer, discardLogger(), WithSleeper(sleeper.sleep))

	seg := domain.AudioSegment{SourcePath: filepath.Join(t.TempDir(), "missing.wav")}
	_, err := c.IdentifySegment(context.Background(), seg)

	var recErr *domain.RecognitionError
	require.ErrorAs(t, err, &recErr)
}
