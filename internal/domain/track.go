package domain

import (
	"fmt"
	"math"
)

// RawMatch is a recognition provider's response for one audio sample, before
// any confidence filtering. A nil RawMatch means the provider answered
// successfully but found nothing.
type RawMatch struct {
	Title       string
	Artists     []string
	Album       string
	ReleaseDate string
	DurationMs  int
	// Score is the provider's raw match score in [0,1].
	Score       float64
	ProviderID  string
	ExternalIDs map[string]string
}

// RecognitionResult is a normalized match for a single segment.
type RecognitionResult struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	// DurationSeconds is the full track length reported by the provider,
	// not the segment length.
	DurationSeconds int `json:"duration,omitempty"`
	// ConfidencePercent is the provider score normalized to 0..100.
	ConfidencePercent int               `json:"confidence"`
	ProviderID        string            `json:"providerId,omitempty"`
	ExternalIDs       map[string]string `json:"externalIds,omitempty"`
	// FoundAtOffsetSeconds is the start offset of the segment that matched.
	FoundAtOffsetSeconds float64 `json:"foundAt"`
}

// DedupKey collapses repeated detections of the same song across segments.
// The comparison is case-sensitive on purpose: "Remix" and "remix" are
// different provider entries.
func (r RecognitionResult) DedupKey() string {
	return r.Artist + "\x00" + r.Title
}

// ConfidencePercent converts a provider score in [0,1] to a rounded integer
// percentage, clamped to 0..100.
func ConfidencePercent(score float64) int {
	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CatalogMatch is a read-only projection of a catalog search hit attached to
// an identified track.
type CatalogMatch struct {
	ID          string `json:"id"`
	URI         string `json:"uri"`
	ExternalURL string `json:"externalUrl,omitempty"`
	Popularity  int    `json:"popularity,omitempty"`
	PreviewURL  string `json:"previewUrl,omitempty"`
}

// IdentifiedTrack is a deduplicated recognition result, optionally resolved
// against the external catalog. Catalog is nil for unmatched tracks and
// Matched makes the marker explicit in status payloads.
type IdentifiedTrack struct {
	RecognitionResult
	Matched bool          `json:"catalogMatched"`
	Catalog *CatalogMatch `json:"catalog,omitempty"`
}

// CatalogQuery builds the exact-quoted search query for a track.
func (t IdentifiedTrack) CatalogQuery() string {
	return fmt.Sprintf("track:%q artist:%q", t.Title, t.Artist)
}

// IdentifyStats summarizes one completed identification pass.
type IdentifyStats struct {
	TotalIdentified   int `json:"totalIdentified"`
	CatalogMatches    int `json:"catalogMatches"`
	AverageConfidence int `json:"averageConfidence"`
	MatchRatePercent  int `json:"matchRate"`
}

// NewIdentifyStats computes summary statistics for a final track list.
func NewIdentifyStats(tracks []IdentifiedTrack) IdentifyStats {
	stats := IdentifyStats{TotalIdentified: len(tracks)}
	if len(tracks) == 0 {
		return stats
	}
	sum := 0
	for _, t := range tracks {
		sum += t.ConfidencePercent
		if t.Matched {
			stats.CatalogMatches++
		}
	}
	stats.AverageConfidence = int(math.Round(float64(sum) / float64(len(tracks))))
	stats.MatchRatePercent = int(math.Round(float64(stats.CatalogMatches) / float64(len(tracks)) * 100))
	return stats
}
