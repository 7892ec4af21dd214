package domain

// AudioSegment is one fixed-duration slice of a normalized audio file,
// materialized as its own artifact on disk. Segments are immutable once
// created; exactly one owner processes and deletes each.
type AudioSegment struct {
	// SourcePath is the segment's own audio file, owned by whoever
	// consumes the segment.
	SourcePath         string
	StartOffsetSeconds float64
	DurationSeconds    float64
}
