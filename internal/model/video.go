package model

import "time"

// UploadRecord is one recent upload pulled from a channel's uploads playlist.
// Discarded after metric computation; nothing is persisted.
type UploadRecord struct {
	VideoID     string
	Title       string
	Description string
	PublishedAt time.Time
}

// VideoStats holds the statistics resolved for a single video.
type VideoStats struct {
	ViewCount            int64
	LikeCount            int64
	CommentCount         int64
	DefaultLanguage      string
	DefaultAudioLanguage string
}

// EnrichedVideo is an upload joined with its resolved statistics. Only
// videos whose stats resolved make it into metric computation.
type EnrichedVideo struct {
	UploadRecord
	VideoStats
}

// ChannelMetrics are the per-channel aggregates derived from enriched
// uploads. Computed once per channel per run, never mutated afterwards.
type ChannelMetrics struct {
	AvgViews          float64
	EngagementRate    float64
	GrowthMomentum    float64
	StabilityScore    float64
	CommentsPerKViews float64
}
