package model

// ChannelCandidate holds the raw metadata fetched for a discovered channel,
// normalized from the channels.list response. Read-only after creation; the
// pipeline run that fetched it is its only owner.
type ChannelCandidate struct {
	ID                string `json:"channelId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	CustomURL         string `json:"customUrl"`
	Thumbnail         string `json:"thumbnail"`
	Country           string `json:"country"`
	UploadsPlaylistID string `json:"uploadsPlaylistId"`
	SubscriberCount   int64  `json:"subscriberCount"`
	ViewCount         int64  `json:"viewCount"`
	VideoCount        int64  `json:"videoCount"`
	Keywords          string `json:"keywords"`
}

// ScoredChannel is one entry of the final decision pool: candidate fields
// plus the aggregated metrics and the 0-100 decision score.
type ScoredChannel struct {
	ChannelID         string  `json:"channelId"`
	Title             string  `json:"title"`
	CustomURL         string  `json:"customUrl"`
	Thumbnail         string  `json:"thumbnail"`
	SubscriberCount   int64   `json:"subscriberCount"`
	AvgViews          float64 `json:"avgViews"`
	EngagementRate    float64 `json:"engagementRate"`
	GrowthMomentum    float64 `json:"growthMomentum"`
	StabilityScore    float64 `json:"stabilityScore"`
	CommentsPerKViews float64 `json:"commentsPerKViews"`
	CategoryMatch     float64 `json:"categoryMatch"`
	Score             float64 `json:"score"`
}
