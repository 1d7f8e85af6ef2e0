package youtube

import (
	"context"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

// SearchPage is one page of channel search results.
type SearchPage struct {
	ChannelIDs    []string
	NextPageToken string
}

// Provider is the read-only boundary to the video platform. All four
// operations map 1:1 onto YouTube Data API v3 list calls; any non-success
// response surfaces as an error with the API's own message where available.
type Provider interface {
	// SearchChannels runs a channel-type search for one query/region/language
	// combination and returns up to maxResults channel IDs plus the token for
	// the next page, if any.
	SearchChannels(ctx context.Context, query, region, lang, pageToken string, maxResults int64) (SearchPage, error)

	// FetchChannels resolves metadata for the given channel IDs, batching
	// requests at 50 IDs per call. IDs the API does not return are simply
	// absent from the map.
	FetchChannels(ctx context.Context, ids []string) (map[string]model.ChannelCandidate, error)

	// FetchRecentUploads returns up to maxResults of the most recent entries
	// in an uploads playlist, most recent first. Entries without a video ID
	// or publish timestamp are dropped.
	FetchRecentUploads(ctx context.Context, playlistID string, maxResults int64) ([]model.UploadRecord, error)

	// FetchVideoStats resolves statistics for the given video IDs, batching
	// at 50 IDs per call. Videos with no statistics are absent from the map.
	FetchVideoStats(ctx context.Context, ids []string) (map[string]model.VideoStats, error)
}
