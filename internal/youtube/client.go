package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

// ErrMissingAPIKey is returned when the client is constructed without a key.
var ErrMissingAPIKey = errors.New("youtube: API key is required")

const (
	// The API accepts at most 50 IDs per channels.list / videos.list call.
	batchSize = 50

	requestTimeout = 30 * time.Second

	// Outbound throttle. search.list costs 100 quota units, so the daily
	// 10k-unit budget dies fast without a ceiling on call frequency.
	callsPerSecond = 10
	callBurst      = 20
)

// Client is the production Provider backed by the YouTube Data API v3.
type Client struct {
	svc     *ytapi.Service
	limiter *rate.Limiter
}

// NewClient builds a YouTube Data API client authenticated by API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	httpClient := &http.Client{Timeout: requestTimeout}
	svc, err := ytapi.NewService(ctx,
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(callsPerSecond), callBurst),
	}, nil
}

// SearchChannels implements Provider via search.list (type=channel).
func (c *Client) SearchChannels(ctx context.Context, query, region, lang, pageToken string, maxResults int64) (SearchPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return SearchPage{}, err
	}

	call := c.svc.Search.List([]string{"snippet"}).
		Type("channel").
		Q(query).
		RegionCode(region).
		RelevanceLanguage(lang).
		MaxResults(maxResults)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return SearchPage{}, fmt.Errorf("search.list: %w", err)
	}

	page := SearchPage{NextPageToken: resp.NextPageToken}
	for _, it := range resp.Items {
		if it.Id != nil && it.Id.ChannelId != "" {
			page.ChannelIDs = append(page.ChannelIDs, it.Id.ChannelId)
		}
	}

	log.Debug().Str("query", query).Int("results", len(page.ChannelIDs)).Msg("channel search page")
	return page, nil
}

// FetchChannels implements Provider via channels.list, 50 IDs per call.
func (c *Client) FetchChannels(ctx context.Context, ids []string) (map[string]model.ChannelCandidate, error) {
	out := make(map[string]model.ChannelCandidate, len(ids))

	for _, chunk := range chunkIDs(ids, batchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.svc.Channels.List([]string{"snippet", "statistics", "contentDetails", "brandingSettings"}).
			Id(chunk...).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("channels.list: %w", err)
		}

		for _, it := range resp.Items {
			out[it.Id] = normalizeChannel(it)
		}
	}

	return out, nil
}

// FetchRecentUploads implements Provider via playlistItems.list.
func (c *Client) FetchRecentUploads(ctx context.Context, playlistID string, maxResults int64) ([]model.UploadRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("playlistItems.list: %w", err)
	}

	var uploads []model.UploadRecord
	for _, it := range resp.Items {
		rec := model.UploadRecord{}
		if it.ContentDetails != nil {
			rec.VideoID = it.ContentDetails.VideoId
			rec.PublishedAt = parseTimestamp(it.ContentDetails.VideoPublishedAt)
		}
		if it.Snippet != nil {
			rec.Title = it.Snippet.Title
			rec.Description = it.Snippet.Description
			if rec.PublishedAt.IsZero() {
				rec.PublishedAt = parseTimestamp(it.Snippet.PublishedAt)
			}
		}
		if rec.VideoID == "" || rec.PublishedAt.IsZero() {
			continue
		}
		uploads = append(uploads, rec)
	}

	return uploads, nil
}

// FetchVideoStats implements Provider via videos.list, 50 IDs per call.
func (c *Client) FetchVideoStats(ctx context.Context, ids []string) (map[string]model.VideoStats, error) {
	out := make(map[string]model.VideoStats, len(ids))

	for _, chunk := range chunkIDs(ids, batchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.svc.Videos.List([]string{"statistics", "snippet"}).
			Id(chunk...).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("videos.list: %w", err)
		}

		for _, it := range resp.Items {
			if it.Statistics == nil {
				continue
			}
			vs := model.VideoStats{
				ViewCount:    int64(it.Statistics.ViewCount),
				LikeCount:    int64(it.Statistics.LikeCount),
				CommentCount: int64(it.Statistics.CommentCount),
			}
			if it.Snippet != nil {
				vs.DefaultLanguage = it.Snippet.DefaultLanguage
				vs.DefaultAudioLanguage = it.Snippet.DefaultAudioLanguage
			}
			out[it.Id] = vs
		}
	}

	return out, nil
}

func normalizeChannel(it *ytapi.Channel) model.ChannelCandidate {
	ch := model.ChannelCandidate{ID: it.Id}

	if sn := it.Snippet; sn != nil {
		ch.Title = sn.Title
		ch.Description = sn.Description
		ch.CustomURL = normalizeHandle(sn.CustomUrl)
		ch.Country = sn.Country
		if sn.Thumbnails != nil {
			if sn.Thumbnails.Default != nil {
				ch.Thumbnail = sn.Thumbnails.Default.Url
			} else if sn.Thumbnails.Medium != nil {
				ch.Thumbnail = sn.Thumbnails.Medium.Url
			}
		}
	}
	if st := it.Statistics; st != nil {
		ch.SubscriberCount = int64(st.SubscriberCount)
		ch.ViewCount = int64(st.ViewCount)
		ch.VideoCount = int64(st.VideoCount)
	}
	if cd := it.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		ch.UploadsPlaylistID = cd.RelatedPlaylists.Uploads
	}
	if bs := it.BrandingSettings; bs != nil && bs.Channel != nil {
		ch.Keywords = bs.Channel.Keywords
	}

	return ch
}

// normalizeHandle ensures a non-empty custom URL carries the @ prefix.
func normalizeHandle(customURL string) string {
	if customURL == "" {
		return ""
	}
	if customURL[0] == '@' {
		return customURL
	}
	return "@" + customURL
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
