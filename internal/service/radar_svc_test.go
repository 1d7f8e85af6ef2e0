package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/youtube"
)

func newFoodMock() *mockProvider {
	return &mockProvider{
		channels:   make(map[string]model.ChannelCandidate),
		uploads:    make(map[string][]model.UploadRecord),
		uploadsErr: make(map[string]error),
		stats:      make(map[string]model.VideoStats),
	}
}

// addFoodChannel registers a channel with recent food uploads and resolved
// stats so it survives the full funnel for lang=zh-Hant, cat=food.
func (m *mockProvider) addFoodChannel(id string, subs int64, views []int64) {
	playlist := "PL-" + id
	m.channels[id] = model.ChannelCandidate{
		ID:                id,
		Title:             "美食頻道 " + id,
		CustomURL:         "@" + id,
		UploadsPlaylistID: playlist,
		SubscriberCount:   subs,
		VideoCount:        40,
	}
	for i, v := range views {
		videoID := fmt.Sprintf("%s-v%d", id, i)
		m.uploads[playlist] = append(m.uploads[playlist], model.UploadRecord{
			VideoID:     videoID,
			Title:       fmt.Sprintf("台北美食探店 第%d集", i+1),
			PublishedAt: time.Now().AddDate(0, 0, -(i + 1)),
		})
		m.stats[videoID] = model.VideoStats{ViewCount: v, LikeCount: v / 20, CommentCount: v / 100}
	}
}

func foodParams() model.RadarParams {
	return model.RadarParams{
		Region:       "TW",
		Lang:         "zh-Hant",
		Category:     "food",
		Days:         30,
		ExcludeTopic: true,
		StrictLang:   true,
		StrictCat:    true,
	}
}

func TestBuildTop100_FunnelCounts(t *testing.T) {
	mock := newFoodMock()

	// Three seed queries return 10 unique channels each; the rest return
	// nothing. No overlap → 30 candidates.
	queries := LookupCategory("food").Queries
	pageFor := map[string][]string{}
	var allIDs []string
	for qi := 0; qi < 3; qi++ {
		var page []string
		for n := 0; n < 10; n++ {
			id := fmt.Sprintf("UCq%d-%02d", qi, n)
			page = append(page, id)
			allIDs = append(allIDs, id)
		}
		pageFor[queries[qi]] = page
	}
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: pageFor[query]}, nil
	}

	// 5 noise channels, 10 fully scoreable, 15 with no uploads.
	for i, id := range allIDs {
		switch {
		case i < 5:
			mock.channels[id] = model.ChannelCandidate{ID: id, Title: "BandName VEVO " + id}
		case i < 15:
			mock.addFoodChannel(id, int64(1000*(i+1)), []int64{9000, 8000, 7000, 6000, 5000, 4000, 3000, 2000})
		default:
			mock.channels[id] = model.ChannelCandidate{
				ID:                id,
				Title:             "美食頻道 " + id,
				CustomURL:         "@" + id,
				UploadsPlaylistID: "PL-empty-" + id,
				SubscriberCount:   500,
				VideoCount:        40,
			}
		}
	}

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := report.Meta
	if meta.CandidateChannels != 30 {
		t.Errorf("candidateChannels = %d, want 30", meta.CandidateChannels)
	}
	if meta.AfterChannelFilter != 25 {
		t.Errorf("afterChannelFilter = %d, want 25", meta.AfterChannelFilter)
	}
	if meta.RoughScored != 25 {
		t.Errorf("roughScored = %d, want 25", meta.RoughScored)
	}
	if meta.ScoredCount != 10 {
		t.Errorf("scoredCount = %d, want 10", meta.ScoredCount)
	}
	if meta.DebugCounters.Checked != 25 {
		t.Errorf("checked = %d, want 25", meta.DebugCounters.Checked)
	}
	if meta.DebugCounters.NoVideos != 15 {
		t.Errorf("noVideos = %d, want 15", meta.DebugCounters.NoVideos)
	}

	// Funnel invariants.
	if !(meta.ScoredCount <= meta.RoughScored &&
		meta.RoughScored <= meta.AfterChannelFilter &&
		meta.AfterChannelFilter <= meta.CandidateChannels) {
		t.Errorf("funnel not monotonic: %+v", meta)
	}

	if len(report.Items) != meta.ScoredCount {
		t.Errorf("items = %d, want %d", len(report.Items), meta.ScoredCount)
	}
	for i, item := range report.Items {
		if item.Score < 0 || item.Score > 100 {
			t.Errorf("item %d score = %.1f out of [0,100]", i, item.Score)
		}
		if i > 0 && report.Items[i-1].Score < item.Score {
			t.Errorf("items not sorted descending at %d: %.1f < %.1f", i, report.Items[i-1].Score, item.Score)
		}
	}
}

func TestBuildTop100_UploadsErrorDoesNotAbortRun(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UCgood", "UCbroken"}}, nil
	}
	mock.addFoodChannel("UCgood", 10000, []int64{5000, 5000, 4000, 4000, 3000, 3000})
	mock.addFoodChannel("UCbroken", 20000, []int64{5000, 5000, 4000, 4000, 3000, 3000})
	mock.uploadsErr["PL-UCbroken"] = errors.New("playlistItems.list: backend error")

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("a per-channel uploads failure must not abort the run: %v", err)
	}

	if report.Meta.ScoredCount != 1 {
		t.Errorf("scoredCount = %d, want 1", report.Meta.ScoredCount)
	}
	if report.Meta.DebugCounters.NoVideos != 1 {
		t.Errorf("noVideos = %d, want 1", report.Meta.DebugCounters.NoVideos)
	}
	if len(report.Items) != 1 || report.Items[0].ChannelID != "UCgood" {
		t.Errorf("surviving channel missing from items: %+v", report.Items)
	}
}

func TestBuildTop100_StrictLanguageDropsChannel(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UCen"}}, nil
	}
	// Channel-level text passes (Han present) but the videos are English.
	playlist := "PL-UCen"
	mock.channels["UCen"] = model.ChannelCandidate{
		ID: "UCen", Title: "美食頻道", CustomURL: "@en", UploadsPlaylistID: playlist,
		SubscriberCount: 1000, VideoCount: 40,
	}
	for i := 0; i < 8; i++ {
		videoID := fmt.Sprintf("en-v%d", i)
		mock.uploads[playlist] = append(mock.uploads[playlist], model.UploadRecord{
			VideoID:     videoID,
			Title:       fmt.Sprintf("Street food tour episode %d", i+1),
			PublishedAt: time.Now().AddDate(0, 0, -(i + 1)),
		})
		mock.stats[videoID] = model.VideoStats{ViewCount: 1000}
	}

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Meta.DebugCounters.DroppedByLang != 1 {
		t.Errorf("droppedByLang = %d, want 1", report.Meta.DebugCounters.DroppedByLang)
	}
	if report.Meta.ScoredCount != 0 {
		t.Errorf("scoredCount = %d, want 0", report.Meta.ScoredCount)
	}
}

func TestBuildTop100_StrictCategoryDropsChannel(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UChike"}}, nil
	}
	// Right language, wrong topic.
	playlist := "PL-UChike"
	mock.channels["UChike"] = model.ChannelCandidate{
		ID: "UChike", Title: "登山頻道", CustomURL: "@hike", UploadsPlaylistID: playlist,
		SubscriberCount: 1000, VideoCount: 40,
	}
	for i := 0; i < 8; i++ {
		videoID := fmt.Sprintf("hike-v%d", i)
		mock.uploads[playlist] = append(mock.uploads[playlist], model.UploadRecord{
			VideoID:     videoID,
			Title:       fmt.Sprintf("登山健行日誌 第%d集", i+1),
			PublishedAt: time.Now().AddDate(0, 0, -(i + 1)),
		})
		mock.stats[videoID] = model.VideoStats{ViewCount: 1000}
	}

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Meta.DebugCounters.DroppedByCat != 1 {
		t.Errorf("droppedByCat = %d, want 1", report.Meta.DebugCounters.DroppedByCat)
	}
}

func TestBuildTop100_WindowFallbackToAllUploads(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UCold"}}, nil
	}
	// All uploads older than the window → the channel is still scored from
	// its most recent uploads.
	playlist := "PL-UCold"
	mock.channels["UCold"] = model.ChannelCandidate{
		ID: "UCold", Title: "美食頻道", CustomURL: "@old", UploadsPlaylistID: playlist,
		SubscriberCount: 1000, VideoCount: 40,
	}
	for i := 0; i < 8; i++ {
		videoID := fmt.Sprintf("old-v%d", i)
		mock.uploads[playlist] = append(mock.uploads[playlist], model.UploadRecord{
			VideoID:     videoID,
			Title:       fmt.Sprintf("台北美食探店 第%d集", i+1),
			PublishedAt: time.Now().AddDate(0, 0, -(100 + i)),
		})
		mock.stats[videoID] = model.VideoStats{ViewCount: 2000, LikeCount: 100, CommentCount: 10}
	}

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Meta.ScoredCount != 1 {
		t.Errorf("scoredCount = %d, want 1 (fallback to all uploads)", report.Meta.ScoredCount)
	}
}

func TestBuildTop100_TooFewResolvedVideos(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UCthin"}}, nil
	}
	// Only 5 videos resolve stats, below the 6-video minimum.
	mock.addFoodChannel("UCthin", 1000, []int64{1000, 1000, 1000, 1000, 1000})

	svc := NewRadarService(mock)
	report, err := svc.BuildTop100(context.Background(), foodParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Meta.ScoredCount != 0 {
		t.Errorf("scoredCount = %d, want 0", report.Meta.ScoredCount)
	}
	if report.Meta.DebugCounters.NoVideos != 1 {
		t.Errorf("noVideos = %d, want 1", report.Meta.DebugCounters.NoVideos)
	}
}

func TestBuildTop100_MetadataFetchErrorIsFatal(t *testing.T) {
	mock := newFoodMock()
	mock.searchFn = func(query, region, lang, pageToken string) (youtube.SearchPage, error) {
		return youtube.SearchPage{ChannelIDs: []string{"UC1"}}, nil
	}
	mock.channelsErr = errors.New("channels.list: forbidden")

	svc := NewRadarService(mock)
	if _, err := svc.BuildTop100(context.Background(), foodParams()); err == nil {
		t.Fatal("expected fatal error from metadata fetch")
	}
}
