package service

import (
	"context"
	"sync"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/youtube"
)

// mockProvider is an in-memory Provider for pipeline tests.
type mockProvider struct {
	mu          sync.Mutex
	searchCalls int

	searchFn    func(query, region, lang, pageToken string) (youtube.SearchPage, error)
	channels    map[string]model.ChannelCandidate
	channelsErr error
	uploads     map[string][]model.UploadRecord
	uploadsErr  map[string]error
	stats       map[string]model.VideoStats
	statsErr    error
}

func (m *mockProvider) SearchChannels(_ context.Context, query, region, lang, pageToken string, _ int64) (youtube.SearchPage, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()

	if m.searchFn == nil {
		return youtube.SearchPage{}, nil
	}
	return m.searchFn(query, region, lang, pageToken)
}

func (m *mockProvider) FetchChannels(_ context.Context, ids []string) (map[string]model.ChannelCandidate, error) {
	if m.channelsErr != nil {
		return nil, m.channelsErr
	}
	out := make(map[string]model.ChannelCandidate)
	for _, id := range ids {
		if ch, ok := m.channels[id]; ok {
			out[id] = ch
		}
	}
	return out, nil
}

func (m *mockProvider) FetchRecentUploads(_ context.Context, playlistID string, maxResults int64) ([]model.UploadRecord, error) {
	if err := m.uploadsErr[playlistID]; err != nil {
		return nil, err
	}
	uploads := m.uploads[playlistID]
	if int64(len(uploads)) > maxResults {
		uploads = uploads[:maxResults]
	}
	return uploads, nil
}

func (m *mockProvider) FetchVideoStats(_ context.Context, ids []string) (map[string]model.VideoStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	out := make(map[string]model.VideoStats)
	for _, id := range ids {
		if vs, ok := m.stats[id]; ok {
			out[id] = vs
		}
	}
	return out, nil
}
