package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

const (
	enrichWorkers     = 8
	uploadsPerChannel = 20
	minResolvedVideos = 6
)

// enrichState is the only structure the workers mutate concurrently: the
// scored accumulator and the drop counters, both behind one mutex.
type enrichState struct {
	mu       sync.Mutex
	scored   []model.ScoredChannel
	counters model.DebugCounters
}

func (st *enrichState) add(sc model.ScoredChannel) {
	st.mu.Lock()
	st.scored = append(st.scored, sc)
	st.mu.Unlock()
}

func (st *enrichState) bump(counter *int) {
	st.mu.Lock()
	*counter++
	st.mu.Unlock()
}

// enrichAndScore runs the fixed worker pool over the rough-ranked channels.
// Workers pull from a shared FIFO queue until it drains; result order is
// nondeterministic and resolved by the final sort.
func (s *RadarService) enrichAndScore(ctx context.Context, rough []model.ChannelCandidate, p model.RadarParams) ([]model.ScoredChannel, model.DebugCounters) {
	queue := make(chan model.ChannelCandidate, len(rough))
	for _, ch := range rough {
		queue <- ch
	}
	close(queue)

	since := time.Now().AddDate(0, 0, -p.Days)
	st := &enrichState{}

	var wg sync.WaitGroup
	for i := 0; i < enrichWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ch := range queue {
				s.scoreChannel(ctx, ch, p, since, st)
			}
		}()
	}
	wg.Wait()

	return st.scored, st.counters
}

// scoreChannel enriches and scores a single channel. Every failure here is
// per-channel: it is counted and the worker moves on, never aborting the run.
func (s *RadarService) scoreChannel(ctx context.Context, ch model.ChannelCandidate, p model.RadarParams, since time.Time, st *enrichState) {
	st.bump(&st.counters.Checked)

	if ch.UploadsPlaylistID == "" {
		return
	}

	uploads, err := s.yt.FetchRecentUploads(ctx, ch.UploadsPlaylistID, uploadsPerChannel)
	if err != nil {
		log.Warn().Err(err).Str("channel", ch.ID).Msg("uploads fetch failed, skipping channel")
		st.bump(&st.counters.NoVideos)
		return
	}
	if len(uploads) == 0 {
		st.bump(&st.counters.NoVideos)
		return
	}

	// Prefer uploads inside the trailing window; if none qualify, estimate
	// from the most recent uploads rather than dropping the channel.
	var within []model.UploadRecord
	for _, v := range uploads {
		if !v.PublishedAt.Before(since) {
			within = append(within, v)
		}
	}
	pick := within
	if len(pick) == 0 {
		pick = uploads
	}

	if p.StrictLang && languageMatchRatio(pick, p.Lang) < langMatchThreshold {
		st.bump(&st.counters.DroppedByLang)
		return
	}

	seeds := LookupCategory(p.Category)
	catMatch := categoryMatchRatio(pick, seeds)
	if p.StrictCat && catMatch < seeds.MinMatchRatio {
		st.bump(&st.counters.DroppedByCat)
		return
	}

	ids := make([]string, len(pick))
	for i, v := range pick {
		ids[i] = v.VideoID
	}
	stats, err := s.yt.FetchVideoStats(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Str("channel", ch.ID).Msg("stats fetch failed, skipping channel")
		st.bump(&st.counters.NoVideos)
		return
	}

	// Join stats onto uploads; videos with no resolved stats drop out.
	var enriched []model.EnrichedVideo
	for _, v := range pick {
		vs, ok := stats[v.VideoID]
		if !ok {
			continue
		}
		enriched = append(enriched, model.EnrichedVideo{UploadRecord: v, VideoStats: vs})
	}
	if len(enriched) < minResolvedVideos {
		st.bump(&st.counters.NoVideos)
		return
	}

	metrics := computeMetrics(enriched)

	st.add(model.ScoredChannel{
		ChannelID:         ch.ID,
		Title:             ch.Title,
		CustomURL:         ch.CustomURL,
		Thumbnail:         ch.Thumbnail,
		SubscriberCount:   ch.SubscriberCount,
		AvgViews:          metrics.AvgViews,
		EngagementRate:    metrics.EngagementRate,
		GrowthMomentum:    metrics.GrowthMomentum,
		StabilityScore:    metrics.StabilityScore,
		CommentsPerKViews: metrics.CommentsPerKViews,
		CategoryMatch:     catMatch,
		Score:             decisionScore(metrics),
	})
}
