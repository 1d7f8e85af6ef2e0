package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/youtube"
)

// topN is the size of the final decision pool.
const topN = 100

// RadarService runs the candidate discovery and scoring pipeline that
// produces the TOP100 decision pool for a region/language/category.
type RadarService struct {
	yt youtube.Provider
}

func NewRadarService(yt youtube.Provider) *RadarService {
	return &RadarService{yt: yt}
}

// BuildTop100 executes one full run: pool building, channel filtering,
// rough ranking, concurrent enrichment/scoring, and final assembly.
// Pool-building and metadata failures are fatal; per-channel failures
// inside enrichment are absorbed into the debug counters.
func (s *RadarService) BuildTop100(ctx context.Context, p model.RadarParams) (*model.Report, error) {
	start := time.Now()

	candidates, err := s.buildCandidatePool(ctx, p.Region, p.Lang, p.Category)
	if err != nil {
		return nil, err
	}

	channels, err := s.yt.FetchChannels(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("fetch channel metadata: %w", err)
	}

	filtered := filterChannels(candidates, channels, p)
	rough := roughRank(filtered, roughRankLimit)

	scored, counters := s.enrichAndScore(ctx, rough, p)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	items := scored
	if len(items) > topN {
		items = items[:topN]
	}

	elapsed := time.Since(start)
	log.Info().
		Str("region", p.Region).
		Str("lang", p.Lang).
		Str("cat", p.Category).
		Int("candidates", len(candidates)).
		Int("filtered", len(filtered)).
		Int("scored", len(scored)).
		Dur("elapsed", elapsed).
		Msg("top100 run complete")

	return &model.Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Meta: model.RunMeta{
			Region:             p.Region,
			Lang:               p.Lang,
			Category:           p.Category,
			Days:               p.Days,
			ExcludeTopic:       p.ExcludeTopic,
			StrictLang:         p.StrictLang,
			StrictCat:          p.StrictCat,
			CandidateChannels:  len(candidates),
			AfterChannelFilter: len(filtered),
			RoughScored:        len(rough),
			ScoredCount:        len(scored),
			DebugCounters:      counters,
			ElapsedMs:          elapsed.Milliseconds(),
		},
		Items: items,
	}, nil
}
