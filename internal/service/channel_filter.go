package service

import (
	"sort"
	"strings"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

// Tokens that mark official/aggregator/music-label channels. Matched
// case-insensitively against title, description, and custom handle.
var noiseTokens = []string{
	" - topic", "topic", "vevo", "records", "official", "label", "provided to youtube",
}

const (
	// High-subscriber channels with almost no uploads and no handle are
	// usually aggregators or label placeholders.
	noiseMinVideos = 6
	noiseMaxSubs   = 200000

	// Rough-rank cutoff: caps how many channels undergo the expensive
	// enrichment stage. Channels past the cutoff are never scored, a
	// deliberate cost/completeness tradeoff.
	roughRankLimit = 220
)

func looksLikeNoiseChannel(ch model.ChannelCandidate) bool {
	name := strings.ToLower(ch.Title)
	desc := strings.ToLower(ch.Description)
	handle := strings.ToLower(ch.CustomURL)

	for _, tok := range noiseTokens {
		if strings.Contains(name, tok) || strings.Contains(desc, tok) || strings.Contains(handle, tok) {
			return true
		}
	}

	if ch.VideoCount < noiseMinVideos && ch.SubscriberCount > noiseMaxSubs && ch.CustomURL == "" {
		return true
	}

	return false
}

// filterChannels walks the candidates in discovery order and drops noise
// channels and channels whose basic text is implausible for the target
// language. IDs with no resolved metadata are skipped.
func filterChannels(candidateIDs []string, channels map[string]model.ChannelCandidate, p model.RadarParams) []model.ChannelCandidate {
	var filtered []model.ChannelCandidate
	for _, id := range candidateIDs {
		ch, ok := channels[id]
		if !ok {
			continue
		}

		if p.ExcludeTopic && looksLikeNoiseChannel(ch) {
			continue
		}

		if p.StrictLang && implausibleForLang(ch.Title+" "+ch.Description, p.Lang) {
			continue
		}

		filtered = append(filtered, ch)
	}
	return filtered
}

// roughRank sorts channels descending by subscriber count and truncates to
// limit. Cheap pre-ranking before the per-channel enrichment spend.
func roughRank(channels []model.ChannelCandidate, limit int) []model.ChannelCandidate {
	ranked := make([]model.ChannelCandidate, len(channels))
	copy(ranked, channels)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SubscriberCount > ranked[j].SubscriberCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
