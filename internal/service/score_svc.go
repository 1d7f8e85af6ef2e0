package service

import (
	"math"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

// Decision score weights. Must sum to 1.0.
const (
	reachWeight          = 0.35
	engagementWeight     = 0.30
	growthWeight         = 0.20
	stabilityWeight      = 0.10
	commentDensityWeight = 0.05
)

// Normalization targets: the raw metric value that earns a full 1.0 on its
// sub-score.
const (
	reachFullViews     = 200000.0 // average views for full reach
	engagementFullRate = 0.06     // (likes+comments)/views for full engagement
	growthOffset       = 0.05     // momentum shifted so -5% maps to 0
	growthRange        = 0.25     // +20% momentum maps to 1.0
	commentsFullPerK   = 6.0      // comments per 1000 views for full density
	cvCeiling          = 1.2      // coefficient of variation mapping to stability 0
)

// computeMetrics aggregates the enriched uploads of one channel. The input
// is assumed most-recent-first, as returned by the uploads playlist; the
// growth split depends on that ordering.
func computeMetrics(videos []model.EnrichedVideo) model.ChannelMetrics {
	views := make([]float64, len(videos))
	likes := make([]float64, len(videos))
	comments := make([]float64, len(videos))
	for i, v := range videos {
		views[i] = float64(v.ViewCount)
		likes[i] = float64(v.LikeCount)
		comments[i] = float64(v.CommentCount)
	}

	avgViews := mean(views)
	avgLikes := mean(likes)
	avgComments := mean(comments)

	var engagementRate, commentsPerK float64
	if avgViews > 0 {
		engagementRate = (avgLikes + avgComments) / avgViews
		commentsPerK = (avgComments / avgViews) * 1000
	}

	// Growth momentum: recent half vs older half.
	mid := len(videos) / 2
	if mid == 0 {
		mid = 1
	}
	recentViews := mean(views[:min(mid, len(views))])
	olderViews := mean(views[min(mid, len(views)):])
	var momentum float64
	if olderViews > 0 {
		momentum = (recentViews - olderViews) / olderViews
	}

	// Stability: lower view-count variation scores higher.
	cv := sampleCoeffVar(views)
	stability := clamp01(1 - cv/cvCeiling)

	return model.ChannelMetrics{
		AvgViews:          math.Round(avgViews),
		EngagementRate:    engagementRate,
		GrowthMomentum:    momentum,
		StabilityScore:    stability,
		CommentsPerKViews: round1(commentsPerK),
	}
}

// decisionScore maps channel metrics to the 0-100 composite, rounded to one
// decimal place. Pure and deterministic.
func decisionScore(m model.ChannelMetrics) float64 {
	reach := clamp01(m.AvgViews / reachFullViews)
	engagement := clamp01(m.EngagementRate / engagementFullRate)
	growth := clamp01((m.GrowthMomentum + growthOffset) / growthRange)
	stability := clamp01(m.StabilityScore)
	commentDensity := clamp01(m.CommentsPerKViews / commentsFullPerK)

	score := (reach*reachWeight +
		engagement*engagementWeight +
		growth*growthWeight +
		stability*stabilityWeight +
		commentDensity*commentDensityWeight) * 100

	return round1(score)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleCoeffVar is the sample (N-1) coefficient of variation. Zero for
// fewer than two values or a non-positive mean.
func sampleCoeffVar(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	if m <= 0 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(len(xs)-1))
	return sd / m
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
