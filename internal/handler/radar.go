package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/config"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/middleware"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/service"
)

type RadarHandler struct {
	cfg   *config.Config
	svc   *service.RadarService
	cache *service.CacheService
}

func NewRadarHandler(cfg *config.Config, svc *service.RadarService, cache *service.CacheService) *RadarHandler {
	return &RadarHandler{cfg: cfg, svc: svc, cache: cache}
}

// Top100 handles GET /api/top100. Parameter defaults: region=TW,
// lang=zh-Hant, cat=3c (silent fallback when unknown), days=30 clamped to
// [7,365]; excludeTopic/strictLang/strictCat/cache all default on.
func (h *RadarHandler) Top100(c fiber.Ctx) error {
	if h.svc == nil || h.cfg.YouTubeAPIKey == "" {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError,
			"CONFIG_ERROR", "YT_API_KEY not configured")
	}

	region, errMsg := middleware.ValidateRegion(c.Query("region"), "TW")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	lang, errMsg := middleware.ValidateLang(c.Query("lang"), "zh-Hant")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	category := c.Query("cat")
	if category == "" {
		category = service.DefaultCategory
	}

	params := model.RadarParams{
		Region:       region,
		Lang:         lang,
		Category:     category,
		Days:         middleware.ClampDays(c.Query("days")),
		ExcludeTopic: middleware.FlagDefaultTrue(c.Query("excludeTopic")),
		StrictLang:   middleware.FlagDefaultTrue(c.Query("strictLang")),
		StrictCat:    middleware.FlagDefaultTrue(c.Query("strictCat")),
	}
	useCache := middleware.FlagDefaultTrue(c.Query("cache"))

	if useCache {
		cached, err := h.cache.GetReport(c.Context(), params.CacheKey())
		if err != nil {
			middleware.Logger.Warn().Err(err).Msg("report cache get failed")
		} else if cached != nil {
			Metrics.CacheHits.Inc()
			c.Set("Content-Type", "application/json; charset=utf-8")
			return c.Send(cached)
		}
		Metrics.CacheMisses.Inc()
	}

	start := time.Now()
	report, err := h.svc.BuildTop100(c.Context(), params)
	if err != nil {
		Metrics.RunsTotal.WithLabelValues("error").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "PROVIDER_ERROR", err.Error())
	}
	Metrics.RunsTotal.WithLabelValues("ok").Inc()
	Metrics.RunDuration.Observe(time.Since(start).Seconds())
	Metrics.ChannelsScored.Observe(float64(report.Meta.ScoredCount))

	if useCache {
		if err := h.cache.SetReport(c.Context(), params.CacheKey(), report); err != nil {
			middleware.Logger.Warn().Err(err).Msg("report cache set failed")
		}
	}

	return c.JSON(report)
}
