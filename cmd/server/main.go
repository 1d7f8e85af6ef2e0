package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/config"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/handler"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/middleware"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/router"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/service"
	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "influencer-radar")

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// The server still starts without a key so health checks and metrics
	// stay reachable; /api/top100 reports the configuration error.
	var radarSvc *service.RadarService
	if cfg.YouTubeAPIKey == "" {
		log.Println("YT_API_KEY not set; /api/top100 will return a configuration error")
	} else {
		yt, err := youtube.NewClient(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			log.Fatalf("failed to create youtube client: %v", err)
		}
		radarSvc = service.NewRadarService(yt)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Influencer Radar API",
		ServerHeader: "InfluencerRadar",
	})

	handler.RegisterMetrics()

	h := &router.Handlers{
		Radar:  handler.NewRadarHandler(cfg, radarSvc, cache),
		Health: handler.NewHealthHandler(cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("influencer radar backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
