package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/qgin/qgin"
	"github.com/gin-contrib/cors"
	"github.com/pmaeria/youtube-transcript-extractor/config"
	"github.com/pmaeria/youtube-transcript-extractor/handlers"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/http_client"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/youtube_v2"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
)

func main() {
	config, err := config.LoadConfigFromFile("")
	if err != nil {
		panic(err)
	}
	if err := RunServer(config); err != nil {
		panic(err)
	}
}

func RunServer(cfg *config.Config) error {
	ctx := zaplog.CreateAndInject(context.Background())
	zaplog.InfoC(ctx, "starting transcript server")

	zaplog.InfoC(ctx, "creating http client")
	httpClient := http_client.NewHTTPClient()

	zaplog.InfoC(ctx, "creating transcript service")
	transcriptService := transcript.NewTranscriptService(youtube_v2.NewYoutubeClient(cfg, httpClient))

	zaplog.InfoC(ctx, "creating gin engine")
	ginws := qgin.NewGinEngine(&ctx, &qgin.Config{
		UseContextMW:       true,
		UseLoggingMW:       true,
		UseRequestIDMW:     true,
		InjectRequestIDCTX: true,
		LogRequestID:       true,
		ProdMode:           cfg.ProdMode,
	})
	ginws.Use(cors.New(corsConfig(cfg)))

	zaplog.InfoC(ctx, "setting up routes")
	handlers.SetupRoutes(ginws, transcriptService, cfg.MetricsEnabled)

	zaplog.InfoC(ctx, fmt.Sprintf("serving on port %d", cfg.LocalPort))
	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.LocalPort), ginws)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
