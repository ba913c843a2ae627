package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, transcriptService transcript.TranscriptService, withMetrics bool) {
	handler := &Handler{TranscriptService: transcriptService}
	// Match on the raw path so an escaped video URL stays a single segment.
	router.UseRawPath = true
	router.GET("/api/transcript/:videoId", handler.GetTranscript)
	router.GET("/health", handler.Health)
	if withMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
