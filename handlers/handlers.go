package handlers

import (
	"github.com/gcottom/go-zaplog"
	"github.com/gin-gonic/gin"
	"github.com/pmaeria/youtube-transcript-extractor/metrics"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
	"go.uber.org/zap"
)

type Handler struct {
	TranscriptService transcript.TranscriptService
}

func (h *Handler) GetTranscript(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	lang := ctx.Query("lang")
	zaplog.InfoC(ctx, "get transcript request received", zap.String("id", videoID), zap.String("lang", lang))
	entries, err := h.TranscriptService.FetchTranscript(ctx, videoID, lang)
	metrics.TranscriptRequestsTotal.WithLabelValues(metrics.TransportHTTP, metrics.Status(err)).Inc()
	if err != nil {
		zaplog.ErrorC(ctx, "error getting transcript", zap.String("id", videoID), zap.Error(err))
		ResponseFailure(ctx, err)
		return
	}
	if entries == nil {
		entries = []transcript.Entry{}
	}
	zaplog.InfoC(ctx, "get transcript request successful", zap.String("id", videoID), zap.Int("entries", len(entries)))
	ResponseSuccess(ctx, entries)
}

func (h *Handler) Health(ctx *gin.Context) {
	ResponseSuccess(ctx, HealthResponse{Status: "ok"})
}
