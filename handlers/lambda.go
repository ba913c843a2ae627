package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gcottom/go-zaplog"
	"github.com/pmaeria/youtube-transcript-extractor/metrics"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
	"go.uber.org/zap"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json; charset=utf-8"}

type LambdaHandler struct {
	TranscriptService transcript.TranscriptService
}

// Transcript serves GET /api/transcript/{videoId} behind API Gateway.
func (h *LambdaHandler) Transcript(ctx context.Context, req events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	videoID := req.PathParameters["videoId"]
	lang := req.QueryStringParameters["lang"]
	zaplog.InfoC(ctx, "get transcript request received", zap.String("id", videoID), zap.String("lang", lang))
	entries, err := h.TranscriptService.FetchTranscript(ctx, videoID, lang)
	metrics.TranscriptRequestsTotal.WithLabelValues(metrics.TransportLambda, metrics.Status(err)).Inc()
	if err != nil {
		zaplog.ErrorC(ctx, "error getting transcript", zap.String("id", videoID), zap.Error(err))
		return lambdaJSON(http.StatusInternalServerError, NewErrorResponse(err))
	}
	if entries == nil {
		entries = []transcript.Entry{}
	}
	return lambdaJSON(http.StatusOK, entries)
}

func lambdaJSON(status int, body any) (*events.APIGatewayProxyResponse, error) {
	jsonResponse, err := json.Marshal(body)
	if err != nil {
		return &events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       fmt.Sprintf("Failed to marshal response: %v", err),
		}, nil
	}
	return &events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    jsonHeaders,
		Body:       string(jsonResponse),
	}, nil
}
