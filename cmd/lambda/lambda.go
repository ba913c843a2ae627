package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gcottom/go-zaplog"
	"github.com/pmaeria/youtube-transcript-extractor/config"
	"github.com/pmaeria/youtube-transcript-extractor/handlers"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/http_client"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/youtube_v2"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
)

func main() {
	cfg, err := config.LoadConfigOrDefault("")
	if err != nil {
		panic(err)
	}
	httpClient := http_client.NewHTTPClient()
	h := &handlers.LambdaHandler{
		TranscriptService: transcript.NewTranscriptService(youtube_v2.NewYoutubeClient(cfg, httpClient)),
	}
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		ctx = zaplog.CreateAndInject(ctx)
		return h.Transcript(ctx, req)
	})
}
