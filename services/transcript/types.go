package transcript

import (
	"context"

	"github.com/pmaeria/youtube-transcript-extractor/pkg/youtube_v2"
)

type TranscriptService interface {
	FetchTranscript(ctx context.Context, videoID string, lang string) ([]Entry, error)
}

type Service struct {
	YoutubeClient youtube_v2.YoutubeClient
}

func NewTranscriptService(youtubeClient youtube_v2.YoutubeClient) *Service {
	return &Service{
		YoutubeClient: youtubeClient,
	}
}

// Entry is one timed caption fragment. Offset and Duration are in seconds.
type Entry struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Offset   float64 `json:"offset"`
	Lang     string  `json:"lang"`
}
