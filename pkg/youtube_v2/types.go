package youtube_v2

import (
	"context"

	"github.com/kkdai/youtube/v2"
	"github.com/pmaeria/youtube-transcript-extractor/config"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/http_client"
)

const fallbackLanguage = "en"

type YoutubeClient interface {
	GetTranscript(ctx context.Context, videoID string, lang string) (*Transcript, error)
}

// Transcript is the caption track fetched for a video, in the language it was
// actually requested in.
type Transcript struct {
	VideoID  string
	Language string
	Segments youtube.VideoTranscript
}

// youtubeAPI is the subset of *youtube.Client used here.
type youtubeAPI interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

type Client struct {
	Config   *config.Config
	YTClient youtubeAPI
}

func NewYoutubeClient(cfg *config.Config, httpClient *http_client.HTTPClient) *Client {
	return &Client{
		Config:   cfg,
		YTClient: &youtube.Client{HTTPClient: httpClient.Client},
	}
}
