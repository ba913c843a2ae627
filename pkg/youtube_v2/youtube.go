package youtube_v2

import (
	"context"

	"github.com/gcottom/go-zaplog"
	"github.com/kkdai/youtube/v2"
	"go.uber.org/zap"
)

// GetTranscript fetches the caption segments of a video. videoID may also be
// a full video URL. lang may be empty, see resolveLanguage. Errors from the
// library are returned unwrapped; their text is what callers show to users.
func (s *Client) GetTranscript(ctx context.Context, videoID string, lang string) (*Transcript, error) {
	zaplog.InfoC(ctx, "fetching video info", zap.String("id", videoID))
	video, err := s.YTClient.GetVideoContext(ctx, videoID)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to get video info", zap.String("id", videoID), zap.Error(err))
		return nil, err
	}

	defaultLang := ""
	if s.Config != nil {
		defaultLang = s.Config.DefaultLanguage
	}
	lang = resolveLanguage(lang, defaultLang, video.CaptionTracks)
	zaplog.InfoC(ctx, "fetching transcript", zap.String("id", videoID), zap.String("lang", lang))
	transcript, err := s.YTClient.GetTranscriptCtx(ctx, video, lang)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to get transcript", zap.String("id", videoID), zap.String("lang", lang), zap.Error(err))
		return nil, err
	}
	zaplog.InfoC(ctx, "successfully retrieved transcript", zap.String("id", videoID), zap.Int("segments", len(transcript)))
	return &Transcript{VideoID: video.ID, Language: lang, Segments: transcript}, nil
}

// resolveLanguage picks the caption language: the requested one, then the
// configured default, then the first track the video has.
func resolveLanguage(requested, configured string, tracks []youtube.CaptionTrack) string {
	if requested != "" {
		return requested
	}
	if configured != "" {
		return configured
	}
	for _, track := range tracks {
		if track.LanguageCode != "" {
			return track.LanguageCode
		}
	}
	return fallbackLanguage
}
