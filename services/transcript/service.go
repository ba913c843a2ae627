package transcript

import (
	"context"
	"time"

	"github.com/gcottom/go-zaplog"
	"github.com/pmaeria/youtube-transcript-extractor/metrics"
	"go.uber.org/zap"
)

// FetchTranscript makes a single upstream attempt and returns the segments in
// the order YouTube delivered them.
func (s *Service) FetchTranscript(ctx context.Context, videoID string, lang string) ([]Entry, error) {
	start := time.Now()
	transcript, err := s.YoutubeClient.GetTranscript(ctx, videoID, lang)
	metrics.UpstreamDuration.WithLabelValues(metrics.Status(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(transcript.Segments))
	for _, segment := range transcript.Segments {
		entries = append(entries, Entry{
			Text:     segment.Text,
			Duration: msToSeconds(segment.Duration),
			Offset:   msToSeconds(segment.StartMs),
			Lang:     transcript.Language,
		})
	}
	zaplog.InfoC(ctx, "transcript fetched", zap.String("id", videoID), zap.Int("entries", len(entries)))
	return entries, nil
}

func msToSeconds(ms int) float64 {
	return float64(ms) / 1000
}
