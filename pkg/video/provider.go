package video

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
)

// YouTubeProvider fetches captions directly from YouTube
type YouTubeProvider struct {
	client   *youtube.Client
	language string
}

// NewYouTubeProvider creates a provider requesting captions in the given language
func NewYouTubeProvider(language string) *YouTubeProvider {
	return &YouTubeProvider{
		client: &youtube.Client{
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
		},
		language: language,
	}
}

// FetchTranscript loads the video metadata and then its caption track
func (p *YouTubeProvider) FetchTranscript(ctx context.Context, videoID string) ([]Segment, error) {
	video, err := p.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("could not load video %s: %w", videoID, err)
	}

	transcript, err := p.client.GetTranscriptCtx(ctx, video, p.language)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve a transcript for video %s: %w", videoID, err)
	}

	segments := make([]Segment, 0, len(transcript))
	for _, part := range transcript {
		segments = append(segments, Segment{Text: part.Text})
	}

	log.Printf("[TRANSCRIPT]: Retrieved %d caption fragments for video %s", len(segments), videoID)

	return segments, nil
}
