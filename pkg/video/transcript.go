package video

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoVideoID is returned when a URL does not resolve to a video identifier
var ErrNoVideoID = errors.New("Could not extract video ID.")

// Segment is one caption fragment returned by a transcript provider
type Segment struct {
	Text string `json:"text"`
}

// Provider fetches the ordered caption fragments of a video
type Provider interface {
	FetchTranscript(ctx context.Context, videoID string) ([]Segment, error)
}

// TranscriptError reports a failed transcript retrieval. Its message carries
// the "Error: " prefix clients of the HTTP API already expect
type TranscriptError struct {
	VideoID string
	Err     error
}

func (e *TranscriptError) Error() string {
	return "Error: " + e.Err.Error()
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// Retriever turns a video URL into a single transcript string
type Retriever struct {
	provider Provider
}

// NewRetriever creates a retriever backed by the given provider
func NewRetriever(provider Provider) *Retriever {
	return &Retriever{provider: provider}
}

// Fetch resolves the URL and joins every caption fragment with a single space,
// in provider order. Any failure is returned as a *TranscriptError
func (r *Retriever) Fetch(ctx context.Context, rawURL string) (string, error) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return "", &TranscriptError{Err: ErrNoVideoID}
	}

	segments, err := r.fetchSegments(ctx, id)
	if err != nil {
		return "", &TranscriptError{VideoID: id, Err: err}
	}

	texts := make([]string, 0, len(segments))
	for _, segment := range segments {
		texts = append(texts, segment.Text)
	}

	return strings.Join(texts, " "), nil
}

// fetchSegments calls the provider and reports a provider panic as an error
func (r *Retriever) fetchSegments(ctx context.Context, id string) (segments []Segment, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("transcript provider failed: %v", rec)
		}
	}()

	return r.provider.FetchTranscript(ctx, id)
}
