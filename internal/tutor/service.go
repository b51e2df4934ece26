package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ethanbaker/sparky/pkg/history"
	"github.com/ethanbaker/sparky/pkg/prompts"
	"github.com/ethanbaker/sparky/pkg/video"
	"github.com/google/uuid"
)

// assistantName labels generated replies inside the conversation context
const assistantName = "Sparky"

// TranscriptFetcher turns a video URL into transcript text
type TranscriptFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// ContentGenerator produces text from a body and an instruction template
type ContentGenerator interface {
	Generate(ctx context.Context, body, template string) (string, error)
}

// HistoryStore keeps the turns of each chat session
type HistoryStore interface {
	Recent(key string, limit int) []history.Turn
	Append(key, message, response string) history.Turn
}

// Summary is the result of summarizing a video
type Summary struct {
	VideoID string
	Text    string
}

// ChatInput is one user message within a chat session
type ChatInput struct {
	Message string
	ChatID  string // Generated when empty
	Context string // Optional video URL whose transcript is added to the prompt
}

// Reply is the assistant's answer to a chat message
type Reply struct {
	ChatID   string
	Response string
}

// Service summarizes videos and answers chat messages
type Service struct {
	transcripts TranscriptFetcher
	generator   ContentGenerator
	history     HistoryStore
	templates   prompts.Templates
	window      int
}

// NewService wires the service collaborators. window is the number of past
// turns included in each chat prompt
func NewService(transcripts TranscriptFetcher, generator ContentGenerator, store HistoryStore, templates prompts.Templates, window int) *Service {
	if window <= 0 {
		window = history.DefaultWindow
	}

	return &Service{
		transcripts: transcripts,
		generator:   generator,
		history:     store,
		templates:   templates,
		window:      window,
	}
}

// Summarize produces an educational summary of the video at rawURL
func (s *Service) Summarize(ctx context.Context, rawURL string) (*Summary, error) {
	if rawURL == "" {
		return nil, newError(KindInvalidInput, "No URL provided", nil)
	}

	videoID, ok := video.ExtractID(rawURL)
	if !ok {
		return nil, newError(KindInvalidVideo, "Invalid YouTube URL", nil)
	}

	transcript, err := s.transcripts.Fetch(ctx, rawURL)
	if err != nil {
		return nil, newError(KindTranscript, err.Error(), err)
	}

	text, err := s.generator.Generate(ctx, transcript, s.templates.Summary)
	if err != nil {
		return nil, newError(KindGeneration, fmt.Sprintf("failed to summarize video %s", videoID), err)
	}

	log.Printf("[TUTOR]: Summarized video %s (%d transcript characters)", videoID, len(transcript))

	return &Summary{VideoID: videoID, Text: text}, nil
}

// Chat answers a message using the session's recent turns and, optionally,
// a video transcript as context. The turn is recorded only after generation
// succeeds
func (s *Service) Chat(ctx context.Context, in ChatInput) (*Reply, error) {
	if in.Message == "" {
		return nil, newError(KindInvalidInput, "No message provided", nil)
	}

	chatID := in.ChatID
	if chatID == "" {
		chatID = uuid.NewString()
	}

	var body strings.Builder
	for _, turn := range s.history.Recent(chatID, s.window) {
		fmt.Fprintf(&body, "User: %s\n%s: %s\n", turn.Message, assistantName, turn.Response)
	}

	if in.Context != "" {
		transcript, err := s.transcripts.Fetch(ctx, in.Context)
		if err != nil {
			log.Printf("[TUTOR]: Skipping video context for chat %s: %v", chatID, err)
		} else {
			fmt.Fprintf(&body, "\nVideo Context:\n%s\n", transcript)
		}
	}

	fmt.Fprintf(&body, "User: %s\n%s:", in.Message, assistantName)

	response, err := s.generator.Generate(ctx, body.String(), s.templates.Guidance)
	if err != nil {
		return nil, newError(KindGeneration, fmt.Sprintf("failed to answer chat %s", chatID), err)
	}

	s.history.Append(chatID, in.Message, response)

	return &Reply{ChatID: chatID, Response: response}, nil
}
