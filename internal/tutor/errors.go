package tutor

import "fmt"

// Kind classifies a failed request
type Kind int

const (
	KindInvalidInput Kind = iota // Required field missing
	KindInvalidVideo             // URL does not name a video
	KindTranscript               // Transcript provider could not supply a transcript
	KindGeneration               // Text generation failed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidVideo:
		return "invalid_video"
	case KindTranscript:
		return "transcript"
	case KindGeneration:
		return "generation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every Service operation. Message is safe to show to
// the caller when the error is recoverable
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Recoverable reports whether the caller can fix the request. Generation
// failures abort the request instead
func (e *Error) Recoverable() bool {
	return e.Kind != KindGeneration
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
