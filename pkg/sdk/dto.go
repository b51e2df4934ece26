package sdk

/** Requests */

// ProcessVideoRequest represents the request body for summarizing a video
type ProcessVideoRequest struct {
	URL string `json:"url"`
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id,omitempty"` // Generated by the server when empty
	Context string `json:"context,omitempty"` // Optional video URL used as context
}

/** Responses */

// ProcessVideoResponse represents a successful summary
type ProcessVideoResponse struct {
	Status  string `json:"status"`
	Summary string `json:"summary"`
	VideoID string `json:"video_id"`
}

// ChatResponse represents a successful chat turn
type ChatResponse struct {
	Response string `json:"response"`
	ChatID   string `json:"chat_id"`
}

// ErrorResponse is returned with every 4xx status
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusSuccess is the status reported by a successful summary
const StatusSuccess = "success"
