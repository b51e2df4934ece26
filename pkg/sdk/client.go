package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is returned when the backend answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[BACKEND]: request failed: %d: %s", e.StatusCode, e.Message)
}

// Client wraps calls to the tutor backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// ProcessVideo asks the backend to summarize the video at url
func (c *Client) ProcessVideo(ctx context.Context, url string) (*ProcessVideoResponse, error) {
	var out ProcessVideoResponse
	if err := c.doJSON(ctx, http.MethodPost, "/process-youtube", &ProcessVideoRequest{URL: url}, &out); err != nil {
		return nil, err
	}

	if out.Status != StatusSuccess {
		return nil, fmt.Errorf("unexpected status %q", out.Status)
	}

	return &out, nil
}

// Chat sends one message. Leave req.ChatID empty to start a new conversation
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat", req, &out); err != nil {
		return nil, err
	}

	if out.ChatID == "" {
		return nil, fmt.Errorf("no chat_id returned")
	}

	return &out, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError turns an error response into an *APIError, preferring the
// JSON "error" field and falling back to the raw body
func decodeError(resp *http.Response) error {
	b, _ := io.ReadAll(resp.Body)

	var payload ErrorResponse
	if err := json.Unmarshal(b, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
}

// IsClientError reports whether err is a 4xx response from the backend
func IsClientError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
