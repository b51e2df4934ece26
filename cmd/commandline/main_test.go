package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethanbaker/sparky/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPL(t *testing.T) {
	var (
		mu    sync.Mutex
		chats []sdk.ChatRequest
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		var req sdk.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		chats = append(chats, req)
		mu.Unlock()

		chatID := req.ChatID
		if chatID == "" {
			chatID = "chat-1"
		}
		json.NewEncoder(w).Encode(sdk.ChatResponse{Response: "reply to " + req.Message, ChatID: chatID})
	})
	mux.HandleFunc("/process-youtube", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sdk.ProcessVideoResponse{Status: sdk.StatusSuccess, Summary: "Step 1: Test the fuse.", VideoID: "abc"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	var out bytes.Buffer
	r := &repl{client: sdk.NewClient(server.URL), out: &out}

	input := strings.Join([]string{
		"hello",
		"/video https://youtu.be/abc",
		"explain",
		"/summary https://youtu.be/abc",
		"/summary",
		"/new",
		"again",
		"exit",
		"ignored",
	}, "\n")

	require.NoError(t, r.run(context.Background(), strings.NewReader(input)))

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, chats, 3)
	assert.Equal(t, sdk.ChatRequest{Message: "hello"}, chats[0])
	assert.Equal(t, sdk.ChatRequest{Message: "explain", ChatID: "chat-1", Context: "https://youtu.be/abc"}, chats[1])
	assert.Equal(t, sdk.ChatRequest{Message: "again", Context: "https://youtu.be/abc"}, chats[2])

	output := out.String()
	assert.Contains(t, output, "Sparky: reply to hello")
	assert.Contains(t, output, "Summary of abc:")
	assert.Contains(t, output, "Error: usage: /summary <url>")
	assert.NotContains(t, output, "ignored")
}
