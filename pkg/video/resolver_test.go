package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "short link",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "short link with query",
			url:    "https://youtu.be/dQw4w9WgXcQ?t=42",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "short link without id",
			url:    "https://youtu.be/",
			wantOK: false,
		},
		{
			name:   "canonical link",
			url:    "https://www.youtube.com/watch?v=abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "canonical link with extra parameters",
			url:    "https://www.youtube.com/watch?v=abc123&list=PL1&t=10s",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "bare canonical host",
			url:    "https://youtube.com/watch?v=xyz",
			wantID: "xyz",
			wantOK: true,
		},
		{
			name:   "mobile host",
			url:    "https://m.youtube.com/watch?v=xyz",
			wantID: "xyz",
			wantOK: true,
		},
		{
			name:   "canonical link without v parameter",
			url:    "https://www.youtube.com/watch?list=PL1",
			wantOK: false,
		},
		{
			name:   "unrecognized host",
			url:    "https://vimeo.com/12345?v=abc",
			wantOK: false,
		},
		{
			name:   "not a url",
			url:    "not a url",
			wantOK: false,
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
