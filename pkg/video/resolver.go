package video

import (
	"net/url"
	"strings"
)

// shortHost serves links of the form https://youtu.be/<id>
const shortHost = "youtu.be"

// canonicalHosts serve links of the form https://www.youtube.com/watch?v=<id>
var canonicalHosts = map[string]bool{
	"www.youtube.com": true,
	"youtube.com":     true,
	"m.youtube.com":   true,
}

// ExtractID resolves a video URL into its video identifier. The boolean is
// false when the host is not recognized or the identifier component is missing
func ExtractID(rawURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())

	switch {
	case host == shortHost:
		id, _, _ := strings.Cut(strings.TrimPrefix(parsed.Path, "/"), "/")
		return id, id != ""

	case canonicalHosts[host]:
		id := parsed.Query().Get("v")
		return id, id != ""
	}

	return "", false
}
