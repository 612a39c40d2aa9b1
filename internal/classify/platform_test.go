package classify

import (
	"testing"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected model.Platform
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", model.PlatformYouTube},
		{"youtube playlist", "https://youtube.com/playlist?list=PL123abc", model.PlatformYouTube},
		{"youtu.be short link", "https://youtu.be/abc123", model.PlatformYouTube},
		{"link embedded in text", "check this out https://youtu.be/abc123", model.PlatformYouTube},
		{"soundcloud track", "https://soundcloud.com/artist/track-name", model.PlatformSoundCloud},
		{"soundcloud short domain", "https://snd.sc/abc123", model.PlatformSoundCloud},
		{"spotify track", "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", model.PlatformSpotify},
		{"spotify album", "spotify.com/album/1ATL5GLyefJaxhQzSPVrLX", model.PlatformSpotify},
		{"spotify playlist", "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", model.PlatformSpotify},
		{"no scheme", "www.youtube.com/watch?v=abc123", model.PlatformYouTube},
		{"plain text", "hello there", model.PlatformUnknown},
		{"unrelated link", "https://example.com/watch?v=abc", model.PlatformUnknown},
		{"empty", "", model.PlatformUnknown},
	}

	for _, test := range tests {
		result := DetectPlatform(test.text)
		if result != test.expected {
			t.Errorf("%s: DetectPlatform(%q) = %s, expected %s", test.name, test.text, result, test.expected)
		}
	}
}

func TestDetectPlatform_Idempotent(t *testing.T) {
	text := "check this out https://youtu.be/abc123"
	first := DetectPlatform(text)
	for i := 0; i < 5; i++ {
		if got := DetectPlatform(text); got != first {
			t.Fatalf("DetectPlatform is not idempotent: got %s after %s", got, first)
		}
	}
}
