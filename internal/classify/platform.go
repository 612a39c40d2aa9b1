package classify

import (
	"regexp"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

// platformPatterns is checked in order; the first matching pattern wins.
// Matching is a substring search, so a link embedded in surrounding text
// still classifies. The patterns are mutually exclusive by domain.
var platformPatterns = []struct {
	platform model.Platform
	re       *regexp.Regexp
}{
	{model.PlatformYouTube, regexp.MustCompile(`(https?://)?(www\.)?(youtube\.com/(watch\?v=|playlist\?list=)|youtu\.be/)[a-zA-Z0-9_-]+`)},
	{model.PlatformSoundCloud, regexp.MustCompile(`(https?://)?(www\.)?(soundcloud\.com|snd\.sc)/[\w\-/]+`)},
	{model.PlatformSpotify, regexp.MustCompile(`(https?://)?(open\.)?spotify\.com/(track|playlist|album)/[a-zA-Z0-9]+`)},
}

// DetectPlatform returns the platform of the first recognized link found in
// text, or PlatformUnknown when nothing matches.
func DetectPlatform(text string) model.Platform {
	for _, entry := range platformPatterns {
		if entry.re.MatchString(text) {
			return entry.platform
		}
	}
	return model.PlatformUnknown
}
