package classify

import "strings"

// category pairs trigger phrases with the message shown to the user.
type category struct {
	triggers []string
	message  string
}

// categories is checked in order; the first category with any matching
// trigger wins. The triggers match on yt-dlp's free-text error output, so
// order matters: "unavailable" also contains "available" and must stay
// behind the format category to keep its historical meaning.
var categories = []category{
	{
		triggers: []string{"sign in", "bot", "age", "cookies"},
		message:  "Please make sure you're logged into YouTube in Chrome and have confirmed your age on age-restricted videos. Then restart the bot.",
	},
	{
		triggers: []string{"signature", "js runtime", "ejs", "challenge", "remote component"},
		message:  "YouTube signature solving failed. Install Node.js and allow EJS remote components, then retry.",
	},
	{
		triggers: []string{"429", "too many requests"},
		message:  "Server is temporarily blocked by YouTube (Rate Limit). Please try again later.",
	},
	{
		triggers: []string{"format", "available"},
		message:  "Video format not available. This might be a restricted video.",
	},
	{
		triggers: []string{"private", "unavailable"},
		message:  "Video is private or unavailable.",
	},
	{
		triggers: []string{"copyright"},
		message:  "Video is copyright protected and cannot be downloaded.",
	},
	{
		triggers: []string{"geo", "region"},
		message:  "Video is not available in this region.",
	},
	{
		triggers: []string{"network", "connection"},
		message:  "Network error. Please try again.",
	},
	{
		triggers: []string{"spotify"},
		message:  "Spotify downloads require premium account. Try YouTube instead.",
	},
}

// genericFailure is the fallback when no trigger matches.
const genericFailure = "Download failed. Please try again or use a different link."

// UserMessage maps a raw download error onto exactly one user-facing
// message via case-insensitive substring matching. The classification is
// purely presentational; callers keep the original error for logging.
func UserMessage(err error) string {
	if err == nil {
		return genericFailure
	}
	text := strings.ToLower(err.Error())
	for _, c := range categories {
		for _, trigger := range c.triggers {
			if strings.Contains(text, trigger) {
				return c.message
			}
		}
	}
	return genericFailure
}
