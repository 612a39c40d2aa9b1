package bot

// User-facing texts. The status message is edited in place through the
// whole job, so these are snapshots of one message's life, not a thread.
const (
	rejectText   = "❌ Please send a valid link (YouTube, SoundCloud, or Spotify)."
	startingText = "⏬ Starting download..."

	foundTracksFormat   = "📝 Found %d tracks in playlist!"
	uploadingText       = "⏫ Uploading MP3..."
	uploadingItemFormat = "⏫ Uploading %d/%d: %s..."
	doneFormat          = "✅ Done! Sent %d track(s)! 🎧"

	welcomeText = "🎵 Welcome to the Ultimate Music Downloader! 🎉\n" +
		"🎶 Turn any link into MP3 magic! ✨\n\n" +
		"🔥 What I Can Do:\n" +
		"📺 YouTube videos & playlists → MP3\n" +
		"🎧 SoundCloud tracks → MP3\n" +
		"🎵 Spotify tracks → MP3 (limited)\n" +
		"🖼️ Beautiful album art included!\n" +
		"📊 Real-time download progress\n" +
		"⚡ Lightning-fast downloads (128kbps)\n\n" +
		"💡 How to use:\n" +
		"Just paste any music link and watch the magic happen! 🪄"
)

// maxTitleInStatus bounds how much of a track title shows up in the
// per-item upload status.
const maxTitleInStatus = 30

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
