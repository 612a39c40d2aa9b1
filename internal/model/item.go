package model

// UnknownArtist is the performer shown when the source exposes neither an
// uploader nor a channel name.
const UnknownArtist = "Unknown Artist"

// MediaItem is one resolved track within a job. A single link may expand to
// many items when it points at a playlist. The local audio file is owned by
// whoever holds the item and must not outlive its delivery attempt.
type MediaItem struct {
	Title        string
	Performer    string
	Duration     int    // seconds, 0 when unknown
	ThumbnailURL string // optional remote cover image
	FilePath     string // local audio file
}

// ResolvePerformer picks the track performer from extractor metadata:
// uploader first, channel second, UnknownArtist as the last resort.
func ResolvePerformer(uploader, channel string) string {
	if uploader != "" {
		return uploader
	}
	if channel != "" {
		return channel
	}
	return UnknownArtist
}
