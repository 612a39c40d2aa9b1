package model

// Platform identifies the hosting service a link points at
type Platform string

const (
	PlatformYouTube    Platform = "youtube"
	PlatformSoundCloud Platform = "soundcloud"
	PlatformSpotify    Platform = "spotify"
	PlatformUnknown    Platform = "unknown"
)

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// IsKnown returns true for every recognized platform
func (p Platform) IsKnown() bool {
	return p == PlatformYouTube || p == PlatformSoundCloud || p == PlatformSpotify
}
