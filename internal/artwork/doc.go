package artwork

// Package artwork fetches remote cover images over HTTP and embeds them,
// together with basic ID3 tags, into delivered MP3 files. Everything here
// is best effort: a track without artwork is still a deliverable track.
