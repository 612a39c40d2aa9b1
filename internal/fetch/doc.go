package fetch

// Package fetch wraps yt-dlp (via github.com/lrstanley/go-ytdlp) behind a
// single blocking Fetch call: extract, download, transcode to MP3, and
// embed thumbnails, reporting progress through a hook. The call is meant to
// run on its own goroutine; the engine's own retry counts bound failures.
