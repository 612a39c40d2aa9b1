package model

import "time"

// Job represents one end-to-end request to turn a chat-supplied link into
// delivered audio. Jobs live only for the duration of the request and are
// never persisted.
type Job struct {
	ID        string
	URL       string
	ChatID    int64
	Platform  Platform
	StartedAt time.Time
}
