package progress

// Package progress implements the shared per-job progress record and the
// reporter loop that mirrors it into the chat status message. The tracker
// is written by the fetch engine's callback goroutine and read by the
// reporter, so all access is mutex-guarded.
