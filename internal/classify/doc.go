package classify

// Package classify holds the two pure classification tables of the bot:
// platform detection for incoming links and the mapping of raw download
// errors onto user-facing messages. Both are ordered, first-match-wins
// lookups behind single functions so the matching strategy can be replaced
// without touching callers.
