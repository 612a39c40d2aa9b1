package bot

// Package bot wires the Telegram transport to the download pipeline. Each
// incoming link becomes one job running on its own goroutine: classify,
// download with live progress edits, deliver every resolved track, clean
// up. Job failures are absorbed and reported to the chat; nothing here is
// fatal to the process.
