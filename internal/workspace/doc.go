package workspace

// Package workspace manages per-job temporary directories: audio file
// naming, artifact removal after delivery, and the fatal-failure sweep.
