package model

// Package model defines domain data structures used across the bot: jobs,
// resolved media items, progress snapshots, and the phase/platform enums.
// Structures carry no behavior beyond explicit state helpers.
