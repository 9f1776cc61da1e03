// Package history persists a record of successful playbacks in SQLite.
//
// The media index itself is never persisted; history is an independent,
// append-only log used by the CLI to show what was played recently.
package history
