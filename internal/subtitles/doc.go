// Package subtitles parses subtitle and transcript files into timed cues.
//
// Two timestamped formats are supported (SRT and WebVTT, which share one
// scanning algorithm) plus plain text, for which cue timing is synthesized
// from a words-per-second reading rate.
package subtitles
