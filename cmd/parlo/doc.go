// Package main hosts the parlo CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the Telegram serve loop, one-shot
// catalog scans, name resolution, playback history queries, readiness
// checks, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on
// user experience instead of wiring.
package main
