// Package bot implements the chat command surface.
//
// Commands form a closed set parsed into typed payloads; the Service
// dispatches them against the catalog, the translator, and the playback
// history. The Telegram transport is isolated behind the Messenger
// interface so every handler is testable without the network.
package bot
