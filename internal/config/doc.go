// Package config loads, normalizes, and validates parlo's TOML
// configuration. Values resolve in order: built-in defaults, the config
// file, then environment overrides (TELEGRAM_TOKEN, DATA_DIR).
package config
