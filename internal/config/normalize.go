package config

import (
	"os"
	"strings"

	"parlo/internal/language"
)

// normalize applies environment overrides, expands paths, and canonicalizes
// enum-like fields before validation.
func (c *Config) normalize() error {
	if token := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); token != "" {
		c.Telegram.Token = token
	}
	if dataDir := strings.TrimSpace(os.Getenv("DATA_DIR")); dataDir != "" {
		c.Paths.DataDir = dataDir
	}

	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if strings.TrimSpace(c.History.Path) != "" {
		if c.History.Path, err = expandPath(c.History.Path); err != nil {
			return err
		}
	}

	c.Telegram.Token = strings.TrimSpace(c.Telegram.Token)
	c.Translate.BaseURL = strings.TrimRight(strings.TrimSpace(c.Translate.BaseURL), "/")
	if normalized := language.Normalize(c.Translate.TargetLanguage); normalized != "" {
		c.Translate.TargetLanguage = normalized
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
