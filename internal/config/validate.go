package config

import (
	"errors"
	"fmt"

	"parlo/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTelegram(); err != nil {
		return err
	}
	if err := c.validateTranslate(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateTelegram() error {
	if c.Telegram.PollTimeout <= 0 {
		return errors.New("telegram.poll_timeout must be positive")
	}
	return nil
}

func (c *Config) validateTranslate() error {
	if language.Normalize(c.Translate.TargetLanguage) == "" {
		return fmt.Errorf("translate.target_language %q is not a recognized language code", c.Translate.TargetLanguage)
	}
	if c.Translate.BaseURL == "" {
		return errors.New("translate.base_url must be set")
	}
	if c.Translate.TimeoutSeconds <= 0 {
		return errors.New("translate.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
