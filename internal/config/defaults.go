package config

const (
	defaultDataDir                 = "~/.local/share/parlo/data"
	defaultLogDir                  = "~/.local/share/parlo/logs"
	defaultPollTimeout             = 30
	defaultTargetLanguage          = "es"
	defaultTranslateBaseURL        = "https://translate.googleapis.com"
	defaultTranslateTimeoutSeconds = 10
	defaultLogFormat               = "console"
	defaultLogLevel                = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Telegram: Telegram{
			PollTimeout: defaultPollTimeout,
		},
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Translate: Translate{
			TargetLanguage: defaultTargetLanguage,
			BaseURL:        defaultTranslateBaseURL,
			TimeoutSeconds: defaultTranslateTimeoutSeconds,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
