package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"parlo/internal/config"
	"parlo/internal/translate"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckTelegramToken reports whether a bot token is configured. It does not
// call the Telegram API; serve verifies the token when it authorizes.
func CheckTelegramToken(cfg *config.Config) Result {
	const name = "Telegram token"
	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return Result{Name: name, Detail: "missing (set TELEGRAM_TOKEN or telegram.token)"}
	}
	return Result{Name: name, Passed: true, Detail: "configured"}
}

// CheckTranslation verifies the translation endpoint answers a minimal
// request. It uses a 10-second timeout and a single attempt.
func CheckTranslation(ctx context.Context, cfg *config.Config) Result {
	const name = "Translation endpoint"

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := translate.NewClient(cfg.Translate.TargetLanguage,
		translate.WithBaseURL(cfg.Translate.BaseURL),
		translate.WithTimeout(time.Duration(cfg.Translate.TimeoutSeconds)*time.Second),
	)
	if err := client.HealthCheck(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeTranslateError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "reachable"}
}

func summarizeTranslateError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "health check timed out (endpoint unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "health check timed out (endpoint unreachable)"
	}
	return err.Error()
}
