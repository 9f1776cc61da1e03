package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"parlo/internal/bot"
	"parlo/internal/catalog"
	"parlo/internal/history"
	"parlo/internal/logging"
	"parlo/internal/preflight"
	"parlo/internal/translate"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireTelegramToken(); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = logger.With("session_id", uuid.NewString())

			lockPath := filepath.Join(cfg.Paths.LogDir, "parlo.lock")
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return errors.New("another parlo instance is already running")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("failed to release lock", "path", lockPath, "error", err)
				}
			}()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			for _, result := range preflight.RunAll(runCtx, cfg) {
				if !result.Passed {
					logger.Warn("preflight check failed", "check", result.Name, "detail", result.Detail)
				}
			}

			library := catalog.NewLibrary(cfg.Paths.DataDir, logger)
			if dir, err := library.Rebuild(runCtx); err != nil {
				logger.Warn("initial scan failed", "error", err)
			} else {
				logger.Info("initial scan complete", "materials", dir.Len())
			}

			translator := translate.NewClient(cfg.Translate.TargetLanguage,
				translate.WithBaseURL(cfg.Translate.BaseURL),
				translate.WithTimeout(time.Duration(cfg.Translate.TimeoutSeconds)*time.Second),
			)

			var recorder bot.Recorder
			if cfg.History.Enabled {
				store, err := history.Open(cfg.HistoryPath())
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer store.Close()
				recorder = store
			}

			api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
			if err != nil {
				return fmt.Errorf("authorize bot: %w", err)
			}
			messenger := bot.NewTelegramMessenger(api)
			service := bot.NewService(library, messenger, translator, recorder, logger)

			err = bot.Run(runCtx, api, service, cfg.Telegram.PollTimeout, logger)
			if errors.Is(err, context.Canceled) {
				logger.Info("shutting down")
				return nil
			}
			return err
		},
	}
}
