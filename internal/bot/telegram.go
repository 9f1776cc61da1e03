package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// TelegramMessenger adapts the Telegram Bot API to the Messenger interface.
type TelegramMessenger struct {
	api *tgbotapi.BotAPI
}

// NewTelegramMessenger wraps an authorized bot client.
func NewTelegramMessenger(api *tgbotapi.BotAPI) *TelegramMessenger {
	return &TelegramMessenger{api: api}
}

// SendText delivers a plain text message.
func (m *TelegramMessenger) SendText(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := m.api.Send(msg)
	return err
}

// SendAudio uploads a local audio file with a caption.
func (m *TelegramMessenger) SendAudio(_ context.Context, chatID int64, path, caption string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))
	audio.Caption = caption
	_, err := m.api.Send(audio)
	return err
}

// Run consumes the update stream and hands each command to the service,
// one at a time, until the context is canceled. Non-command messages are
// ignored.
func Run(ctx context.Context, api *tgbotapi.BotAPI, service *Service, pollTimeout int, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "bot")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeout
	updates := api.GetUpdatesChan(updateConfig)
	logger.Info("listening for commands", "bot", api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			message := update.Message
			if message == nil || !message.IsCommand() {
				continue
			}
			requestID := uuid.NewString()
			requestLogger := logger.With("request_id", requestID)
			requestLogger.Info("command received",
				"chat_id", message.Chat.ID,
				"command", message.Command(),
			)
			if err := service.HandleCommand(ctx, message.Chat.ID, message.Command(), message.CommandArguments()); err != nil {
				requestLogger.Warn("command failed", "command", message.Command(), "error", err)
			}
		}
	}
}
