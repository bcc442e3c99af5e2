// Package notify pushes run summaries to an operator channel.
package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nba-postgame-bot/internal/domain"
	"nba-postgame-bot/internal/logging"
)

// messageSender abstracts the Telegram client for testing.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends a one-line run summary to a Telegram chat. A nil
// notifier is valid and does nothing.
type TelegramNotifier struct {
	sender messageSender
	chatID int64
	logger *slog.Logger
}

// NewTelegram builds a notifier from a bot token and chat id. An empty token
// disables notifications and returns (nil, nil).
func NewTelegram(token string, chatID int64, logger *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &TelegramNotifier{sender: bot, chatID: chatID, logger: logger}, nil
}

// NotifyRunReport sends a summary of the run. Delivery failures are logged,
// never propagated; a summary message is not worth failing a run over.
func (n *TelegramNotifier) NotifyRunReport(report domain.RunReport) {
	if n == nil || n.sender == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, formatReport(report))
	if _, err := n.sender.Send(msg); err != nil {
		logging.Warn(n.logger, "telegram notify failed", "error", err)
	}
}

func formatReport(report domain.RunReport) string {
	if report.Games == 0 {
		return fmt.Sprintf("Run %s (%s): no games today.", report.RunID, report.DateKey)
	}
	return fmt.Sprintf(
		"Run %s (%s): %d games, %d posted, %d skipped, %d failed.",
		report.RunID, report.DateKey, report.Games, report.Succeeded, report.Skipped, report.Failed,
	)
}
