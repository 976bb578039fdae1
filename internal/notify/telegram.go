package notify

import (
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends a one-line build summary to a Telegram chat after
// a run. Entirely optional; construction and send failures are reported and
// swallowed so they never fail a build.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier, or nil when the token is unset or
// the bot cannot be reached. A nil notifier is safe to use.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	if token == "" || chatID == 0 {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get bot info", "error", err)
		return nil
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// BuildFinished reports a completed run.
func (n *TelegramNotifier) BuildFinished(domain string, matches, pages int, took time.Duration) {
	if n == nil {
		return
	}

	text := fmt.Sprintf("✅ %s rebuilt: %d matches, %d pages in %s",
		domain, matches, pages, took.Round(time.Second))
	msg := tgbotapi.NewMessage(n.chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		slog.Warn("Failed to send telegram notification", "error", err)
	}
}
