package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

// NotifyEventCancelled tells a booker that the organiser cancelled the event.
// Delivery is best effort; failures are only logged.
func (n *TelegramNotifier) NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.Event, message string) {
	n.send(ctx, user.TelegramChatID, cancellationText(event, message))
}

// cancellationText escapes the free text parts, Telegram rejects the whole
// message when they break the Markdown entities.
func cancellationText(event *domain.Event, message string) string {
	text := fmt.Sprintf(
		"*Event cancelled*\n\n"+"Event: %s (#%d)\n"+"Start (UTC): %s\n\n"+"Message from the organiser:\n%s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		event.Number,
		event.StartDateTime.UTC().Format("02.01.2006 15:04"),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, message),
	)
	if !event.IsFree() {
		text += "\n\nYour tickets are being refunded."
	}
	return text
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
