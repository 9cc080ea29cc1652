package notifier

import (
	"context"

	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/logger"
	apperrors "sjsage522/zenlesscollector/pkg/errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier posts new codes to a Telegram chat
type TelegramNotifier struct {
	sender   messageSender
	chatID   int64
	currency string
	log      *logger.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat
func NewTelegramNotifier(token string, chatID int64, currency string) (*TelegramNotifier, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, apperrors.NewNotifier("telegram", "create bot", err)
	}
	return newTelegramNotifier(b, chatID, currency), nil
}

func newTelegramNotifier(sender messageSender, chatID int64, currency string) *TelegramNotifier {
	return &TelegramNotifier{
		sender:   sender,
		chatID:   chatID,
		currency: currency,
		log:      logger.ForNotifier(),
	}
}

// Notify sends one message listing the codes. No codes means no message.
func (n *TelegramNotifier) Notify(ctx context.Context, codes []collector.RedemptionCode) error {
	if len(codes) == 0 {
		return nil
	}

	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   FormatMessage(codes, n.currency),
	})
	if err != nil {
		return apperrors.NewNotifier("telegram", "send message", err)
	}

	n.log.Info().Int64("chat_id", n.chatID).Int("codes", len(codes)).Msg("Sent new code notification")
	return nil
}
