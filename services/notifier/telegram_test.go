package notifier

import (
	"context"
	"errors"
	"testing"

	"sjsage522/zenlesscollector/internal/collector"
	apperrors "sjsage522/zenlesscollector/pkg/errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*bot.SendMessageParams
	err  error
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &models.Message{}, nil
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage([]collector.RedemptionCode{
		{Code: "ABCDEF123", Reward: 500},
		{Code: "GHIJKL456", Reward: 60},
	}, "")

	assert.Equal(t, "🎉 New Codes Detected!\n\nABCDEF123 - 500 Polychrome\nGHIJKL456 - 60 Polychrome", msg)
}

func TestTelegramNotifierNotify(t *testing.T) {
	sender := &fakeSender{}
	n := newTelegramNotifier(sender, -1001, "Polychrome")

	err := n.Notify(context.Background(), []collector.RedemptionCode{{Code: "ABCDEF123", Reward: 500}})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(-1001), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "ABCDEF123 - 500 Polychrome")
}

func TestTelegramNotifierNothingNew(t *testing.T) {
	sender := &fakeSender{}
	n := newTelegramNotifier(sender, 1, "Polychrome")

	assert.NoError(t, n.Notify(context.Background(), nil))
	assert.Empty(t, sender.sent)
}

func TestTelegramNotifierSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("forbidden: bot was blocked by the user")}
	n := newTelegramNotifier(sender, 1, "Polychrome")

	err := n.Notify(context.Background(), []collector.RedemptionCode{{Code: "ABCDEF123", Reward: 500}})
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotifier))
}
