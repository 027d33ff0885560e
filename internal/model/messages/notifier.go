package messages

import (
	"context"

	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/notify"
)

// ChatNotifier delivers notifications as chat messages to the user found in
// the context. Notifications without a user are only logged.
type ChatNotifier struct {
	tgClient messageSender
}

func NewChatNotifier(tgClient messageSender) *ChatNotifier {
	return &ChatNotifier{tgClient: tgClient}
}

func (n *ChatNotifier) Notify(ctx context.Context, msg notify.Notification) {
	userID, ok := UserFrom(ctx)
	if !ok {
		logger.Info("notification without chat", zap.String("kind", string(msg.Kind)), zap.String("message", msg.Message))
		return
	}
	if err := n.tgClient.SendMessage(msg.Message, userID); err != nil {
		logger.Error("cannot send notification", zap.Int64("user", userID), zap.Error(err))
	}
}
