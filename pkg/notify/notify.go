// Package notify sends the e-mails the ledger asks for. Delivery itself
// belongs to the mailer service; this implementation only records the
// request in the log.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

type Notifier interface {
	PaymentConfirmed(ctx context.Context, intent domain.PaymentIntent)
	VerificationRequested(ctx context.Context, intent domain.PaymentIntent)
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) PaymentConfirmed(_ context.Context, intent domain.PaymentIntent) {
	n.logger.Info("email: payment confirmed",
		zap.Int("userID", intent.UserID),
		zap.Int("intentID", intent.ID),
		zap.String("pack", string(intent.Pack)),
		zap.String("rail", string(intent.Rail)),
	)
}

func (n *LogNotifier) VerificationRequested(_ context.Context, intent domain.PaymentIntent) {
	n.logger.Info("email: manual verification requested",
		zap.Int("userID", intent.UserID),
		zap.Int("intentID", intent.ID),
		zap.String("reference", intent.ExternalReference),
	)
}
