// Package notifier delivers one-time codes and claim codes to participants.
// Delivery is fire-and-forget from the core's point of view: codes are
// persisted before any send is attempted, and failures are logged, not
// retried.
package notifier

import (
	"context"

	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, identity, message string) error
}

// LogNotifier writes messages to the application log. It stands in for a
// real mail or SMS gateway in development and tests.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(_ context.Context, identity, message string) error {
	zap.L().Info("notification dispatched",
		zap.String("identity", identity),
		zap.String("message", message),
	)

	return nil
}
