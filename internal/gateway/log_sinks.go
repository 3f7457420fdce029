package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logging implementations stand in until the real transports are wired in
// deployment. They record every dispatch so the flows stay observable.

func NewLogSinks(log *zap.Logger, emailFrom string) *Sinks {
	return &Sinks{
		Notification: &logNotificationSink{log: log.With(zap.String("sink", "notification"))},
		Push:         &logPushSink{log: log.With(zap.String("sink", "push"))},
		Email:        &logEmailSink{log: log.With(zap.String("sink", "email")), from: emailFrom},
		Invoice:      &logInvoiceGenerator{log: log.With(zap.String("sink", "invoice"))},
		Payment:      &stubPaymentGateway{log: log.With(zap.String("sink", "payment"))},
	}
}

type logNotificationSink struct {
	log *zap.Logger
}

func (s *logNotificationSink) Notify(ctx context.Context, n Notification) error {
	s.log.Info("Notification dispatched",
		zap.String("heading", n.Heading),
		zap.String("module", n.ModuleName),
		zap.String("to_panel", n.ToPanel),
		zap.String("to_id", n.ToID.String()),
	)
	return nil
}

type logPushSink struct {
	log *zap.Logger
}

func (s *logPushSink) Push(ctx context.Context, deviceToken, title, body, channel, deepLink string) error {
	s.log.Info("Push dispatched",
		zap.String("title", title),
		zap.String("channel", channel),
	)
	return nil
}

type logEmailSink struct {
	log  *zap.Logger
	from string
}

func (s *logEmailSink) EnqueueEmail(ctx context.Context, recipients []string, subject, htmlBody string, attachment *string) error {
	s.log.Info("Email enqueued",
		zap.String("from", s.from),
		zap.Strings("recipients", recipients),
		zap.String("subject", subject),
	)
	return nil
}

type logInvoiceGenerator struct {
	log *zap.Logger
}

func (s *logInvoiceGenerator) GenerateInvoice(ctx context.Context, bookingNo string) error {
	s.log.Info("Invoice generation requested", zap.String("booking_no", bookingNo))
	return nil
}

type stubPaymentGateway struct {
	log *zap.Logger
}

func (s *stubPaymentGateway) CreateSession(ctx context.Context, bookingNo string, amount int64) (string, error) {
	intentID := fmt.Sprintf("pi_%s", uuid.New().String())
	s.log.Info("Payment session created",
		zap.String("booking_no", bookingNo),
		zap.Int64("amount", amount),
		zap.String("payment_intent_id", intentID),
	)
	return intentID, nil
}
