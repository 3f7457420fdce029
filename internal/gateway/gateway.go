package gateway

import (
	"context"

	"github.com/google/uuid"
)

// The collaborators behind these interfaces (notification service, FCM,
// mailer, invoice pipeline, payment provider) live outside this codebase.
// Usecases call them only after the booking transaction has committed, and
// their failures never fail the request.

type Notification struct {
	Heading    string
	Body       string
	ModuleName string
	ToPanel    string
	FromPanel  string
	ToID       uuid.UUID
	DeepLink   string
}

type NotificationSink interface {
	Notify(ctx context.Context, n Notification) error
}

type PushSink interface {
	Push(ctx context.Context, deviceToken, title, body, channel, deepLink string) error
}

type EmailSink interface {
	EnqueueEmail(ctx context.Context, recipients []string, subject, htmlBody string, attachment *string) error
}

type InvoiceGenerator interface {
	GenerateInvoice(ctx context.Context, bookingNo string) error
}

// PaymentGateway creates a payment session whose id is stored verbatim on the
// booking. Payment success arrives later via webhook, not here.
type PaymentGateway interface {
	CreateSession(ctx context.Context, bookingNo string, amount int64) (string, error)
}

// Sinks groups the external collaborators for injection into usecases.
type Sinks struct {
	Notification NotificationSink
	Push         PushSink
	Email        EmailSink
	Invoice      InvoiceGenerator
	Payment      PaymentGateway
}
