package interfaces

import "context"

// SMSParams carries everything the SMS template needs.
type SMSParams struct {
	To           string // E.164, +55 prefixed
	CustomerName string
	CompanyName  string
	Amount       float64
	PaymentLink  string
}

// EmailParams carries everything the collection email template needs.
type EmailParams struct {
	To           string
	CustomerName string
	CompanyName  string
	Amount       float64
	DueDate      string
	PaymentLink  string
}

// Notification senders are fire-and-forget collaborators: the bulk sender
// dispatches them after the per-record result is already determined, and their
// failures surface only in logs.

type ISMSSender interface {
	SendSMS(ctx context.Context, params SMSParams) error
}

type IEmailSender interface {
	SendEmail(ctx context.Context, params EmailParams) error
}
