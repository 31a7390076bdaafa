package interfaces

import (
	"context"
	"time"

	"alteapay/internal/domain/entities"
)

// AgreementChargeLinks is the external charge linkage written by
// update_agreement_db and by the repair pass.
type AgreementChargeLinks struct {
	PaymentID    string
	PaymentURL   string
	PixQRCodeURL string
	BoletoURL    string
}

// AgreementSyncUpdate is the row delta applied by one sync pass. Status is
// optional ("" leaves the lifecycle untouched).
type AgreementSyncUpdate struct {
	PaymentStatus     entities.PaymentStatus
	AsaasStatus       string
	BillingType       string
	NetValue          float64
	InvoiceURL        string
	PaymentDate       string
	Status            entities.AgreementStatus
	PaymentReceivedAt *time.Time
	LastSyncedAt      time.Time
}

// SyncSelection narrows which agreements a sync run looks at.
type SyncSelection struct {
	CompanyID   string
	AgreementID string
}

// IAgreementRepository abstracts DynamoDB persistence for Agreement.
//
// Row-level operations only: multi-step consistency is the workflow's problem
// (compensating deletes, repair pass), not the repository's.

type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	Delete(ctx context.Context, id string) error

	// AttachCharge writes the external charge linkage and promotes the
	// agreement to active.
	AttachCharge(ctx context.Context, id string, links AgreementChargeLinks) error

	// ListPendingSync selects agreements whose payment_status is in statuses
	// and whose charge reference is set, ordered by last_synced_at ascending
	// with never-synced rows first, capped at limit.
	ListPendingSync(ctx context.Context, sel SyncSelection, statuses []entities.PaymentStatus, limit int) ([]entities.Agreement, error)

	ApplySyncUpdate(ctx context.Context, id string, upd AgreementSyncUpdate) error
	TouchLastSyncedAt(ctx context.Context, id string, t time.Time) error

	// GetLatestByCustomer returns the most recent agreement for a customer, or
	// a zero-value agreement (empty ID) when none exists.
	GetLatestByCustomer(ctx context.Context, customerID, companyID string) (entities.Agreement, error)

	// ListDraftsMissingCharge selects drafts that hold an external customer
	// reference but no charge reference.
	ListDraftsMissingCharge(ctx context.Context, companyID string) ([]entities.Agreement, error)
}
