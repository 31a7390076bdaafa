package interfaces

import (
	"context"

	"alteapay/internal/domain/entities"
)

// IDebtRepository abstracts DynamoDB persistence for Debt.
//
// GetLatestByCustomer returns the most recent debt by creation time, or a
// zero-value debt (empty ID) when the customer has none.

type IDebtRepository interface {
	GetByID(ctx context.Context, id string) (entities.Debt, error)
	GetLatestByCustomer(ctx context.Context, customerID, companyID string) (entities.Debt, error)
	Create(ctx context.Context, d entities.Debt) (entities.Debt, error)
	// UpdateForNegotiation refreshes the amount and moves the debt to
	// in_negotiation in a single write.
	UpdateForNegotiation(ctx context.Context, id string, amount float64) error
	UpdateStatus(ctx context.Context, id string, status entities.DebtStatus) error
}
