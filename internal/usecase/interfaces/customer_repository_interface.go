package interfaces

import (
	"context"

	"alteapay/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// (document, company_id) is the business key: GetByDocument returns a
// zero-value customer (empty ID) when no row matches.

type ICustomerRepository interface {
	GetByDocument(ctx context.Context, document, companyID string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateContact(ctx context.Context, id, name, phone, email string) error
}
