package interfaces

import (
	"context"

	"alteapay/internal/domain/entities"
)

// ISourceRecordRepository abstracts DynamoDB persistence for imported VMAX rows.
//
// GetByID returns a zero-value record (empty ID) when the row does not exist.

type ISourceRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.SourceRecord, error)
	UpdateNegotiationStatus(ctx context.Context, id string, marker *entities.NegotiationMarker) error
	ListUnmarkedByCompany(ctx context.Context, companyID string) ([]entities.SourceRecord, error)
}
