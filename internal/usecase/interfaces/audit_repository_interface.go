package interfaces

import (
	"context"

	"alteapay/internal/domain/entities"
)

// ICollectionActionRepository persists the per-channel audit trail of sent
// negotiations.

type ICollectionActionRepository interface {
	Create(ctx context.Context, a entities.CollectionAction) (entities.CollectionAction, error)
}

// INotificationRepository persists in-app notifications (payment confirmed).

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
}

// ICompanyRepository exposes the single company attribute the workflow embeds
// in outgoing messages.

type ICompanyRepository interface {
	GetName(ctx context.Context, id string) (string, error)
}
