package repository

import (
	"context"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCollectionActionsTableName = "collection_actions"
	defaultNotificationsTableName     = "notifications"
	defaultCompaniesTableName         = "companies"
)

type collectionActionMetadataItem struct {
	PaymentMethods       []string `dynamodbav:"payment_methods"`
	NotificationChannels []string `dynamodbav:"notification_channels"`
	DiscountType         string   `dynamodbav:"discount_type"`
	DiscountValue        float64  `dynamodbav:"discount_value"`
	OriginalAmount       float64  `dynamodbav:"original_amount"`
	AgreedAmount         float64  `dynamodbav:"agreed_amount"`
}

type collectionActionItem struct {
	ID         string                       `dynamodbav:"id"`
	CompanyID  string                       `dynamodbav:"company_id"`
	CustomerID string                       `dynamodbav:"customer_id"`
	DebtID     string                       `dynamodbav:"debt_id"`
	ActionType string                       `dynamodbav:"action_type"`
	Status     string                       `dynamodbav:"status"`
	SentBy     string                       `dynamodbav:"sent_by,omitempty"`
	SentAt     string                       `dynamodbav:"sent_at"`
	Message    string                       `dynamodbav:"message"`
	Metadata   collectionActionMetadataItem `dynamodbav:"metadata"`
}

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	CompanyID   string `dynamodbav:"company_id"`
	Type        string `dynamodbav:"type"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type companyItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// CollectionActionDynamoRepository is append-only: actions are an audit trail
// and are never updated after the fact.
type CollectionActionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollectionActionRepository = (*CollectionActionDynamoRepository)(nil)

func NewCollectionActionDynamoRepository(ddb *dynamodb.Client) *CollectionActionDynamoRepository {
	return &CollectionActionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTION_ACTIONS_TABLE", defaultCollectionActionsTableName),
	}
}

func (r *CollectionActionDynamoRepository) Create(ctx context.Context, a entities.CollectionAction) (entities.CollectionAction, error) {
	item, err := attributevalue.MarshalMap(collectionActionItem{
		ID:         a.ID,
		CompanyID:  a.CompanyID,
		CustomerID: a.CustomerID,
		DebtID:     a.DebtID,
		ActionType: a.ActionType,
		Status:     a.Status,
		SentBy:     a.SentBy,
		SentAt:     a.SentAt.UTC().Format(time.RFC3339Nano),
		Message:    a.Message,
		Metadata: collectionActionMetadataItem{
			PaymentMethods:       a.Metadata.PaymentMethods,
			NotificationChannels: a.Metadata.NotificationChannels,
			DiscountType:         a.Metadata.DiscountType,
			DiscountValue:        a.Metadata.DiscountValue,
			OriginalAmount:       a.Metadata.OriginalAmount,
			AgreedAmount:         a.Metadata.AgreedAmount,
		},
	})
	if err != nil {
		return entities.CollectionAction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CollectionAction{}, err
	}
	return a, nil
}

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	item, err := attributevalue.MarshalMap(notificationItem{
		ID:          n.ID,
		UserID:      n.UserID,
		CompanyID:   n.CompanyID,
		Type:        n.Type,
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) GetName(ctx context.Context, id string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Name, nil
}
