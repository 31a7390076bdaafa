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
	defaultDebtsTableName = "debts"
	debtsCustomerIDIndex  = "customer_id-index"
)

type debtItem struct {
	ID           string  `dynamodbav:"id"`
	CustomerID   string  `dynamodbav:"customer_id"`
	CompanyID    string  `dynamodbav:"company_id"`
	Amount       float64 `dynamodbav:"amount"`
	DueDate      string  `dynamodbav:"due_date"`
	Description  string  `dynamodbav:"description,omitempty"`
	Status       string  `dynamodbav:"status"`
	SourceSystem string  `dynamodbav:"source_system,omitempty"`
	ExternalID   string  `dynamodbav:"external_id,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

type DebtDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDebtRepository = (*DebtDynamoRepository)(nil)

func NewDebtDynamoRepository(ddb *dynamodb.Client) *DebtDynamoRepository {
	return &DebtDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBTS_TABLE", defaultDebtsTableName),
	}
}

func (r *DebtDynamoRepository) GetByID(ctx context.Context, id string) (entities.Debt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Debt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Debt{}, nil
	}

	var it debtItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Debt{}, err
	}
	return fromDebtItem(it), nil
}

func (r *DebtDynamoRepository) GetLatestByCustomer(ctx context.Context, customerID, companyID string) (entities.Debt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(debtsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		FilterExpression:       aws.String("company_id = :company"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":     &types.AttributeValueMemberS{Value: customerID},
			":company": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return entities.Debt{}, err
	}

	var latest entities.Debt
	for _, raw := range out.Items {
		var it debtItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Debt{}, err
		}
		d := fromDebtItem(it)
		if latest.ID == "" || d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	return latest, nil
}

func (r *DebtDynamoRepository) Create(ctx context.Context, d entities.Debt) (entities.Debt, error) {
	item, err := attributevalue.MarshalMap(toDebtItem(d))
	if err != nil {
		return entities.Debt{}, err
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
		return entities.Debt{}, err
	}
	return d, nil
}

func (r *DebtDynamoRepository) UpdateForNegotiation(ctx context.Context, id string, amount float64) error {
	return r.update(ctx, id,
		"SET #amount = :amount, #status = :status, #updated = :updated",
		map[string]string{"#id": "id", "#amount": "amount", "#status": "status", "#updated": "updated_at"},
		map[string]types.AttributeValue{
			":amount":  &types.AttributeValueMemberN{Value: formatFloat(amount)},
			":status":  &types.AttributeValueMemberS{Value: string(entities.DebtStatusInNegotiation)},
			":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		})
}

func (r *DebtDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DebtStatus) error {
	return r.update(ctx, id,
		"SET #status = :status, #updated = :updated",
		map[string]string{"#id": "id", "#status": "status", "#updated": "updated_at"},
		map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		})
}

func (r *DebtDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func toDebtItem(d entities.Debt) debtItem {
	return debtItem{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		CompanyID:    d.CompanyID,
		Amount:       d.Amount,
		DueDate:      d.DueDate,
		Description:  d.Description,
		Status:       string(d.Status),
		SourceSystem: d.SourceSystem,
		ExternalID:   d.ExternalID,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDebtItem(it debtItem) entities.Debt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Debt{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		CompanyID:    it.CompanyID,
		Amount:       it.Amount,
		DueDate:      it.DueDate,
		Description:  it.Description,
		Status:       entities.DebtStatus(it.Status),
		SourceSystem: it.SourceSystem,
		ExternalID:   it.ExternalID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
