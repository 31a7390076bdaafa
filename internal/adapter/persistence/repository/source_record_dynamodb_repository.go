package repository

import (
	"context"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSourceRecordsTableName = "vmax_records"
	sourceRecordsCompanyIDIndex   = "company_id-index"
)

type sourceRecordItem struct {
	ID                string `dynamodbav:"id"`
	CompanyID         string `dynamodbav:"company_id"`
	CustomerName      string `dynamodbav:"customer_name"`
	Document          string `dynamodbav:"document"`
	Phone             string `dynamodbav:"phone,omitempty"`
	SecondaryPhone    string `dynamodbav:"secondary_phone,omitempty"`
	Email             string `dynamodbav:"email,omitempty"`
	OverdueAmount     string `dynamodbav:"overdue_amount"`
	NegotiationStatus string `dynamodbav:"negotiation_status,omitempty"`
}

// SourceRecordDynamoRepository persists imported VMAX rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//
// negotiation_status is absent (not empty-string) for unmarked rows, which is
// what ListUnmarkedByCompany filters on.

type SourceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISourceRecordRepository = (*SourceRecordDynamoRepository)(nil)

func NewSourceRecordDynamoRepository(ddb *dynamodb.Client) *SourceRecordDynamoRepository {
	return &SourceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VMAX_TABLE", defaultSourceRecordsTableName),
	}
}

func (r *SourceRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.SourceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SourceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.SourceRecord{}, nil
	}

	var it sourceRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SourceRecord{}, err
	}
	return fromSourceRecordItem(it), nil
}

func (r *SourceRecordDynamoRepository) UpdateNegotiationStatus(ctx context.Context, id string, marker *entities.NegotiationMarker) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#ns": "negotiation_status",
		},
	}

	if marker == nil {
		input.UpdateExpression = aws.String("REMOVE #ns")
	} else {
		input.UpdateExpression = aws.String("SET #ns = :ns")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":ns": &types.AttributeValueMemberS{Value: string(*marker)},
		}
	}

	_, err := r.ddb.UpdateItem(ctx, input)
	return err
}

func (r *SourceRecordDynamoRepository) ListUnmarkedByCompany(ctx context.Context, companyID string) ([]entities.SourceRecord, error) {
	records := make([]entities.SourceRecord, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(sourceRecordsCompanyIDIndex),
			KeyConditionExpression: aws.String("company_id = :cid"),
			FilterExpression:       aws.String("attribute_not_exists(#ns)"),
			ExpressionAttributeNames: map[string]string{
				"#ns": "negotiation_status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: companyID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it sourceRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromSourceRecordItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return records, nil
}

func fromSourceRecordItem(it sourceRecordItem) entities.SourceRecord {
	rec := entities.SourceRecord{
		ID:             it.ID,
		CompanyID:      it.CompanyID,
		CustomerName:   it.CustomerName,
		Document:       it.Document,
		Phone:          it.Phone,
		SecondaryPhone: it.SecondaryPhone,
		Email:          it.Email,
		OverdueAmount:  it.OverdueAmount,
	}
	if it.NegotiationStatus != "" {
		marker := entities.NegotiationMarker(it.NegotiationStatus)
		rec.NegotiationStatus = &marker
	}
	return rec
}
