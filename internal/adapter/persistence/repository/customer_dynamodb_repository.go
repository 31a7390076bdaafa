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
	defaultCustomersTableName = "customers"
	customersDocumentIndex    = "document-index"
)

type customerItem struct {
	ID           string `dynamodbav:"id"`
	CompanyID    string `dynamodbav:"company_id"`
	Name         string `dynamodbav:"name"`
	Document     string `dynamodbav:"document"`
	DocumentType string `dynamodbav:"document_type"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	SourceSystem string `dynamodbav:"source_system,omitempty"`
	ExternalID   string `dynamodbav:"external_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository stores customers keyed by id with a
// document-index GSI (PK: document) for the (document, company_id) lookup.
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByDocument(ctx context.Context, document, companyID string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersDocumentIndex),
		KeyConditionExpression: aws.String("#doc = :doc"),
		FilterExpression:       aws.String("company_id = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#doc": "document",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":doc": &types.AttributeValueMemberS{Value: document},
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, customer entities.Customer) (entities.Customer, error) {
	item, err := attributevalue.MarshalMap(toCustomerItem(customer))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return customer, nil
}

func (r *CustomerDynamoRepository) UpdateContact(ctx context.Context, id, name, phone, email string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #name = :name, #phone = :phone, #email = :email, #updated = :updated"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#name":    "name",
			"#phone":   "phone",
			"#email":   "email",
			"#updated": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":    &types.AttributeValueMemberS{Value: name},
			":phone":   &types.AttributeValueMemberS{Value: phone},
			":email":   &types.AttributeValueMemberS{Value: email},
			":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Document:     c.Document,
		DocumentType: string(c.DocumentType),
		Phone:        c.Phone,
		Email:        c.Email,
		SourceSystem: c.SourceSystem,
		ExternalID:   c.ExternalID,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		Name:         it.Name,
		Document:     it.Document,
		DocumentType: entities.DocumentType(it.DocumentType),
		Phone:        it.Phone,
		Email:        it.Email,
		SourceSystem: it.SourceSystem,
		ExternalID:   it.ExternalID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
