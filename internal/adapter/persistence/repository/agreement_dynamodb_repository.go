package repository

import (
	"context"
	"sort"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAgreementsTableName = "agreements"
	agreementsCompanyIDIndex   = "company_id-index"
	agreementsCustomerIDIndex  = "customer_id-index"
)

type agreementTermsItem struct {
	PaymentMethods       []string `dynamodbav:"payment_methods"`
	NotificationChannels []string `dynamodbav:"notification_channels"`
	DiscountType         string   `dynamodbav:"discount_type"`
	DiscountValue        float64  `dynamodbav:"discount_value"`
}

type agreementItem struct {
	ID         string `dynamodbav:"id"`
	DebtID     string `dynamodbav:"debt_id"`
	CustomerID string `dynamodbav:"customer_id"`
	UserID     string `dynamodbav:"user_id,omitempty"`
	CompanyID  string `dynamodbav:"company_id"`

	OriginalAmount     float64 `dynamodbav:"original_amount"`
	AgreedAmount       float64 `dynamodbav:"agreed_amount"`
	DiscountAmount     float64 `dynamodbav:"discount_amount"`
	DiscountPercentage float64 `dynamodbav:"discount_percentage"`
	Installments       int     `dynamodbav:"installments"`
	InstallmentAmount  float64 `dynamodbav:"installment_amount"`
	DueDate            string  `dynamodbav:"due_date"`

	Status        string             `dynamodbav:"status"`
	PaymentStatus string             `dynamodbav:"payment_status"`
	AttendantName string             `dynamodbav:"attendant_name,omitempty"`
	Terms         agreementTermsItem `dynamodbav:"terms"`

	AsaasCustomerID   string  `dynamodbav:"asaas_customer_id,omitempty"`
	AsaasPaymentID    string  `dynamodbav:"asaas_payment_id,omitempty"`
	AsaasPaymentURL   string  `dynamodbav:"asaas_payment_url,omitempty"`
	AsaasPixQRCodeURL string  `dynamodbav:"asaas_pix_qrcode_url,omitempty"`
	AsaasBoletoURL    string  `dynamodbav:"asaas_boleto_url,omitempty"`
	AsaasStatus       string  `dynamodbav:"asaas_status,omitempty"`
	AsaasBillingType  string  `dynamodbav:"asaas_billing_type,omitempty"`
	AsaasNetValue     float64 `dynamodbav:"asaas_net_value,omitempty"`
	AsaasInvoiceURL   string  `dynamodbav:"asaas_invoice_url,omitempty"`
	AsaasPaymentDate  string  `dynamodbav:"asaas_payment_date,omitempty"`

	LastSyncedAt      string `dynamodbav:"last_synced_at,omitempty"`
	PaymentReceivedAt string `dynamodbav:"payment_received_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists agreements in DynamoDB.
//
// Table requirements:
//   - PK: id
//   - GSI: company_id-index (PK: company_id)
//   - GSI: customer_id-index (PK: customer_id)
//
// last_synced_at is absent for never-synced rows; ListPendingSync sorts those
// first in memory after the query since DynamoDB cannot order by a sparse
// attribute.
type AgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	item, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
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
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *AgreementDynamoRepository) AttachCharge(ctx context.Context, id string, links interfaces.AgreementChargeLinks) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String(
			"SET #status = :status, #pid = :pid, #purl = :purl, #pix = :pix, #boleto = :boleto, #updated = :updated"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#pid":     "asaas_payment_id",
			"#purl":    "asaas_payment_url",
			"#pix":     "asaas_pix_qrcode_url",
			"#boleto":  "asaas_boleto_url",
			"#updated": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.AgreementStatusActive)},
			":pid":     &types.AttributeValueMemberS{Value: links.PaymentID},
			":purl":    &types.AttributeValueMemberS{Value: links.PaymentURL},
			":pix":     &types.AttributeValueMemberS{Value: links.PixQRCodeURL},
			":boleto":  &types.AttributeValueMemberS{Value: links.BoletoURL},
			":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func (r *AgreementDynamoRepository) ListPendingSync(ctx context.Context, sel interfaces.SyncSelection, statuses []entities.PaymentStatus, limit int) ([]entities.Agreement, error) {
	allowed := make(map[entities.PaymentStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	if sel.AgreementID != "" {
		a, err := r.GetByID(ctx, sel.AgreementID)
		if err != nil {
			return nil, err
		}
		if !syncEligible(a, allowed) {
			return nil, nil
		}
		return []entities.Agreement{a}, nil
	}

	candidates, err := r.queryByCompanyOrScan(ctx, sel.CompanyID)
	if err != nil {
		return nil, err
	}

	pending := make([]entities.Agreement, 0, len(candidates))
	for _, a := range candidates {
		if !syncEligible(a, allowed) {
			continue
		}
		pending = append(pending, a)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		li, lj := pending[i].LastSyncedAt, pending[j].LastSyncedAt
		if li == nil {
			return lj != nil
		}
		if lj == nil {
			return false
		}
		return li.Before(*lj)
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// syncEligible gates both selection paths: even an explicitly targeted
// agreement is only synced while it carries a charge and a still-open
// payment status.
func syncEligible(a entities.Agreement, allowed map[entities.PaymentStatus]bool) bool {
	return a.ID != "" && a.AsaasPaymentID != "" && allowed[a.PaymentStatus]
}

func (r *AgreementDynamoRepository) ApplySyncUpdate(ctx context.Context, id string, upd interfaces.AgreementSyncUpdate) error {
	expr := "SET #ps = :ps, #raw = :raw, #bt = :bt, #nv = :nv, #inv = :inv, #pd = :pd, #synced = :synced, #updated = :updated"
	names := map[string]string{
		"#id":      "id",
		"#ps":      "payment_status",
		"#raw":     "asaas_status",
		"#bt":      "asaas_billing_type",
		"#nv":      "asaas_net_value",
		"#inv":     "asaas_invoice_url",
		"#pd":      "asaas_payment_date",
		"#synced":  "last_synced_at",
		"#updated": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":ps":      &types.AttributeValueMemberS{Value: string(upd.PaymentStatus)},
		":raw":     &types.AttributeValueMemberS{Value: upd.AsaasStatus},
		":bt":      &types.AttributeValueMemberS{Value: upd.BillingType},
		":nv":      &types.AttributeValueMemberN{Value: formatFloat(upd.NetValue)},
		":inv":     &types.AttributeValueMemberS{Value: upd.InvoiceURL},
		":pd":      &types.AttributeValueMemberS{Value: upd.PaymentDate},
		":synced":  &types.AttributeValueMemberS{Value: upd.LastSyncedAt.UTC().Format(time.RFC3339Nano)},
		":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	if upd.Status != "" {
		expr += ", #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(upd.Status)}
	}
	if upd.PaymentReceivedAt != nil {
		expr += ", #received = :received"
		names["#received"] = "payment_received_at"
		values[":received"] = &types.AttributeValueMemberS{Value: upd.PaymentReceivedAt.UTC().Format(time.RFC3339Nano)}
	}

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

func (r *AgreementDynamoRepository) TouchLastSyncedAt(ctx context.Context, id string, t time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #synced = :synced"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#synced": "last_synced_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":synced": &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func (r *AgreementDynamoRepository) GetLatestByCustomer(ctx context.Context, customerID, companyID string) (entities.Agreement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(agreementsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		FilterExpression:       aws.String("company_id = :company"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":     &types.AttributeValueMemberS{Value: customerID},
			":company": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return entities.Agreement{}, err
	}

	var latest entities.Agreement
	for _, raw := range out.Items {
		var it agreementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Agreement{}, err
		}
		a := fromAgreementItem(it)
		if latest.ID == "" || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (r *AgreementDynamoRepository) ListDraftsMissingCharge(ctx context.Context, companyID string) ([]entities.Agreement, error) {
	candidates, err := r.queryByCompanyOrScan(ctx, companyID)
	if err != nil {
		return nil, err
	}

	drafts := make([]entities.Agreement, 0)
	for _, a := range candidates {
		if a.Status == entities.AgreementStatusDraft && a.AsaasCustomerID != "" && a.AsaasPaymentID == "" {
			drafts = append(drafts, a)
		}
	}
	return drafts, nil
}

// queryByCompanyOrScan queries the company GSI when a company is given and
// falls back to a full scan otherwise (the cross-company sync path).
func (r *AgreementDynamoRepository) queryByCompanyOrScan(ctx context.Context, companyID string) ([]entities.Agreement, error) {
	agreements := make([]entities.Agreement, 0)

	var startKey map[string]types.AttributeValue
	for {
		var (
			items   []map[string]types.AttributeValue
			lastKey map[string]types.AttributeValue
		)

		if companyID != "" {
			out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(r.tableName),
				IndexName:              aws.String(agreementsCompanyIDIndex),
				KeyConditionExpression: aws.String("company_id = :cid"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cid": &types.AttributeValueMemberS{Value: companyID},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			items, lastKey = out.Items, out.LastEvaluatedKey
		} else {
			out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:         aws.String(r.tableName),
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			items, lastKey = out.Items, out.LastEvaluatedKey
		}

		for _, raw := range items {
			var it agreementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			agreements = append(agreements, fromAgreementItem(it))
		}

		if len(lastKey) == 0 {
			break
		}
		startKey = lastKey
	}

	return agreements, nil
}

func toAgreementItem(a entities.Agreement) agreementItem {
	it := agreementItem{
		ID:         a.ID,
		DebtID:     a.DebtID,
		CustomerID: a.CustomerID,
		UserID:     a.UserID,
		CompanyID:  a.CompanyID,

		OriginalAmount:     a.OriginalAmount,
		AgreedAmount:       a.AgreedAmount,
		DiscountAmount:     a.DiscountAmount,
		DiscountPercentage: a.DiscountPercentage,
		Installments:       a.Installments,
		InstallmentAmount:  a.InstallmentAmount,
		DueDate:            a.DueDate,

		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		AttendantName: a.AttendantName,
		Terms: agreementTermsItem{
			PaymentMethods:       a.Terms.PaymentMethods,
			NotificationChannels: a.Terms.NotificationChannels,
			DiscountType:         a.Terms.DiscountType,
			DiscountValue:        a.Terms.DiscountValue,
		},

		AsaasCustomerID:   a.AsaasCustomerID,
		AsaasPaymentID:    a.AsaasPaymentID,
		AsaasPaymentURL:   a.AsaasPaymentURL,
		AsaasPixQRCodeURL: a.AsaasPixQRCodeURL,
		AsaasBoletoURL:    a.AsaasBoletoURL,
		AsaasStatus:       a.AsaasStatus,
		AsaasBillingType:  a.AsaasBillingType,
		AsaasNetValue:     a.AsaasNetValue,
		AsaasInvoiceURL:   a.AsaasInvoiceURL,
		AsaasPaymentDate:  a.AsaasPaymentDate,

		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.LastSyncedAt != nil {
		it.LastSyncedAt = a.LastSyncedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.PaymentReceivedAt != nil {
		it.PaymentReceivedAt = a.PaymentReceivedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	a := entities.Agreement{
		ID:         it.ID,
		DebtID:     it.DebtID,
		CustomerID: it.CustomerID,
		UserID:     it.UserID,
		CompanyID:  it.CompanyID,

		OriginalAmount:     it.OriginalAmount,
		AgreedAmount:       it.AgreedAmount,
		DiscountAmount:     it.DiscountAmount,
		DiscountPercentage: it.DiscountPercentage,
		Installments:       it.Installments,
		InstallmentAmount:  it.InstallmentAmount,
		DueDate:            it.DueDate,

		Status:        entities.AgreementStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		AttendantName: it.AttendantName,
		Terms: entities.AgreementTerms{
			PaymentMethods:       it.Terms.PaymentMethods,
			NotificationChannels: it.Terms.NotificationChannels,
			DiscountType:         it.Terms.DiscountType,
			DiscountValue:        it.Terms.DiscountValue,
		},

		AsaasCustomerID:   it.AsaasCustomerID,
		AsaasPaymentID:    it.AsaasPaymentID,
		AsaasPaymentURL:   it.AsaasPaymentURL,
		AsaasPixQRCodeURL: it.AsaasPixQRCodeURL,
		AsaasBoletoURL:    it.AsaasBoletoURL,
		AsaasStatus:       it.AsaasStatus,
		AsaasBillingType:  it.AsaasBillingType,
		AsaasNetValue:     it.AsaasNetValue,
		AsaasInvoiceURL:   it.AsaasInvoiceURL,
		AsaasPaymentDate:  it.AsaasPaymentDate,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.LastSyncedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LastSyncedAt); err == nil {
			a.LastSyncedAt = &t
		}
	}
	if it.PaymentReceivedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaymentReceivedAt); err == nil {
			a.PaymentReceivedAt = &t
		}
	}
	return a
}
