package entities

import "time"

// AgreementStatus is the local lifecycle: draft -> active -> completed,
// or -> cancelled at any point after draft.

type AgreementStatus string

const (
	AgreementStatusDraft     AgreementStatus = "draft"
	AgreementStatusActive    AgreementStatus = "active"
	AgreementStatusCompleted AgreementStatus = "completed"
	AgreementStatusCancelled AgreementStatus = "cancelled"
)

// PaymentStatus mirrors the ASAAS charge status after mapping.

type PaymentStatus string

const (
	PaymentStatusPending             PaymentStatus = "pending"
	PaymentStatusConfirmed           PaymentStatus = "confirmed"
	PaymentStatusReceived            PaymentStatus = "received"
	PaymentStatusOverdue             PaymentStatus = "overdue"
	PaymentStatusRefunded            PaymentStatus = "refunded"
	PaymentStatusRefundRequested     PaymentStatus = "refund_requested"
	PaymentStatusChargebackRequested PaymentStatus = "chargeback_requested"
	PaymentStatusChargebackDispute   PaymentStatus = "chargeback_dispute"
	PaymentStatusCancelled           PaymentStatus = "cancelled"
)

// AgreementTerms is the fully-enumerated negotiation configuration persisted
// with the agreement for audit.
type AgreementTerms struct {
	PaymentMethods       []string `json:"payment_methods"`
	NotificationChannels []string `json:"notification_channels"`
	DiscountType         string   `json:"discount_type"`
	DiscountValue        float64  `json:"discount_value"`
}

// Agreement is the negotiated payment plan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//   - GSI2 (customer_id-index): customer_id
//
// Status "active" implies a non-empty AsaasPaymentID. A draft with an
// AsaasCustomerID but no AsaasPaymentID is a charge-creation casualty the
// synchronizer's repair pass closes.
type Agreement struct {
	ID         string `json:"id"`
	DebtID     string `json:"debt_id"`
	CustomerID string `json:"customer_id"`
	UserID     string `json:"user_id,omitempty"`
	CompanyID  string `json:"company_id"`

	OriginalAmount     float64 `json:"original_amount"`
	AgreedAmount       float64 `json:"agreed_amount"`
	DiscountAmount     float64 `json:"discount_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Installments       int     `json:"installments"`
	InstallmentAmount  float64 `json:"installment_amount"`
	DueDate            string  `json:"due_date"` // YYYY-MM-DD

	Status        AgreementStatus `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	AttendantName string          `json:"attendant_name,omitempty"`
	Terms         AgreementTerms  `json:"terms"`

	AsaasCustomerID   string  `json:"asaas_customer_id,omitempty"`
	AsaasPaymentID    string  `json:"asaas_payment_id,omitempty"`
	AsaasPaymentURL   string  `json:"asaas_payment_url,omitempty"`
	AsaasPixQRCodeURL string  `json:"asaas_pix_qrcode_url,omitempty"`
	AsaasBoletoURL    string  `json:"asaas_boleto_url,omitempty"`
	AsaasStatus       string  `json:"asaas_status,omitempty"` // raw provider status
	AsaasBillingType  string  `json:"asaas_billing_type,omitempty"`
	AsaasNetValue     float64 `json:"asaas_net_value,omitempty"`
	AsaasInvoiceURL   string  `json:"asaas_invoice_url,omitempty"`
	AsaasPaymentDate  string  `json:"asaas_payment_date,omitempty"`

	LastSyncedAt      *time.Time `json:"asaas_last_synced_at,omitempty"`
	PaymentReceivedAt *time.Time `json:"payment_received_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
