package entities

import "time"

// CollectionAction is the audit row recorded per notification channel when a
// negotiation goes out.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type CollectionAction struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	CustomerID string    `json:"customer_id"`
	DebtID     string    `json:"debt_id"`
	ActionType string    `json:"action_type"` // notification channel
	Status     string    `json:"status"`
	SentBy     string    `json:"sent_by,omitempty"`
	SentAt     time.Time `json:"sent_at"`
	Message    string    `json:"message"`

	Metadata CollectionActionMetadata `json:"metadata"`
}

type CollectionActionMetadata struct {
	PaymentMethods       []string `json:"payment_methods"`
	NotificationChannels []string `json:"notification_channels"`
	DiscountType         string   `json:"discount_type"`
	DiscountValue        float64  `json:"discount_value"`
	OriginalAmount       float64  `json:"original_amount"`
	AgreedAmount         float64  `json:"agreed_amount"`
}

// Notification is an in-app notification row, written when a payment lands.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyID   string    `json:"company_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
