package entities

import "time"

type DebtStatus string

const (
	DebtStatusPending       DebtStatus = "pending"
	DebtStatusInNegotiation DebtStatus = "in_negotiation"
	DebtStatusPaid          DebtStatus = "paid"
)

// Debt is one open balance owed by a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Multiple rows may exist per customer; the most recent by CreatedAt is treated
// as the active one for reconciliation.
type Debt struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	CompanyID    string     `json:"company_id"`
	Amount       float64    `json:"amount"`
	DueDate      string     `json:"due_date"` // YYYY-MM-DD
	Description  string     `json:"description,omitempty"`
	Status       DebtStatus `json:"status"`
	SourceSystem string     `json:"source_system,omitempty"`
	ExternalID   string     `json:"external_id,omitempty"` // SourceRecord id
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
