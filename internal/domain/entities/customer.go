package entities

import "time"

type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// DocumentTypeFor derives the tax-id kind from a normalized document.
// Callers must validate length first; anything that is not 11 digits is
// treated as an organization.
func DocumentTypeFor(document string) DocumentType {
	if len(document) == 11 {
		return DocumentTypeCPF
	}
	return DocumentTypeCNPJ
}

// Customer is the company-scoped debtor identity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (document-index): document
//
// The (document, company_id) pair is the idempotency key: the bulk sender
// finds-and-updates before it ever inserts, so at most one row exists per pair.
type Customer struct {
	ID           string       `json:"id"`
	CompanyID    string       `json:"company_id"`
	Name         string       `json:"name"`
	Document     string       `json:"document"` // digits only
	DocumentType DocumentType `json:"document_type"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	SourceSystem string       `json:"source_system,omitempty"`
	ExternalID   string       `json:"external_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
