package entities

// NegotiationMarker is the sync tag stamped on an imported VMAX row.
//
// Markers are the legacy values the VMAX operators already know:
//   - "sent"      => a negotiation with a live ASAAS charge exists
//   - "PAGO"      => the charge was paid
//   - "CANCELADA" => the charge was refunded or deleted out-of-band
//
// A nil marker means the row is believed to have no negotiation.

type NegotiationMarker string

const (
	NegotiationMarkerSent      NegotiationMarker = "sent"
	NegotiationMarkerPaid      NegotiationMarker = "PAGO"
	NegotiationMarkerCancelled NegotiationMarker = "CANCELADA"
)

// SourceRecord is one VMAX import row: a debtor as the external ERP knows it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Rows are created by the import pipeline and never deleted here; the workflow
// only reads them and updates NegotiationStatus.
type SourceRecord struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	CustomerName   string `json:"customer_name"`
	Document       string `json:"document"` // CPF/CNPJ as imported, may carry punctuation
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondary_phone,omitempty"`
	Email          string `json:"email,omitempty"`
	OverdueAmount  string `json:"overdue_amount"` // locale-formatted, e.g. "R$ 1.234,56"

	NegotiationStatus *NegotiationMarker `json:"negotiation_status,omitempty"`
}

// ContactPhone prefers the primary phone, falling back to the secondary one.
func (r SourceRecord) ContactPhone() string {
	if r.Phone != "" {
		return r.Phone
	}
	return r.SecondaryPhone
}
