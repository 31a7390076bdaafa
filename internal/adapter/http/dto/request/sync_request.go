package request

// PaymentSyncRequest narrows a synchronization run. Both fields are optional:
// an empty body syncs every pending agreement across companies.
type PaymentSyncRequest struct {
	CompanyID   string `json:"company_id"`
	AgreementID string `json:"agreement_id"`
}
