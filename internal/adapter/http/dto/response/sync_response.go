package response

import (
	"alteapay/internal/usecase"
)

type StuckRepairResponse struct {
	SourceRecordID string `json:"source_record_id,omitempty"`
	AgreementID    string `json:"agreement_id,omitempty"`
	Action         string `json:"action"`
}

type IncompleteAgreementResponse struct {
	AgreementID     string `json:"agreement_id,omitempty"`
	SourceRecordID  string `json:"source_record_id,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	AsaasCustomerID string `json:"asaas_customer_id"`
	Reason          string `json:"reason"`
}

type PaymentSyncResponse struct {
	Total   int      `json:"total"`
	Synced  int      `json:"synced"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`

	StuckFixed           int                           `json:"stuck_fixed,omitempty"`
	StuckDetails         []StuckRepairResponse         `json:"stuck_details,omitempty"`
	IncompleteAgreements []IncompleteAgreementResponse `json:"incomplete_agreements,omitempty"`
}

func FromSyncReport(report usecase.SyncReport) PaymentSyncResponse {
	resp := PaymentSyncResponse{
		Total:      report.Total,
		Synced:     report.Synced,
		Updated:    report.Updated,
		Skipped:    report.Skipped,
		Errors:     report.Errors,
		StuckFixed: report.StuckFixed,
	}
	for _, s := range report.StuckDetails {
		resp.StuckDetails = append(resp.StuckDetails, StuckRepairResponse{
			SourceRecordID: s.SourceRecordID,
			AgreementID:    s.AgreementID,
			Action:         s.Action,
		})
	}
	for _, ia := range report.IncompleteAgreements {
		resp.IncompleteAgreements = append(resp.IncompleteAgreements, IncompleteAgreementResponse{
			AgreementID:     ia.AgreementID,
			SourceRecordID:  ia.SourceRecordID,
			CustomerName:    ia.CustomerName,
			AsaasCustomerID: ia.AsaasCustomerID,
			Reason:          ia.Reason,
		})
	}
	return resp
}
