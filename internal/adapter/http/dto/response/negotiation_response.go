package response

import (
	"alteapay/internal/usecase"
)

type NegotiationResultResponse struct {
	SourceRecordID       string `json:"source_record_id"`
	CustomerName         string `json:"customer_name"`
	CpfCnpj              string `json:"cpf_cnpj"`
	Status               string `json:"status"`
	FailedAtStep         string `json:"failed_at_step,omitempty"`
	ErrorMessage         string `json:"error_message,omitempty"`
	Recoverable          bool   `json:"recoverable,omitempty"`
	AsaasCustomerCreated bool   `json:"asaas_customer_created,omitempty"`
	AsaasChargeCreated   bool   `json:"asaas_charge_created,omitempty"`
	AsaasCustomerID      string `json:"asaas_customer_id,omitempty"`
	AsaasPaymentID       string `json:"asaas_payment_id,omitempty"`
	PaymentURL           string `json:"payment_url,omitempty"`
}

type BulkNegotiationResponse struct {
	Success      bool                        `json:"success"`
	Sent         int                         `json:"sent"`
	Failed       int                         `json:"failed"`
	Total        int                         `json:"total"`
	Results      []NegotiationResultResponse `json:"results"`
	ErrorSummary map[string]int              `json:"error_summary,omitempty"`
}

// FromBulkNegotiationReport flattens the per-record step errors into plain
// strings for the API surface. Success means at least one record went out.
func FromBulkNegotiationReport(report usecase.BulkNegotiationReport) BulkNegotiationResponse {
	results := make([]NegotiationResultResponse, 0, len(report.Results))
	for _, r := range report.Results {
		item := NegotiationResultResponse{
			SourceRecordID:       r.SourceRecordID,
			CustomerName:         r.CustomerName,
			CpfCnpj:              r.CpfCnpj,
			Status:               r.Status,
			FailedAtStep:         string(r.FailedAtStep),
			AsaasCustomerCreated: r.AsaasCustomerCreated,
			AsaasChargeCreated:   r.AsaasChargeCreated,
			AsaasCustomerID:      r.AsaasCustomerID,
			AsaasPaymentID:       r.AsaasPaymentID,
			PaymentURL:           r.PaymentURL,
		}
		if r.Error != nil {
			item.ErrorMessage = r.Error.Message
			item.Recoverable = r.Error.Recoverable
		}
		results = append(results, item)
	}

	return BulkNegotiationResponse{
		Success:      report.Sent > 0,
		Sent:         report.Sent,
		Failed:       report.Failed,
		Total:        report.Total,
		Results:      results,
		ErrorSummary: report.ErrorSummary,
	}
}
