package usecase

import (
	"errors"
	"fmt"

	"alteapay/internal/usecase/interfaces"
)

// NegotiationStep identifies one stage of the per-record bulk pipeline.
// Steps run strictly in this order; a failure is attributed to the step it
// occurred at so partial state can be recovered later.

type NegotiationStep string

const (
	StepValidateData        NegotiationStep = "validate_data"
	StepCreateCustomerDB    NegotiationStep = "create_customer_db"
	StepCreateDebtDB        NegotiationStep = "create_debt_db"
	StepCreateAsaasCustomer NegotiationStep = "create_asaas_customer"
	StepCreateAgreementDB   NegotiationStep = "create_agreement_db"
	StepCreateAsaasPayment  NegotiationStep = "create_asaas_payment"
	StepUpdateAgreementDB   NegotiationStep = "update_agreement_db"
	StepUpdateVmaxStatus    NegotiationStep = "update_vmax_status"
)

var stepLabels = map[NegotiationStep]string{
	StepValidateData:        "Validação dos dados",
	StepCreateCustomerDB:    "Cadastro do cliente",
	StepCreateDebtDB:        "Registro da dívida",
	StepCreateAsaasCustomer: "Cliente ASAAS",
	StepCreateAgreementDB:   "Criação do acordo",
	StepCreateAsaasPayment:  "Cobrança ASAAS",
	StepUpdateAgreementDB:   "Vínculo da cobrança",
	StepUpdateVmaxStatus:    "Atualização do VMAX",
}

// Label returns the display name used in audit trails and batch reports.
func (s NegotiationStep) Label() string {
	if l, ok := stepLabels[s]; ok {
		return l
	}
	return string(s)
}

// stepIsRecoverable applies the recoverability rule: once the external charge
// exists, local bookkeeping failures are safe to retry via the sync repair
// pass instead of re-running the creation pipeline.
func stepIsRecoverable(s NegotiationStep) bool {
	return s == StepUpdateAgreementDB || s == StepUpdateVmaxStatus
}

// StepError is the classified failure of one pipeline step.
type StepError struct {
	Message        string                     `json:"message"`
	Step           NegotiationStep            `json:"step"`
	HTTPStatus     int                        `json:"http_status,omitempty"`
	ProviderErrors []interfaces.ProviderError `json:"provider_errors,omitempty"`
	Recoverable    bool                       `json:"recoverable"`
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

// NewStepError classifies a raw error against the step it occurred at,
// unwrapping ASAAS error payloads when present.
func NewStepError(step NegotiationStep, err error) *StepError {
	se := &StepError{
		Message:     err.Error(),
		Step:        step,
		Recoverable: stepIsRecoverable(step),
	}

	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) {
		se.HTTPStatus = gwErr.StatusCode
		se.ProviderErrors = gwErr.Errors
	}
	return se
}

// retryOnce runs fn and retries exactly once, immediately, when it fails.
// The update_agreement_db step uses it; keeping the policy in one place makes
// it swappable and testable in isolation.
func retryOnce(fn func() error) error {
	if err := fn(); err != nil {
		return fn()
	}
	return nil
}
