package usecase

import (
	"errors"
	"fmt"
	"testing"

	"alteapay/internal/usecase/interfaces"
)

func TestNegotiationStep_Label(t *testing.T) {
	if got := StepCreateAsaasPayment.Label(); got != "Cobrança ASAAS" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := NegotiationStep("whatever").Label(); got != "whatever" {
		t.Fatalf("expected fallback to raw step, got %s", got)
	}
}

func TestStepIsRecoverable(t *testing.T) {
	recoverable := map[NegotiationStep]bool{
		StepValidateData:        false,
		StepCreateCustomerDB:    false,
		StepCreateDebtDB:        false,
		StepCreateAsaasCustomer: false,
		StepCreateAgreementDB:   false,
		StepCreateAsaasPayment:  false,
		StepUpdateAgreementDB:   true,
		StepUpdateVmaxStatus:    true,
	}
	for step, want := range recoverable {
		if got := stepIsRecoverable(step); got != want {
			t.Fatalf("step %s: expected recoverable=%t, got %t", step, want, got)
		}
	}
}

func TestNewStepError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		se := NewStepError(StepCreateDebtDB, errors.New("db down"))
		if se.Message != "db down" || se.Step != StepCreateDebtDB {
			t.Fatalf("unexpected step error: %+v", se)
		}
		if se.Recoverable {
			t.Fatalf("create_debt_db must not be recoverable")
		}
		if se.HTTPStatus != 0 || len(se.ProviderErrors) != 0 {
			t.Fatalf("plain error must not carry gateway details: %+v", se)
		}
	})

	t.Run("gateway error is unwrapped", func(t *testing.T) {
		gwErr := &interfaces.GatewayError{
			StatusCode: 400,
			Errors:     []interfaces.ProviderError{{Code: "invalid_cpf", Description: "CPF inválido"}},
		}
		se := NewStepError(StepCreateAsaasCustomer, fmt.Errorf("create customer: %w", gwErr))
		if se.HTTPStatus != 400 {
			t.Fatalf("expected status 400, got %d", se.HTTPStatus)
		}
		if len(se.ProviderErrors) != 1 || se.ProviderErrors[0].Code != "invalid_cpf" {
			t.Fatalf("expected provider errors, got %+v", se.ProviderErrors)
		}
	})

	t.Run("recoverable step", func(t *testing.T) {
		se := NewStepError(StepUpdateAgreementDB, errors.New("conditional check failed"))
		if !se.Recoverable {
			t.Fatalf("update_agreement_db must be recoverable")
		}
	})

	t.Run("error string carries step", func(t *testing.T) {
		se := NewStepError(StepValidateData, errors.New("boom"))
		if se.Error() != "validate_data: boom" {
			t.Fatalf("unexpected error string: %s", se.Error())
		}
	})
}

func TestRetryOnce(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		err := retryOnce(func() error {
			calls++
			return nil
		})
		if err != nil || calls != 1 {
			t.Fatalf("expected one call and no error, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("second attempt succeeds", func(t *testing.T) {
		calls := 0
		err := retryOnce(func() error {
			calls++
			if calls == 1 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Fatalf("expected two calls and no error, got calls=%d err=%v", calls, err)
		}
	})

	t.Run("both attempts fail", func(t *testing.T) {
		calls := 0
		err := retryOnce(func() error {
			calls++
			return errors.New("persistent")
		})
		if err == nil || calls != 2 {
			t.Fatalf("expected two calls and an error, got calls=%d err=%v", calls, err)
		}
	})
}
