package repository

import (
	"testing"

	"alteapay/internal/domain/entities"
)

func TestSyncEligible(t *testing.T) {
	allowed := map[entities.PaymentStatus]bool{
		entities.PaymentStatusPending:   true,
		entities.PaymentStatusConfirmed: true,
		entities.PaymentStatusOverdue:   true,
	}

	cases := []struct {
		name string
		a    entities.Agreement
		want bool
	}{
		{name: "pending with charge", a: entities.Agreement{ID: "ag-1", AsaasPaymentID: "pay-1", PaymentStatus: entities.PaymentStatusPending}, want: true},
		{name: "overdue with charge", a: entities.Agreement{ID: "ag-1", AsaasPaymentID: "pay-1", PaymentStatus: entities.PaymentStatusOverdue}, want: true},
		{name: "missing charge", a: entities.Agreement{ID: "ag-1", PaymentStatus: entities.PaymentStatusPending}, want: false},
		{name: "received is terminal", a: entities.Agreement{ID: "ag-1", AsaasPaymentID: "pay-1", PaymentStatus: entities.PaymentStatusReceived}, want: false},
		{name: "cancelled is terminal", a: entities.Agreement{ID: "ag-1", AsaasPaymentID: "pay-1", PaymentStatus: entities.PaymentStatusCancelled}, want: false},
		{name: "zero value", a: entities.Agreement{}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := syncEligible(tc.a, allowed); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}
