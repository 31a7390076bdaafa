package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"
	mock_interfaces "alteapay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	sourceRecords *mock_interfaces.MockISourceRecordRepository
	customers     *mock_interfaces.MockICustomerRepository
	debts         *mock_interfaces.MockIDebtRepository
	agreements    *mock_interfaces.MockIAgreementRepository
	notifications *mock_interfaces.MockINotificationRepository
	gateway       *mock_interfaces.MockIPaymentGateway
}

func newSyncUseCase(ctrl *gomock.Controller) (*PaymentSyncUseCase, syncMocks) {
	m := syncMocks{
		sourceRecords: mock_interfaces.NewMockISourceRecordRepository(ctrl),
		customers:     mock_interfaces.NewMockICustomerRepository(ctrl),
		debts:         mock_interfaces.NewMockIDebtRepository(ctrl),
		agreements:    mock_interfaces.NewMockIAgreementRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
		gateway:       mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPaymentSyncUseCase(m.sourceRecords, m.customers, m.debts, m.agreements, m.notifications, m.gateway)
	return uc, m
}

func pendingAgreement() entities.Agreement {
	return entities.Agreement{
		ID:             "ag-1",
		DebtID:         "debt-1",
		CustomerID:     "cust-1",
		UserID:         "user-1",
		CompanyID:      "co-1",
		AgreedAmount:   150,
		Status:         entities.AgreementStatusActive,
		PaymentStatus:  entities.PaymentStatusPending,
		AsaasPaymentID: "pay-1",
	}
}

func TestPaymentSyncUseCase_SyncPayments(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentSyncUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.SyncPayments(context.Background(), SyncFilters{})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("list pending failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).Return(nil, errors.New("db"))

		_, err := uc.SyncPayments(context.Background(), SyncFilters{})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("recently synced agreements are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		recent := time.Now().UTC().Add(-time.Minute)
		ag := pendingAgreement()
		ag.LastSyncedAt = &recent
		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{ag}, nil)

		report, err := uc.SyncPayments(context.Background(), SyncFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Skipped != 1 || report.Synced != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("targeted agreement bypasses the skip window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		recent := time.Now().UTC().Add(-time.Minute)
		ag := pendingAgreement()
		ag.LastSyncedAt = &recent
		m.agreements.EXPECT().ListPendingSync(gomock.Any(), interfaces.SyncSelection{AgreementID: "ag-1"}, gomock.Any(), 50).
			Return([]entities.Agreement{ag}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{Status: "PENDING"}, nil)
		m.agreements.EXPECT().TouchLastSyncedAt(gomock.Any(), "ag-1", gomock.Any()).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{AgreementID: "ag-1"})
		if report.Synced != 1 || report.Skipped != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("unchanged status only refreshes the sync timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{pendingAgreement()}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{Status: "PENDING"}, nil)
		m.agreements.EXPECT().TouchLastSyncedAt(gomock.Any(), "ag-1", gomock.Any()).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Synced != 1 || report.Updated != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("unknown raw status leaves payment status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{pendingAgreement()}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{Status: "SOMETHING_NEW"}, nil)
		m.agreements.EXPECT().TouchLastSyncedAt(gomock.Any(), "ag-1", gomock.Any()).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Updated != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("received payment settles the debt and notifies once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{pendingAgreement()}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{
			Status: "RECEIVED", Value: 150, NetValue: 145.5, BillingType: "PIX", PaymentDate: "2025-03-10",
		}, nil)

		m.debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPaid).Return(nil)
		m.debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", ExternalID: "rec-1"}, nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, marker *entities.NegotiationMarker) error {
				if marker == nil || *marker != entities.NegotiationMarkerPaid {
					t.Fatalf("expected PAGO marker, got %v", marker)
				}
				return nil
			},
		)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != "user-1" || n.Title != "Pagamento Confirmado" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)
		m.agreements.EXPECT().ApplySyncUpdate(gomock.Any(), "ag-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.AgreementSyncUpdate) error {
				if upd.PaymentStatus != entities.PaymentStatusReceived || upd.Status != entities.AgreementStatusCompleted {
					t.Fatalf("unexpected update: %+v", upd)
				}
				if upd.PaymentReceivedAt == nil || upd.NetValue != 145.5 {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return nil
			},
		)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Updated != 1 || len(report.Errors) != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("deleted charge cancels the agreement and reopens the chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{pendingAgreement()}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").
			Return(interfaces.GatewayCharge{}, fmt.Errorf("%w: pay-1", interfaces.ErrChargeNotFound))

		m.agreements.EXPECT().ApplySyncUpdate(gomock.Any(), "ag-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.AgreementSyncUpdate) error {
				if upd.PaymentStatus != entities.PaymentStatusCancelled || upd.Status != entities.AgreementStatusCancelled {
					t.Fatalf("unexpected update: %+v", upd)
				}
				if upd.AsaasStatus != "DELETED" {
					t.Fatalf("expected DELETED raw status, got %s", upd.AsaasStatus)
				}
				return nil
			},
		)
		m.debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPending).Return(nil)
		m.debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", ExternalID: "rec-1"}, nil)
		// Marker cleared, not set to CANCELADA: the row becomes eligible for a
		// fresh negotiation.
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", nil).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Updated != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("refunded charge cancels and marks CANCELADA", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{pendingAgreement()}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{Status: "REFUNDED"}, nil)

		m.debts.EXPECT().UpdateStatus(gomock.Any(), "debt-1", entities.DebtStatusPending).Return(nil)
		m.debts.EXPECT().GetByID(gomock.Any(), "debt-1").Return(entities.Debt{ID: "debt-1", ExternalID: "rec-1"}, nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, marker *entities.NegotiationMarker) error {
				if marker == nil || *marker != entities.NegotiationMarkerCancelled {
					t.Fatalf("expected CANCELADA marker, got %v", marker)
				}
				return nil
			},
		)
		m.agreements.EXPECT().ApplySyncUpdate(gomock.Any(), "ag-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.AgreementSyncUpdate) error {
				if upd.Status != entities.AgreementStatusCancelled {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return nil
			},
		)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Updated != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("gateway error is reported and does not abort the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		first := pendingAgreement()
		second := pendingAgreement()
		second.ID = "ag-2"
		second.AsaasPaymentID = "pay-2"
		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			Return([]entities.Agreement{first, second}, nil)
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-1").Return(interfaces.GatewayCharge{}, errors.New("timeout"))
		m.gateway.EXPECT().GetCharge(gomock.Any(), "pay-2").Return(interfaces.GatewayCharge{Status: "PENDING"}, nil)
		m.agreements.EXPECT().TouchLastSyncedAt(gomock.Any(), "ag-2", gomock.Any()).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{})
		if report.Synced != 2 || len(report.Errors) != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}

func TestPaymentSyncUseCase_RepairStuckRecords(t *testing.T) {
	// Pass A is irrelevant here; every subtest starts with no pending
	// agreements and a company filter so only the repair pass runs.
	expectEmptyPassA := func(m syncMocks) {
		m.agreements.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), gomock.Any(), 50).Return(nil, nil)
	}

	stuckRecord := func() entities.SourceRecord {
		return entities.SourceRecord{
			ID:            "rec-1",
			CompanyID:     "co-1",
			CustomerName:  "Maria Souza",
			Document:      "111.444.777-35",
			OverdueAmount: "R$ 150,00",
		}
	}

	t.Run("repair only runs when a company is targeted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)

		report, err := uc.SyncPayments(context.Background(), SyncFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.StuckFixed != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("record without external customer is left untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{stuckRecord()}, nil)
		m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{}, nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if report.StuckFixed != 0 || len(report.IncompleteAgreements) != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("customer without charges is reported incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{stuckRecord()}, nil)
		m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{ID: "gw-cust-1"}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return(nil, nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if len(report.IncompleteAgreements) != 1 {
			t.Fatalf("expected one incomplete agreement, got %+v", report)
		}
		if report.IncompleteAgreements[0].AsaasCustomerID != "gw-cust-1" {
			t.Fatalf("unexpected entry: %+v", report.IncompleteAgreements[0])
		}
	})

	t.Run("stale marker is caught up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{stuckRecord()}, nil)
		m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{ID: "gw-cust-1"}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return([]interfaces.GatewayCharge{{ID: "pay-1", DateCreated: "2025-03-01"}}, nil)
		m.customers.EXPECT().GetByDocument(gomock.Any(), "11144477735", "co-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.agreements.EXPECT().GetLatestByCustomer(gomock.Any(), "cust-1", "co-1").
			Return(entities.Agreement{ID: "ag-1", AsaasPaymentID: "pay-1"}, nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if report.StuckFixed != 1 || report.StuckDetails[0].Action != RepairActionMarkerCaughtUp {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("agreement without charge gets the latest charge attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{stuckRecord()}, nil)
		m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{ID: "gw-cust-1"}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return([]interfaces.GatewayCharge{
			{ID: "pay-old", DateCreated: "2025-01-01"},
			{ID: "pay-new", DateCreated: "2025-03-01", InvoiceURL: "https://inv"},
		}, nil)
		m.customers.EXPECT().GetByDocument(gomock.Any(), "11144477735", "co-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.agreements.EXPECT().GetLatestByCustomer(gomock.Any(), "cust-1", "co-1").
			Return(entities.Agreement{ID: "ag-1"}, nil)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), "ag-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, links interfaces.AgreementChargeLinks) error {
				if links.PaymentID != "pay-new" {
					t.Fatalf("expected most recent charge, got %+v", links)
				}
				return nil
			},
		)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if report.StuckFixed != 1 || report.StuckDetails[0].Action != RepairActionChargeAttached {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("missing local chain is synthesized from the external charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{stuckRecord()}, nil)
		m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{ID: "gw-cust-1", Name: "Maria Souza"}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return([]interfaces.GatewayCharge{
			{ID: "pay-1", Status: "PENDING", Value: 140, DueDate: "2025-04-01", DateCreated: "2025-03-01"},
		}, nil)
		m.customers.EXPECT().GetByDocument(gomock.Any(), "11144477735", "co-1").Return(entities.Customer{}, nil)
		m.customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Document != "11144477735" || c.CompanyID != "co-1" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)
		m.debts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Debt{})).DoAndReturn(
			func(_ context.Context, d entities.Debt) (entities.Debt, error) {
				if d.Amount != 150 {
					t.Fatalf("expected VMAX amount to win, got %v", d.Amount)
				}
				return d, nil
			},
		)
		m.agreements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agreement{})).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				if a.Status != entities.AgreementStatusActive || a.AsaasPaymentID != "pay-1" {
					t.Fatalf("unexpected agreement: %+v", a)
				}
				if a.AgreedAmount != 140 {
					t.Fatalf("expected charge value as agreed amount, got %v", a.AgreedAmount)
				}
				return a, nil
			},
		)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if report.StuckFixed != 1 || report.StuckDetails[0].Action != RepairActionAgreementSynthesized {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("invalid document is skipped silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		rec := stuckRecord()
		rec.Document = "123"
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return([]entities.SourceRecord{rec}, nil)
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if len(report.Errors) != 0 || report.StuckFixed != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("draft with external charge is completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return(nil, nil)
		draft := entities.Agreement{ID: "ag-draft", CompanyID: "co-1", Status: entities.AgreementStatusDraft, AsaasCustomerID: "gw-cust-1"}
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return([]entities.Agreement{draft}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return([]interfaces.GatewayCharge{{ID: "pay-1", DateCreated: "2025-03-01"}}, nil)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), "ag-draft", gomock.Any()).Return(nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if report.StuckFixed != 1 || report.StuckDetails[0].Action != RepairActionChargeAttached {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("draft without charges is reported incomplete once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSyncUseCase(ctrl)

		expectEmptyPassA(m)
		m.sourceRecords.EXPECT().ListUnmarkedByCompany(gomock.Any(), "co-1").Return(nil, nil)
		draft := entities.Agreement{ID: "ag-draft", CompanyID: "co-1", Status: entities.AgreementStatusDraft, AsaasCustomerID: "gw-cust-1"}
		m.agreements.EXPECT().ListDraftsMissingCharge(gomock.Any(), "co-1").Return([]entities.Agreement{draft}, nil)
		m.gateway.EXPECT().ListCustomerCharges(gomock.Any(), "gw-cust-1").Return(nil, nil)

		report, _ := uc.SyncPayments(context.Background(), SyncFilters{CompanyID: "co-1"})
		if len(report.IncompleteAgreements) != 1 || report.IncompleteAgreements[0].AgreementID != "ag-draft" {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}
