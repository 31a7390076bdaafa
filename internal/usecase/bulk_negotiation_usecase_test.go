package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"
	mock_interfaces "alteapay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseBRLAmount(t *testing.T) {
	cases := map[string]float64{
		"R$ 1.234,56": 1234.56,
		"1.234,56":    1234.56,
		"150,00":      150,
		"150":         150,
		"R$ 0,00":     0,
		"":            0,
		"abc":         0,
		"12,34abc":    0,
	}
	for in, want := range cases {
		if got := parseBRLAmount(in); got != want {
			t.Fatalf("parseBRLAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := onlyDigits("111.444.777-35"); got != "11144477735" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := onlyDigits("(11) 98888-7777"); got != "11988887777" {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestComputeDiscount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		if got := computeDiscount(DiscountTypePercentage, 10, 200); got != 20 {
			t.Fatalf("expected 20, got %v", got)
		}
	})
	t.Run("fixed capped at original", func(t *testing.T) {
		if got := computeDiscount(DiscountTypeFixed, 500, 200); got != 200 {
			t.Fatalf("expected 200, got %v", got)
		}
	})
	t.Run("fixed below original", func(t *testing.T) {
		if got := computeDiscount(DiscountTypeFixed, 50, 200); got != 50 {
			t.Fatalf("expected 50, got %v", got)
		}
	})
	t.Run("none", func(t *testing.T) {
		if got := computeDiscount(DiscountTypeNone, 50, 200); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
	t.Run("negative value", func(t *testing.T) {
		if got := computeDiscount(DiscountTypePercentage, -10, 200); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestBillingTypeFor(t *testing.T) {
	cases := []struct {
		methods []string
		want    string
	}{
		{[]string{"boleto"}, interfaces.BillingTypeBoleto},
		{[]string{"pix"}, interfaces.BillingTypePix},
		{[]string{"credit_card"}, interfaces.BillingTypeCreditCard},
		{[]string{"boleto", "pix"}, interfaces.BillingTypeUndefined},
		{nil, interfaces.BillingTypeUndefined},
		{[]string{"cheque"}, interfaces.BillingTypeUndefined},
	}
	for _, c := range cases {
		if got := billingTypeFor(c.methods); got != c.want {
			t.Fatalf("billingTypeFor(%v) = %s, want %s", c.methods, got, c.want)
		}
	}
}

func TestFormatPhoneE164(t *testing.T) {
	if got := formatPhoneE164("(11) 98888-7777"); got != "+5511988887777" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := formatPhoneE164("5511988887777"); got != "+5511988887777" {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestDueDateFrom(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := dueDateFrom(base); got != "2025-03-31" {
		t.Fatalf("unexpected due date: %s", got)
	}
}

type bulkMocks struct {
	sourceRecords *mock_interfaces.MockISourceRecordRepository
	customers     *mock_interfaces.MockICustomerRepository
	debts         *mock_interfaces.MockIDebtRepository
	agreements    *mock_interfaces.MockIAgreementRepository
	actions       *mock_interfaces.MockICollectionActionRepository
	gateway       *mock_interfaces.MockIPaymentGateway
}

// newBulkUseCase wires the use case without company repo or notification
// senders so the background dispatch is a no-op in tests.
func newBulkUseCase(ctrl *gomock.Controller) (*BulkNegotiationUseCase, bulkMocks) {
	m := bulkMocks{
		sourceRecords: mock_interfaces.NewMockISourceRecordRepository(ctrl),
		customers:     mock_interfaces.NewMockICustomerRepository(ctrl),
		debts:         mock_interfaces.NewMockIDebtRepository(ctrl),
		agreements:    mock_interfaces.NewMockIAgreementRepository(ctrl),
		actions:       mock_interfaces.NewMockICollectionActionRepository(ctrl),
		gateway:       mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewBulkNegotiationUseCase(m.sourceRecords, m.customers, m.debts, m.agreements, m.actions, nil, m.gateway, nil, nil)
	return uc, m
}

func validRecord() entities.SourceRecord {
	return entities.SourceRecord{
		ID:            "rec-1",
		CompanyID:     "co-1",
		CustomerName:  "Maria Souza",
		Document:      "111.444.777-35",
		Phone:         "(11) 98888-7777",
		OverdueAmount: "R$ 1.234,56",
	}
}

func baseParams() BulkNegotiationParams {
	return BulkNegotiationParams{
		CompanyID:       "co-1",
		SourceRecordIDs: []string{"rec-1"},
		DiscountType:    DiscountTypeNone,
		PaymentMethods:  []string{"pix"},
		UserID:          "user-1",
	}
}

func TestBulkNegotiationUseCase_SendBulkNegotiations_Validation(t *testing.T) {
	t.Run("missing company id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBulkUseCase(ctrl)

		params := baseParams()
		params.CompanyID = "  "
		_, err := uc.SendBulkNegotiations(context.Background(), params)
		if !errors.Is(err, ErrMissingCompanyID) {
			t.Fatalf("expected ErrMissingCompanyID, got %v", err)
		}
	})

	t.Run("no records selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBulkUseCase(ctrl)

		params := baseParams()
		params.SourceRecordIDs = nil
		_, err := uc.SendBulkNegotiations(context.Background(), params)
		if !errors.Is(err, ErrNoRecordsSelected) {
			t.Fatalf("expected ErrNoRecordsSelected, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBulkNegotiationUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.SendBulkNegotiations(context.Background(), baseParams())
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBulkNegotiationUseCase_SendBulkNegotiations_RecordFailures(t *testing.T) {
	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		m.sourceRecords.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.SourceRecord{}, nil)

		report, err := uc.SendBulkNegotiations(context.Background(), baseParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Failed != 1 || report.Sent != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
		res := report.Results[0]
		if res.FailedAtStep != StepValidateData || res.Error == nil || res.Error.Recoverable {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		rec := validRecord()
		rec.Document = "123"
		m.sourceRecords.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		if report.Results[0].FailedAtStep != StepValidateData {
			t.Fatalf("expected validate_data failure, got %+v", report.Results[0])
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		rec := validRecord()
		rec.OverdueAmount = "R$ 0,00"
		m.sourceRecords.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		if report.Results[0].FailedAtStep != StepValidateData {
			t.Fatalf("expected validate_data failure, got %+v", report.Results[0])
		}
	})

	t.Run("existing customer updates contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		m.sourceRecords.EXPECT().GetByID(gomock.Any(), "rec-1").Return(validRecord(), nil)
		m.customers.EXPECT().GetByDocument(gomock.Any(), "11144477735", "co-1").
			Return(entities.Customer{ID: "cust-1", Phone: "11911112222", Email: "maria@example.com"}, nil)
		m.customers.EXPECT().UpdateContact(gomock.Any(), "cust-1", "Maria Souza", "11911112222", "maria@example.com").Return(nil)
		// Stop the pipeline at the debt step; the customer branch is what this
		// subtest is about.
		m.debts.EXPECT().GetLatestByCustomer(gomock.Any(), "cust-1", "co-1").Return(entities.Debt{}, errors.New("db"))

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		if report.Results[0].FailedAtStep != StepCreateDebtDB {
			t.Fatalf("expected create_debt_db failure, got %+v", report.Results[0])
		}
	})
}

func expectPipelineThroughAsaasCustomer(m bulkMocks) {
	m.sourceRecords.EXPECT().GetByID(gomock.Any(), "rec-1").Return(validRecord(), nil)
	m.customers.EXPECT().GetByDocument(gomock.Any(), "11144477735", "co-1").Return(entities.Customer{}, nil)
	m.customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		},
	)
	m.debts.EXPECT().GetLatestByCustomer(gomock.Any(), gomock.Any(), "co-1").Return(entities.Debt{}, nil)
	m.debts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Debt{})).DoAndReturn(
		func(_ context.Context, d entities.Debt) (entities.Debt, error) {
			return d, nil
		},
	)
	m.gateway.EXPECT().GetCustomerByDocument(gomock.Any(), "11144477735").Return(interfaces.GatewayCustomer{}, nil)
	m.gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCustomer{ID: "gw-cust-1"}, nil)
	m.gateway.EXPECT().ListCustomerNotifications(gomock.Any(), "gw-cust-1").Return(nil, nil)
}

func TestBulkNegotiationUseCase_SendBulkNegotiations_Pipeline(t *testing.T) {
	t.Run("full success with new customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agreement{})).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				if a.Status != entities.AgreementStatusDraft || a.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending draft, got %+v", a)
				}
				if a.OriginalAmount != 1234.56 || a.AgreedAmount != 1234.56 || a.DiscountAmount != 0 {
					t.Fatalf("unexpected amounts: %+v", a)
				}
				if a.Installments != 1 || a.AsaasCustomerID != "gw-cust-1" {
					t.Fatalf("unexpected agreement: %+v", a)
				}
				return a, nil
			},
		)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p interfaces.CreateGatewayChargeParams) (interfaces.GatewayCharge, error) {
				if p.Customer != "gw-cust-1" || p.BillingType != interfaces.BillingTypePix {
					t.Fatalf("unexpected charge params: %+v", p)
				}
				if p.Value != 1234.56 || p.Description != "Acordo de negociação - Maria Souza" {
					t.Fatalf("unexpected charge params: %+v", p)
				}
				return interfaces.GatewayCharge{ID: "pay-1", InvoiceURL: "https://inv", PixQRCodeURL: "https://pix", BankSlipURL: "https://slip"}, nil
			},
		)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), gomock.Any(), interfaces.AgreementChargeLinks{
			PaymentID: "pay-1", PaymentURL: "https://inv", PixQRCodeURL: "https://pix", BoletoURL: "https://slip",
		}).Return(nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, marker *entities.NegotiationMarker) error {
				if marker == nil || *marker != entities.NegotiationMarkerSent {
					t.Fatalf("expected sent marker, got %v", marker)
				}
				return nil
			},
		)

		report, err := uc.SendBulkNegotiations(context.Background(), baseParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Sent != 1 || report.Failed != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
		res := report.Results[0]
		if !res.AsaasCustomerCreated || !res.AsaasChargeCreated {
			t.Fatalf("expected external creations flagged: %+v", res)
		}
		if res.AsaasPaymentID != "pay-1" || res.PaymentURL != "https://inv" {
			t.Fatalf("unexpected charge linkage: %+v", res)
		}
	})

	t.Run("charge failure deletes draft agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)
		gwErr := &interfaces.GatewayError{StatusCode: 400, Errors: []interfaces.ProviderError{{Code: "invalid_value", Description: "valor inválido"}}}
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{}, gwErr)
		m.agreements.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		res := report.Results[0]
		if res.FailedAtStep != StepCreateAsaasPayment || res.Error == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Error.Recoverable {
			t.Fatalf("create_asaas_payment must not be recoverable")
		}
		if res.Error.HTTPStatus != 400 || len(res.Error.ProviderErrors) != 1 {
			t.Fatalf("expected gateway details: %+v", res.Error)
		}
		if !res.AsaasCustomerCreated || res.AsaasChargeCreated {
			t.Fatalf("expected customer created but no charge: %+v", res)
		}
	})

	t.Run("attach charge retries and recovers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{ID: "pay-1"}, nil)

		attachCalls := 0
		m.agreements.EXPECT().AttachCharge(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, _ string, _ interfaces.AgreementChargeLinks) error {
				attachCalls++
				if attachCalls == 1 {
					return errors.New("transient")
				}
				return nil
			},
		)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(nil)

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		if report.Sent != 1 {
			t.Fatalf("expected success after retry, got %+v", report.Results[0])
		}
	})

	t.Run("attach failure is recoverable and keeps charge refs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{ID: "pay-1", InvoiceURL: "https://inv"}, nil)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(errors.New("conditional check failed"))

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		res := report.Results[0]
		if res.FailedAtStep != StepUpdateAgreementDB || res.Error == nil || !res.Error.Recoverable {
			t.Fatalf("expected recoverable update_agreement_db failure: %+v", res)
		}
		if res.AsaasPaymentID != "pay-1" || !res.AsaasChargeCreated {
			t.Fatalf("charge refs must survive recoverable failures: %+v", res)
		}
	})

	t.Run("vmax marker failure does not fail the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{ID: "pay-1"}, nil)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(errors.New("vmax offline"))

		report, _ := uc.SendBulkNegotiations(context.Background(), baseParams())
		if report.Sent != 1 {
			t.Fatalf("expected success despite marker failure, got %+v", report.Results[0])
		}
	})

	t.Run("collection actions recorded per channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBulkUseCase(ctrl)

		expectPipelineThroughAsaasCustomer(m)

		m.agreements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{ID: "pay-1"}, nil)
		m.agreements.EXPECT().AttachCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.sourceRecords.EXPECT().UpdateNegotiationStatus(gomock.Any(), "rec-1", gomock.Any()).Return(nil)

		m.actions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CollectionAction{})).Times(2).DoAndReturn(
			func(_ context.Context, a entities.CollectionAction) (entities.CollectionAction, error) {
				if a.CompanyID != "co-1" || a.Status != "sent" || a.SentBy != "user-1" {
					t.Fatalf("unexpected collection action: %+v", a)
				}
				if a.Metadata.OriginalAmount != 1234.56 {
					t.Fatalf("expected original amount in metadata: %+v", a.Metadata)
				}
				return a, nil
			},
		)
		// Channels without whatsapp keep the background dispatch away from the
		// gateway, so no extra expectations are needed here.
		params := baseParams()
		params.NotificationChannels = []string{"sms", "email"}
		report, _ := uc.SendBulkNegotiations(context.Background(), params)
		if report.Sent != 1 {
			t.Fatalf("expected success, got %+v", report.Results[0])
		}
	})
}

func TestBulkNegotiationUseCase_SendBulkNegotiations_Chunking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newBulkUseCase(ctrl)

	ids := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"}
	for _, id := range ids {
		m.sourceRecords.EXPECT().GetByID(gomock.Any(), id).Return(entities.SourceRecord{}, nil)
	}

	params := baseParams()
	params.SourceRecordIDs = ids
	report, err := uc.SendBulkNegotiations(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 7 || report.Failed != 7 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for i, id := range ids {
		if report.Results[i].SourceRecordID != id {
			t.Fatalf("result order broken at %d: %+v", i, report.Results[i])
		}
	}
	if report.ErrorSummary["registro VMAX não encontrado"] != 7 {
		t.Fatalf("unexpected error summary: %+v", report.ErrorSummary)
	}
}

func TestBulkNegotiationUseCase_SendBulkNegotiations_ChunksRunSequentially(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newBulkUseCase(ctrl)

	firstChunk := []string{"r1", "r2", "r3", "r4", "r5"}
	secondChunk := []string{"r6", "r7", "r8"}
	ids := append(append([]string{}, firstChunk...), secondChunk...)

	var (
		mu          sync.Mutex
		inFlight    int
		maxInFlight int
		done        = map[string]bool{}
	)
	for _, id := range ids {
		m.sourceRecords.EXPECT().GetByID(gomock.Any(), id).DoAndReturn(
			func(_ context.Context, recordID string) (entities.SourceRecord, error) {
				mu.Lock()
				inFlight++
				if inFlight > maxInFlight {
					maxInFlight = inFlight
				}
				if recordID == "r6" || recordID == "r7" || recordID == "r8" {
					for _, prev := range firstChunk {
						if !done[prev] {
							mu.Unlock()
							t.Errorf("record %s started before %s settled", recordID, prev)
							return entities.SourceRecord{}, nil
						}
					}
				}
				mu.Unlock()

				// Hold the worker long enough for its chunk mates to overlap.
				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				inFlight--
				done[recordID] = true
				mu.Unlock()
				return entities.SourceRecord{}, nil
			},
		)
	}

	params := baseParams()
	params.SourceRecordIDs = ids
	report, err := uc.SendBulkNegotiations(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 8 || report.Failed != 8 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if maxInFlight > 5 {
		t.Fatalf("expected at most 5 concurrent records, observed %d", maxInFlight)
	}
	if maxInFlight < 2 {
		t.Fatalf("expected records inside a chunk to overlap, observed %d", maxInFlight)
	}
}
