package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	// Agreements synced within this window are skipped unless the caller
	// targeted one explicitly.
	minSyncInterval = 5 * time.Minute

	// Cap per invocation; the cron picks up the rest next run.
	maxAgreementsPerSync = 50

	asaasStatusDeleted = "DELETED"
)

// syncStatuses selects agreements still worth polling.
var syncStatuses = []entities.PaymentStatus{
	entities.PaymentStatusPending,
	entities.PaymentStatusConfirmed,
	entities.PaymentStatusOverdue,
}

// asaasStatusMap is the fixed charge-status translation table. Unknown raw
// statuses leave the stored payment_status untouched.
var asaasStatusMap = map[string]entities.PaymentStatus{
	"PENDING":                entities.PaymentStatusPending,
	"AWAITING_RISK_ANALYSIS": entities.PaymentStatusPending,
	"CONFIRMED":              entities.PaymentStatusConfirmed,
	"RECEIVED":               entities.PaymentStatusReceived,
	"OVERDUE":                entities.PaymentStatusOverdue,
	"REFUNDED":               entities.PaymentStatusRefunded,
	"REFUND_REQUESTED":       entities.PaymentStatusRefundRequested,
	"CHARGEBACK_REQUESTED":   entities.PaymentStatusChargebackRequested,
	"CHARGEBACK_DISPUTE":     entities.PaymentStatusChargebackDispute,
	"DUNNING_RECEIVED":       entities.PaymentStatusReceived,
	"DUNNING_REQUESTED":      entities.PaymentStatusOverdue,
}

// SyncFilters narrows a sync run. AgreementID bypasses the recent-sync skip;
// CompanyID additionally enables the stuck-record repair pass.
type SyncFilters struct {
	CompanyID   string
	AgreementID string
}

// StuckRepair describes one repair action taken by the repair pass.
type StuckRepair struct {
	SourceRecordID string `json:"source_record_id,omitempty"`
	AgreementID    string `json:"agreement_id,omitempty"`
	Action         string `json:"action"`
}

const (
	RepairActionMarkerCaughtUp       = "marker_caught_up"
	RepairActionChargeAttached       = "charge_attached"
	RepairActionAgreementSynthesized = "agreement_synthesized"
)

// IncompleteAgreement is a repair candidate that still needs a human: an ASAAS
// customer exists but no charge does, so nothing can be fabricated.
type IncompleteAgreement struct {
	AgreementID     string `json:"agreement_id,omitempty"`
	SourceRecordID  string `json:"source_record_id,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	AsaasCustomerID string `json:"asaas_customer_id"`
	Reason          string `json:"reason"`
}

// SyncReport aggregates one sync invocation.
type SyncReport struct {
	Total   int      `json:"total"`
	Synced  int      `json:"synced"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`

	StuckFixed           int                   `json:"stuck_fixed,omitempty"`
	StuckDetails         []StuckRepair         `json:"stuck_details,omitempty"`
	IncompleteAgreements []IncompleteAgreement `json:"incomplete_agreements,omitempty"`
}

// IPaymentSyncUseCase pulls charge status from ASAAS into local agreements and
// repairs records stuck halfway between the two systems.

type IPaymentSyncUseCase interface {
	SyncPayments(ctx context.Context, filters SyncFilters) (SyncReport, error)
}

type PaymentSyncUseCase struct {
	sourceRecords interfaces.ISourceRecordRepository
	customers     interfaces.ICustomerRepository
	debts         interfaces.IDebtRepository
	agreements    interfaces.IAgreementRepository
	notifications interfaces.INotificationRepository
	gateway       interfaces.IPaymentGateway
}

var _ IPaymentSyncUseCase = (*PaymentSyncUseCase)(nil)

func NewPaymentSyncUseCase(
	sourceRecords interfaces.ISourceRecordRepository,
	customers interfaces.ICustomerRepository,
	debts interfaces.IDebtRepository,
	agreements interfaces.IAgreementRepository,
	notifications interfaces.INotificationRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentSyncUseCase {
	return &PaymentSyncUseCase{
		sourceRecords: sourceRecords,
		customers:     customers,
		debts:         debts,
		agreements:    agreements,
		notifications: notifications,
		gateway:       gateway,
	}
}

func (u *PaymentSyncUseCase) SyncPayments(ctx context.Context, filters SyncFilters) (SyncReport, error) {
	report := SyncReport{}
	if u.gateway == nil {
		return report, errors.New("payment gateway not configured")
	}

	log.Printf("[sync][usecase] start company_id=%q agreement_id=%q", filters.CompanyID, filters.AgreementID)

	sel := interfaces.SyncSelection{CompanyID: filters.CompanyID, AgreementID: filters.AgreementID}
	agreements, err := u.agreements.ListPendingSync(ctx, sel, syncStatuses, maxAgreementsPerSync)
	if err != nil {
		return report, fmt.Errorf("sync: list pending agreements: %w", err)
	}
	report.Total = len(agreements)

	for _, ag := range agreements {
		u.syncAgreement(ctx, ag, filters, &report)
	}

	// The repair pass scans company-wide state, so it only runs for a
	// targeted company.
	if filters.CompanyID != "" {
		u.repairStuckRecords(ctx, filters.CompanyID, &report)
	}

	log.Printf("[sync][usecase] done total=%d synced=%d updated=%d skipped=%d errors=%d stuck_fixed=%d",
		report.Total, report.Synced, report.Updated, report.Skipped, len(report.Errors), report.StuckFixed)
	return report, nil
}

// syncAgreement is the per-agreement boundary: any error lands in the report,
// never aborts the batch.
func (u *PaymentSyncUseCase) syncAgreement(ctx context.Context, ag entities.Agreement, filters SyncFilters, report *SyncReport) {
	defer func() {
		if r := recover(); r != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: unexpected failure: %v", ag.ID, r))
		}
	}()

	if filters.AgreementID == "" && ag.LastSyncedAt != nil && time.Since(*ag.LastSyncedAt) < minSyncInterval {
		report.Skipped++
		return
	}

	charge, err := u.gateway.GetCharge(ctx, ag.AsaasPaymentID)
	report.Synced++

	if errors.Is(err, interfaces.ErrChargeNotFound) {
		u.handleDeletedCharge(ctx, ag, report)
		return
	}
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", ag.ID, err))
		return
	}

	newStatus, known := asaasStatusMap[charge.Status]
	if !known {
		newStatus = ag.PaymentStatus
	}

	now := time.Now().UTC()
	if newStatus == ag.PaymentStatus {
		// No transition: refresh the timestamp so this agreement rotates to
		// the back of the selection order.
		if err := u.agreements.TouchLastSyncedAt(ctx, ag.ID, now); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", ag.ID, err))
		}
		return
	}

	log.Printf("[sync][usecase] status change agreement_id=%s %s -> %s (asaas=%s)",
		ag.ID, ag.PaymentStatus, newStatus, charge.Status)

	upd := interfaces.AgreementSyncUpdate{
		PaymentStatus: newStatus,
		AsaasStatus:   charge.Status,
		BillingType:   charge.BillingType,
		NetValue:      charge.NetValue,
		InvoiceURL:    charge.InvoiceURL,
		PaymentDate:   charge.PaymentDate,
		LastSyncedAt:  now,
	}

	switch {
	case newStatus == entities.PaymentStatusReceived:
		upd.Status = entities.AgreementStatusCompleted
		upd.PaymentReceivedAt = &now
		u.settleDebt(ctx, ag, charge)
	case newStatus == entities.PaymentStatusRefunded || charge.Status == asaasStatusDeleted:
		upd.Status = entities.AgreementStatusCancelled
		u.reopenDebt(ctx, ag, entities.NegotiationMarkerCancelled)
	}

	if err := u.agreements.ApplySyncUpdate(ctx, ag.ID, upd); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", ag.ID, err))
		return
	}
	report.Updated++
}

// handleDeletedCharge is the out-of-band deletion recovery: someone removed
// the charge on the ASAAS side, so the agreement cancels, the debt reopens and
// the VMAX marker clears so a new negotiation can go out.
func (u *PaymentSyncUseCase) handleDeletedCharge(ctx context.Context, ag entities.Agreement, report *SyncReport) {
	log.Printf("[sync][usecase] charge deleted on asaas agreement_id=%s asaas_payment_id=%s", ag.ID, ag.AsaasPaymentID)

	upd := interfaces.AgreementSyncUpdate{
		PaymentStatus: entities.PaymentStatusCancelled,
		AsaasStatus:   asaasStatusDeleted,
		Status:        entities.AgreementStatusCancelled,
		LastSyncedAt:  time.Now().UTC(),
	}
	if err := u.agreements.ApplySyncUpdate(ctx, ag.ID, upd); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", ag.ID, err))
	} else {
		report.Updated++
	}

	if ag.DebtID == "" {
		return
	}
	if err := u.debts.UpdateStatus(ctx, ag.DebtID, entities.DebtStatusPending); err != nil {
		log.Printf("[sync][usecase] debt reopen failed debt_id=%s err=%v", ag.DebtID, err)
	}
	u.updateSourceRecordMarker(ctx, ag.DebtID, nil)
}

// settleDebt applies the payment-received side effects: debt paid, VMAX marked
// PAGO, and an in-app notification for the agreement owner.
func (u *PaymentSyncUseCase) settleDebt(ctx context.Context, ag entities.Agreement, charge interfaces.GatewayCharge) {
	if ag.DebtID != "" {
		if err := u.debts.UpdateStatus(ctx, ag.DebtID, entities.DebtStatusPaid); err != nil {
			log.Printf("[sync][usecase] debt settle failed debt_id=%s err=%v", ag.DebtID, err)
		}
		marker := entities.NegotiationMarkerPaid
		u.updateSourceRecordMarker(ctx, ag.DebtID, &marker)
	}

	if ag.UserID == "" || u.notifications == nil {
		return
	}
	amount := charge.Value
	if amount == 0 {
		amount = ag.AgreedAmount
	}
	_, err := u.notifications.Create(ctx, entities.Notification{
		ID:          uuid.NewString(),
		UserID:      ag.UserID,
		CompanyID:   ag.CompanyID,
		Type:        "payment",
		Title:       "Pagamento Confirmado",
		Description: fmt.Sprintf("Seu pagamento de R$ %.2f foi confirmado!", amount),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[sync][usecase] notification insert failed agreement_id=%s err=%v", ag.ID, err)
	}
}

func (u *PaymentSyncUseCase) reopenDebt(ctx context.Context, ag entities.Agreement, marker entities.NegotiationMarker) {
	if ag.DebtID == "" {
		return
	}
	if err := u.debts.UpdateStatus(ctx, ag.DebtID, entities.DebtStatusPending); err != nil {
		log.Printf("[sync][usecase] debt reopen failed debt_id=%s err=%v", ag.DebtID, err)
	}
	u.updateSourceRecordMarker(ctx, ag.DebtID, &marker)
}

// updateSourceRecordMarker follows the debt's external linkage back to its
// VMAX row. Debts created outside the import flow have none; that is fine.
func (u *PaymentSyncUseCase) updateSourceRecordMarker(ctx context.Context, debtID string, marker *entities.NegotiationMarker) {
	debt, err := u.debts.GetByID(ctx, debtID)
	if err != nil || debt.ExternalID == "" {
		if err != nil {
			log.Printf("[sync][usecase] debt lookup failed debt_id=%s err=%v", debtID, err)
		}
		return
	}
	if err := u.sourceRecords.UpdateNegotiationStatus(ctx, debt.ExternalID, marker); err != nil {
		log.Printf("[sync][usecase] vmax marker update failed record_id=%s err=%v", debt.ExternalID, err)
	}
}

// repairStuckRecords is Pass B: close the gap between VMAX rows that believe
// they have no negotiation and the ASAAS state that says otherwise, then
// re-check drafts that got a customer but never a charge.
func (u *PaymentSyncUseCase) repairStuckRecords(ctx context.Context, companyID string, report *SyncReport) {
	records, err := u.sourceRecords.ListUnmarkedByCompany(ctx, companyID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair: list source records: %v", err))
	} else {
		for _, rec := range records {
			u.repairSourceRecord(ctx, companyID, rec, report)
		}
	}

	drafts, err := u.agreements.ListDraftsMissingCharge(ctx, companyID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair: list drafts: %v", err))
		return
	}
	for _, draft := range drafts {
		u.repairDraftAgreement(ctx, draft, report)
	}
}

func (u *PaymentSyncUseCase) repairSourceRecord(ctx context.Context, companyID string, rec entities.SourceRecord, report *SyncReport) {
	defer func() {
		if r := recover(); r != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: unexpected failure: %v", rec.ID, r))
		}
	}()

	document := onlyDigits(rec.Document)
	if len(document) != 11 && len(document) != 14 {
		return
	}

	gwCustomer, err := u.gateway.GetCustomerByDocument(ctx, document)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
		return
	}
	if gwCustomer.ID == "" {
		// No external state exists: genuinely nothing to repair.
		return
	}

	charges, err := u.gateway.ListCustomerCharges(ctx, gwCustomer.ID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
		return
	}
	if len(charges) == 0 {
		// Customer provisioned but the charge never happened: a human has to
		// send a new negotiation, fabricating one here would be a lie.
		report.IncompleteAgreements = append(report.IncompleteAgreements, IncompleteAgreement{
			SourceRecordID:  rec.ID,
			CustomerName:    rec.CustomerName,
			AsaasCustomerID: gwCustomer.ID,
			Reason:          "cliente ASAAS sem cobranças; enviar nova negociação",
		})
		return
	}

	latest := mostRecentCharge(charges)

	localCustomer, err := u.customers.GetByDocument(ctx, document, companyID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
		return
	}

	var agreement entities.Agreement
	if localCustomer.ID != "" {
		agreement, err = u.agreements.GetLatestByCustomer(ctx, localCustomer.ID, companyID)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
	}

	marker := entities.NegotiationMarkerSent

	switch {
	case agreement.ID != "" && agreement.AsaasPaymentID != "":
		// Everything exists; only the VMAX marker lagged behind.
		if err := u.sourceRecords.UpdateNegotiationStatus(ctx, rec.ID, &marker); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
		report.StuckFixed++
		report.StuckDetails = append(report.StuckDetails, StuckRepair{
			SourceRecordID: rec.ID, AgreementID: agreement.ID, Action: RepairActionMarkerCaughtUp,
		})

	case agreement.ID != "":
		if err := u.agreements.AttachCharge(ctx, agreement.ID, chargeLinks(latest)); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
		if err := u.sourceRecords.UpdateNegotiationStatus(ctx, rec.ID, &marker); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
		report.StuckFixed++
		report.StuckDetails = append(report.StuckDetails, StuckRepair{
			SourceRecordID: rec.ID, AgreementID: agreement.ID, Action: RepairActionChargeAttached,
		})

	default:
		synthesized, err := u.synthesizeAgreement(ctx, companyID, rec, localCustomer, gwCustomer, latest)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
		if err := u.sourceRecords.UpdateNegotiationStatus(ctx, rec.ID, &marker); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair %s: %v", rec.ID, err))
			return
		}
		report.StuckFixed++
		report.StuckDetails = append(report.StuckDetails, StuckRepair{
			SourceRecordID: rec.ID, AgreementID: synthesized.ID, Action: RepairActionAgreementSynthesized,
		})
	}
}

// synthesizeAgreement rebuilds the local side from the external truth: the
// charge exists on ASAAS, so customer, debt and an already-active agreement
// are created to match it.
func (u *PaymentSyncUseCase) synthesizeAgreement(
	ctx context.Context,
	companyID string,
	rec entities.SourceRecord,
	localCustomer entities.Customer,
	gwCustomer interfaces.GatewayCustomer,
	charge interfaces.GatewayCharge,
) (entities.Agreement, error) {
	now := time.Now().UTC()

	if localCustomer.ID == "" {
		name := rec.CustomerName
		if name == "" {
			name = gwCustomer.Name
		}
		document := onlyDigits(rec.Document)
		created, err := u.customers.Create(ctx, entities.Customer{
			ID:           uuid.NewString(),
			CompanyID:    companyID,
			Name:         name,
			Document:     document,
			DocumentType: entities.DocumentTypeFor(document),
			Phone:        onlyDigits(rec.ContactPhone()),
			Email:        rec.Email,
			SourceSystem: "VMAX",
			ExternalID:   rec.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return entities.Agreement{}, err
		}
		localCustomer = created
	}

	amount := parseBRLAmount(rec.OverdueAmount)
	if amount <= 0 {
		amount = charge.Value
	}

	debt, err := u.debts.Create(ctx, entities.Debt{
		ID:           uuid.NewString(),
		CustomerID:   localCustomer.ID,
		CompanyID:    companyID,
		Amount:       amount,
		DueDate:      charge.DueDate,
		Description:  fmt.Sprintf("Dívida de %s", localCustomer.Name),
		Status:       entities.DebtStatusInNegotiation,
		SourceSystem: "VMAX",
		ExternalID:   rec.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entities.Agreement{}, err
	}

	paymentStatus, known := asaasStatusMap[charge.Status]
	if !known {
		paymentStatus = entities.PaymentStatusPending
	}

	return u.agreements.Create(ctx, entities.Agreement{
		ID:                uuid.NewString(),
		DebtID:            debt.ID,
		CustomerID:        localCustomer.ID,
		CompanyID:         companyID,
		OriginalAmount:    amount,
		AgreedAmount:      charge.Value,
		Installments:      1,
		InstallmentAmount: charge.Value,
		DueDate:           charge.DueDate,
		Status:            entities.AgreementStatusActive,
		PaymentStatus:     paymentStatus,
		AsaasCustomerID:   gwCustomer.ID,
		AsaasPaymentID:    charge.ID,
		AsaasPaymentURL:   charge.InvoiceURL,
		AsaasPixQRCodeURL: charge.PixQRCodeURL,
		AsaasBoletoURL:    charge.BankSlipURL,
		AsaasStatus:       charge.Status,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (u *PaymentSyncUseCase) repairDraftAgreement(ctx context.Context, draft entities.Agreement, report *SyncReport) {
	defer func() {
		if r := recover(); r != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("repair draft %s: unexpected failure: %v", draft.ID, r))
		}
	}()

	charges, err := u.gateway.ListCustomerCharges(ctx, draft.AsaasCustomerID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair draft %s: %v", draft.ID, err))
		return
	}

	if len(charges) == 0 {
		if !hasIncompleteAgreement(report.IncompleteAgreements, draft.ID) {
			report.IncompleteAgreements = append(report.IncompleteAgreements, IncompleteAgreement{
				AgreementID:     draft.ID,
				AsaasCustomerID: draft.AsaasCustomerID,
				Reason:          "acordo em rascunho sem cobrança ASAAS; enviar nova negociação",
			})
		}
		return
	}

	latest := mostRecentCharge(charges)
	if err := u.agreements.AttachCharge(ctx, draft.ID, chargeLinks(latest)); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("repair draft %s: %v", draft.ID, err))
		return
	}
	report.StuckFixed++
	report.StuckDetails = append(report.StuckDetails, StuckRepair{
		AgreementID: draft.ID, Action: RepairActionChargeAttached,
	})
}

// mostRecentCharge picks by dateCreated; older charges are intentionally
// ignored, matching how operators use ASAAS today.
func mostRecentCharge(charges []interfaces.GatewayCharge) interfaces.GatewayCharge {
	latest := charges[0]
	for _, c := range charges[1:] {
		if strings.Compare(c.DateCreated, latest.DateCreated) > 0 {
			latest = c
		}
	}
	return latest
}

func chargeLinks(c interfaces.GatewayCharge) interfaces.AgreementChargeLinks {
	return interfaces.AgreementChargeLinks{
		PaymentID:    c.ID,
		PaymentURL:   c.InvoiceURL,
		PixQRCodeURL: c.PixQRCodeURL,
		BoletoURL:    c.BankSlipURL,
	}
}

func hasIncompleteAgreement(list []IncompleteAgreement, agreementID string) bool {
	for _, ia := range list {
		if ia.AgreementID == agreementID {
			return true
		}
	}
	return false
}
