package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"alteapay/internal/domain/entities"
	"alteapay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingCompanyID  = errors.New("missing company id")
	ErrNoRecordsSelected = errors.New("no source records selected")
)

const (
	// ASAAS rate limits are the bottleneck: five in-flight records per chunk,
	// chunks strictly sequential.
	negotiationChunkSize = 5

	// Negotiations and synthesized debts fall due this many days out.
	defaultDueInDays = 30
)

type DiscountType string

const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// BulkNegotiationParams is the fully-enumerated batch configuration.
type BulkNegotiationParams struct {
	CompanyID            string
	SourceRecordIDs      []string
	DiscountType         DiscountType
	DiscountValue        float64
	PaymentMethods       []string
	NotificationChannels []string
	UserID               string
	AttendantName        string
}

const (
	NegotiationStatusSuccess = "success"
	NegotiationStatusFailed  = "failed"
)

// NegotiationResult is the per-record outcome. External reference fields stay
// set even on recoverable failures so callers can see what already exists on
// the ASAAS side.
type NegotiationResult struct {
	SourceRecordID       string          `json:"source_record_id"`
	CustomerName         string          `json:"customer_name"`
	CpfCnpj              string          `json:"cpf_cnpj"`
	Status               string          `json:"status"`
	FailedAtStep         NegotiationStep `json:"failed_at_step,omitempty"`
	Error                *StepError      `json:"error,omitempty"`
	AsaasCustomerCreated bool            `json:"asaas_customer_created,omitempty"`
	AsaasChargeCreated   bool            `json:"asaas_charge_created,omitempty"`
	AsaasCustomerID      string          `json:"asaas_customer_id,omitempty"`
	AsaasPaymentID       string          `json:"asaas_payment_id,omitempty"`
	PaymentURL           string          `json:"payment_url,omitempty"`
}

// BulkNegotiationReport aggregates a whole batch invocation.
type BulkNegotiationReport struct {
	Sent         int                 `json:"sent"`
	Failed       int                 `json:"failed"`
	Total        int                 `json:"total"`
	Results      []NegotiationResult `json:"results"`
	ErrorSummary map[string]int      `json:"error_summary,omitempty"`
}

// IBulkNegotiationUseCase sends a batch of negotiations: per source record it
// provisions local customer/debt/agreement rows plus an ASAAS customer and
// charge, linked together, or reports a precisely classified failure.

type IBulkNegotiationUseCase interface {
	SendBulkNegotiations(ctx context.Context, params BulkNegotiationParams) (BulkNegotiationReport, error)
}

type BulkNegotiationUseCase struct {
	sourceRecords interfaces.ISourceRecordRepository
	customers     interfaces.ICustomerRepository
	debts         interfaces.IDebtRepository
	agreements    interfaces.IAgreementRepository
	actions       interfaces.ICollectionActionRepository
	companies     interfaces.ICompanyRepository
	gateway       interfaces.IPaymentGateway
	sms           interfaces.ISMSSender
	email         interfaces.IEmailSender
}

var _ IBulkNegotiationUseCase = (*BulkNegotiationUseCase)(nil)

func NewBulkNegotiationUseCase(
	sourceRecords interfaces.ISourceRecordRepository,
	customers interfaces.ICustomerRepository,
	debts interfaces.IDebtRepository,
	agreements interfaces.IAgreementRepository,
	actions interfaces.ICollectionActionRepository,
	companies interfaces.ICompanyRepository,
	gateway interfaces.IPaymentGateway,
	sms interfaces.ISMSSender,
	email interfaces.IEmailSender,
) *BulkNegotiationUseCase {
	return &BulkNegotiationUseCase{
		sourceRecords: sourceRecords,
		customers:     customers,
		debts:         debts,
		agreements:    agreements,
		actions:       actions,
		companies:     companies,
		gateway:       gateway,
		sms:           sms,
		email:         email,
	}
}

func (u *BulkNegotiationUseCase) SendBulkNegotiations(ctx context.Context, params BulkNegotiationParams) (BulkNegotiationReport, error) {
	if strings.TrimSpace(params.CompanyID) == "" {
		return BulkNegotiationReport{}, ErrMissingCompanyID
	}
	if len(params.SourceRecordIDs) == 0 {
		return BulkNegotiationReport{}, ErrNoRecordsSelected
	}
	if u.gateway == nil {
		return BulkNegotiationReport{}, errors.New("payment gateway not configured")
	}

	total := len(params.SourceRecordIDs)
	totalChunks := (total + negotiationChunkSize - 1) / negotiationChunkSize
	log.Printf("[negotiation][usecase] batch start company_id=%s records=%d chunks=%d chunk_size=%d",
		params.CompanyID, total, totalChunks, negotiationChunkSize)

	results := make([]NegotiationResult, total)
	for start := 0; start < total; start += negotiationChunkSize {
		end := min(start+negotiationChunkSize, total)
		chunkNumber := start/negotiationChunkSize + 1

		// Workers never return errors, so Wait blocks until every record in
		// the chunk has settled; the next chunk only starts after that.
		g := new(errgroup.Group)
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = u.processRecord(ctx, params.SourceRecordIDs[i], params)
				return nil
			})
		}
		_ = g.Wait()

		log.Printf("[negotiation][usecase] chunk %d/%d done records=%d", chunkNumber, totalChunks, end-start)
	}

	report := BulkNegotiationReport{Total: total, Results: results, ErrorSummary: map[string]int{}}
	for _, r := range results {
		if r.Status == NegotiationStatusSuccess {
			report.Sent++
			continue
		}
		report.Failed++
		if r.Error != nil {
			key := strings.TrimSpace(strings.SplitN(r.Error.Message, ":", 2)[0])
			report.ErrorSummary[key]++
		}
	}
	if len(report.ErrorSummary) == 0 {
		report.ErrorSummary = nil
	}

	log.Printf("[negotiation][usecase] batch done company_id=%s sent=%d failed=%d total=%d",
		params.CompanyID, report.Sent, report.Failed, report.Total)
	return report, nil
}

// processRecord runs the full per-record pipeline. It never lets an error or
// panic escape: every outcome is folded into the returned result so one bad
// record cannot take the batch down.
func (u *BulkNegotiationUseCase) processRecord(ctx context.Context, recordID string, params BulkNegotiationParams) (res NegotiationResult) {
	res = NegotiationResult{SourceRecordID: recordID, Status: NegotiationStatusFailed}
	step := StepValidateData

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[negotiation][usecase] panic recovered record_id=%s step=%s err=%v", recordID, step, r)
			res.Status = NegotiationStatusFailed
			res.FailedAtStep = step
			res.Error = NewStepError(step, fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	fail := func(s NegotiationStep, err error) NegotiationResult {
		se := NewStepError(s, err)
		log.Printf("[negotiation][usecase] record failed record_id=%s step=%s recoverable=%t err=%v",
			recordID, s, se.Recoverable, err)
		res.Status = NegotiationStatusFailed
		res.FailedAtStep = s
		res.Error = se
		return res
	}

	// Step 1: validate_data. Nothing is written before this step passes.
	rec, err := u.sourceRecords.GetByID(ctx, recordID)
	if err != nil {
		return fail(StepValidateData, err)
	}
	if rec.ID == "" {
		return fail(StepValidateData, errors.New("registro VMAX não encontrado"))
	}
	res.CustomerName = rec.CustomerName
	if res.CustomerName == "" {
		res.CustomerName = "Cliente"
	}

	document := onlyDigits(rec.Document)
	res.CpfCnpj = document
	if len(document) != 11 && len(document) != 14 {
		return fail(StepValidateData, errors.New("CPF/CNPJ inválido ou não cadastrado"))
	}

	originalAmount := parseBRLAmount(rec.OverdueAmount)
	if originalAmount <= 0 {
		return fail(StepValidateData, errors.New("dívida com valor zero"))
	}

	phone := onlyDigits(rec.ContactPhone())
	email := rec.Email

	// Step 2: create_customer_db. (document, company) is the idempotency key:
	// a second run for the same pair updates, never inserts.
	step = StepCreateCustomerDB
	existing, err := u.customers.GetByDocument(ctx, document, params.CompanyID)
	if err != nil {
		return fail(StepCreateCustomerDB, err)
	}

	var customerID string
	if existing.ID != "" {
		// The customers table usually has fresher contact data than VMAX.
		if existing.Phone != "" {
			phone = onlyDigits(existing.Phone)
		}
		if existing.Email != "" {
			email = existing.Email
		}
		customerID = existing.ID
		if err := u.customers.UpdateContact(ctx, existing.ID, res.CustomerName, phone, email); err != nil {
			return fail(StepCreateCustomerDB, err)
		}
	} else {
		now := time.Now().UTC()
		created, err := u.customers.Create(ctx, entities.Customer{
			ID:           uuid.NewString(),
			CompanyID:    params.CompanyID,
			Name:         res.CustomerName,
			Document:     document,
			DocumentType: entities.DocumentTypeFor(document),
			Phone:        phone,
			Email:        email,
			SourceSystem: "VMAX",
			ExternalID:   recordID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fail(StepCreateCustomerDB, err)
		}
		customerID = created.ID
	}

	// Step 3: create_debt_db. The most recent debt is the active one.
	step = StepCreateDebtDB
	var debtID string
	latestDebt, err := u.debts.GetLatestByCustomer(ctx, customerID, params.CompanyID)
	if err != nil {
		return fail(StepCreateDebtDB, err)
	}
	if latestDebt.ID != "" {
		debtID = latestDebt.ID
		if err := u.debts.UpdateForNegotiation(ctx, latestDebt.ID, originalAmount); err != nil {
			return fail(StepCreateDebtDB, err)
		}
	} else {
		now := time.Now().UTC()
		created, err := u.debts.Create(ctx, entities.Debt{
			ID:           uuid.NewString(),
			CustomerID:   customerID,
			CompanyID:    params.CompanyID,
			Amount:       originalAmount,
			DueDate:      dueDateFrom(now),
			Description:  fmt.Sprintf("Dívida de %s", res.CustomerName),
			Status:       entities.DebtStatusInNegotiation,
			SourceSystem: "VMAX",
			ExternalID:   recordID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fail(StepCreateDebtDB, err)
		}
		debtID = created.ID
	}

	// Step 4: create_asaas_customer. Email stays off the ASAAS side: AlteaPay
	// owns email delivery, ASAAS only gets the phone for WhatsApp.
	step = StepCreateAsaasCustomer
	gwCustomer, err := u.gateway.GetCustomerByDocument(ctx, document)
	if err != nil {
		return fail(StepCreateAsaasCustomer, err)
	}
	if gwCustomer.ID != "" {
		if _, err := u.gateway.UpdateCustomer(ctx, gwCustomer.ID, interfaces.UpdateGatewayCustomerParams{
			MobilePhone:          phone,
			NotificationDisabled: false,
		}); err != nil {
			return fail(StepCreateAsaasCustomer, err)
		}
	} else {
		created, err := u.gateway.CreateCustomer(ctx, interfaces.CreateGatewayCustomerParams{
			Name:                 res.CustomerName,
			CpfCnpj:              document,
			MobilePhone:          phone,
			NotificationDisabled: false,
		})
		if err != nil {
			return fail(StepCreateAsaasCustomer, err)
		}
		gwCustomer = created
		res.AsaasCustomerCreated = true
	}
	res.AsaasCustomerID = gwCustomer.ID

	// Notification preferences are best-effort: the customer exists either way.
	u.configureChargeNotifications(ctx, gwCustomer.ID, params.NotificationChannels)

	// Step 5: create_agreement_db. Draft until the charge exists.
	step = StepCreateAgreementDB
	discountAmount := computeDiscount(params.DiscountType, params.DiscountValue, originalAmount)
	agreedAmount := originalAmount - discountAmount
	discountPercentage := 0.0
	if originalAmount > 0 {
		discountPercentage = discountAmount / originalAmount * 100
	}

	now := time.Now().UTC()
	dueDateStr := dueDateFrom(now)
	agreement, err := u.agreements.Create(ctx, entities.Agreement{
		ID:                 uuid.NewString(),
		DebtID:             debtID,
		CustomerID:         customerID,
		UserID:             params.UserID,
		CompanyID:          params.CompanyID,
		OriginalAmount:     originalAmount,
		AgreedAmount:       agreedAmount,
		DiscountAmount:     discountAmount,
		DiscountPercentage: discountPercentage,
		Installments:       1,
		InstallmentAmount:  agreedAmount,
		DueDate:            dueDateStr,
		Status:             entities.AgreementStatusDraft,
		PaymentStatus:      entities.PaymentStatusPending,
		AttendantName:      params.AttendantName,
		AsaasCustomerID:    gwCustomer.ID,
		Terms: entities.AgreementTerms{
			PaymentMethods:       params.PaymentMethods,
			NotificationChannels: params.NotificationChannels,
			DiscountType:         string(params.DiscountType),
			DiscountValue:        params.DiscountValue,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fail(StepCreateAgreementDB, err)
	}

	// Step 6: create_asaas_payment. A failed charge must not leave the draft
	// behind, so the draft is deleted before reporting.
	step = StepCreateAsaasPayment
	charge, err := u.gateway.CreateCharge(ctx, interfaces.CreateGatewayChargeParams{
		Customer:          gwCustomer.ID,
		BillingType:       billingTypeFor(params.PaymentMethods),
		Value:             agreedAmount,
		DueDate:           dueDateStr,
		Description:       fmt.Sprintf("Acordo de negociação - %s", res.CustomerName),
		ExternalReference: fmt.Sprintf("agreement_%s", agreement.ID),
		PostalService:     false,
	})
	if err != nil {
		if delErr := u.agreements.Delete(ctx, agreement.ID); delErr != nil {
			log.Printf("[negotiation][usecase] draft cleanup failed agreement_id=%s err=%v", agreement.ID, delErr)
		}
		return fail(StepCreateAsaasPayment, err)
	}
	res.AsaasChargeCreated = true
	res.AsaasPaymentID = charge.ID
	res.PaymentURL = charge.InvoiceURL

	// Step 7: update_agreement_db. The charge already exists, so a failed link
	// write is recoverable: the sync repair pass re-derives it later. One
	// immediate retry, no rollback of the charge.
	step = StepUpdateAgreementDB
	links := interfaces.AgreementChargeLinks{
		PaymentID:    charge.ID,
		PaymentURL:   charge.InvoiceURL,
		PixQRCodeURL: charge.PixQRCodeURL,
		BoletoURL:    charge.BankSlipURL,
	}
	if err := retryOnce(func() error {
		return u.agreements.AttachCharge(ctx, agreement.ID, links)
	}); err != nil {
		return fail(StepUpdateAgreementDB, err)
	}

	// Step 8: update_vmax_status. ASAAS already confirmed; a stale marker is
	// log-only, never a record failure.
	step = StepUpdateVmaxStatus
	marker := entities.NegotiationMarkerSent
	if err := u.sourceRecords.UpdateNegotiationStatus(ctx, recordID, &marker); err != nil {
		se := NewStepError(StepUpdateVmaxStatus, err)
		log.Printf("[negotiation][usecase] vmax marker update failed record_id=%s recoverable=%t err=%v",
			recordID, se.Recoverable, err)
	}

	u.recordCollectionActions(ctx, params, customerID, debtID, originalAmount, agreedAmount)

	// Non-critical side effects run detached: the result below is already
	// final, so notification failures are observable only in logs.
	go u.sendNotificationsInBackground(params, res.CustomerName, email, phone, agreedAmount, dueDateStr, charge.InvoiceURL, charge.ID, gwCustomer.ID)

	res.Status = NegotiationStatusSuccess
	return res
}

// configureChargeNotifications flips the PAYMENT_CREATED preference so that
// ASAAS only ever sends WhatsApp: AlteaPay owns email (Resend) and SMS (Twilio).
func (u *BulkNegotiationUseCase) configureChargeNotifications(ctx context.Context, gwCustomerID string, channels []string) {
	notifs, err := u.gateway.ListCustomerNotifications(ctx, gwCustomerID)
	if err != nil {
		log.Printf("[negotiation][usecase] notification list failed asaas_customer_id=%s err=%v", gwCustomerID, err)
		return
	}
	enableWhatsApp := containsString(channels, "whatsapp")
	for _, n := range notifs {
		if n.Event != interfaces.NotificationEventPaymentCreated {
			continue
		}
		if err := u.gateway.UpdateNotification(ctx, n.ID, interfaces.UpdateGatewayNotificationParams{
			Enabled:                    enableWhatsApp,
			EmailEnabledForCustomer:    false,
			SMSEnabledForCustomer:      false,
			WhatsappEnabledForCustomer: enableWhatsApp,
		}); err != nil {
			log.Printf("[negotiation][usecase] notification config failed asaas_customer_id=%s err=%v", gwCustomerID, err)
		}
		return
	}
}

func (u *BulkNegotiationUseCase) recordCollectionActions(ctx context.Context, params BulkNegotiationParams, customerID, debtID string, originalAmount, agreedAmount float64) {
	if u.actions == nil {
		return
	}
	for _, channel := range params.NotificationChannels {
		_, err := u.actions.Create(ctx, entities.CollectionAction{
			ID:         uuid.NewString(),
			CompanyID:  params.CompanyID,
			CustomerID: customerID,
			DebtID:     debtID,
			ActionType: channel,
			Status:     "sent",
			SentBy:     params.UserID,
			SentAt:     time.Now().UTC(),
			Message:    fmt.Sprintf("Negociação enviada via %s. Valor: R$ %.2f", channel, agreedAmount),
			Metadata: entities.CollectionActionMetadata{
				PaymentMethods:       params.PaymentMethods,
				NotificationChannels: params.NotificationChannels,
				DiscountType:         string(params.DiscountType),
				DiscountValue:        params.DiscountValue,
				OriginalAmount:       originalAmount,
				AgreedAmount:         agreedAmount,
			},
		})
		if err != nil {
			log.Printf("[negotiation][usecase] collection action insert failed customer_id=%s channel=%s err=%v", customerID, channel, err)
		}
	}
}

// sendNotificationsInBackground dispatches SMS/WhatsApp/email after the record
// result is sealed. It runs on a fresh context: the originating request may be
// long gone by the time a provider answers.
func (u *BulkNegotiationUseCase) sendNotificationsInBackground(
	params BulkNegotiationParams,
	customerName, customerEmail, customerPhone string,
	agreedAmount float64,
	dueDate, paymentURL, chargeID, gwCustomerID string,
) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[notifications][usecase] background dispatch panic customer=%s err=%v", customerName, r)
		}
	}()

	ctx := context.Background()

	companyName := "Empresa"
	if u.companies != nil {
		if name, err := u.companies.GetName(ctx, params.CompanyID); err == nil && name != "" {
			companyName = name
		}
	}

	if containsString(params.NotificationChannels, "sms") && customerPhone != "" && u.sms != nil {
		err := u.sms.SendSMS(ctx, interfaces.SMSParams{
			To:           formatPhoneE164(customerPhone),
			CustomerName: customerName,
			CompanyName:  companyName,
			Amount:       agreedAmount,
			PaymentLink:  paymentURL,
		})
		if err != nil {
			log.Printf("[notifications][usecase] sms failed customer=%s err=%v", customerName, err)
		}
	}

	if containsString(params.NotificationChannels, "whatsapp") && customerPhone != "" && gwCustomerID != "" {
		u.configureChargeNotifications(ctx, gwCustomerID, []string{"whatsapp"})
		if chargeID != "" {
			if err := u.gateway.ResendChargeNotification(ctx, chargeID); err != nil {
				log.Printf("[notifications][usecase] whatsapp resend failed customer=%s err=%v", customerName, err)
			}
		}
	}

	if customerEmail != "" && u.email != nil {
		err := u.email.SendEmail(ctx, interfaces.EmailParams{
			To:           customerEmail,
			CustomerName: customerName,
			CompanyName:  companyName,
			Amount:       agreedAmount,
			DueDate:      dueDate,
			PaymentLink:  paymentURL,
		})
		if err != nil {
			log.Printf("[notifications][usecase] email failed customer=%s err=%v", customerName, err)
		}
	}
}

// billingTypeFor constrains the charge to a single billing type only when
// exactly one payment method was requested.
func billingTypeFor(paymentMethods []string) string {
	if len(paymentMethods) != 1 {
		return interfaces.BillingTypeUndefined
	}
	switch paymentMethods[0] {
	case "boleto":
		return interfaces.BillingTypeBoleto
	case "pix":
		return interfaces.BillingTypePix
	case "credit_card":
		return interfaces.BillingTypeCreditCard
	default:
		return interfaces.BillingTypeUndefined
	}
}

// computeDiscount keeps the result within [0, original]: a percentage applies
// proportionally, a fixed value is capped at the original amount.
func computeDiscount(discountType DiscountType, value, original float64) float64 {
	if value <= 0 {
		return 0
	}
	switch discountType {
	case DiscountTypePercentage:
		return original * value / 100
	case DiscountTypeFixed:
		return min(value, original)
	default:
		return 0
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseBRLAmount converts "R$ 1.234,56"-style strings to a float. Anything
// unparseable counts as zero, which validate_data rejects.
func parseBRLAmount(s string) float64 {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatPhoneE164 normalizes Brazilian numbers to +55 form.
func formatPhoneE164(phone string) string {
	digits := onlyDigits(phone)
	if len(digits) >= 10 && !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return "+" + digits
}

func dueDateFrom(t time.Time) string {
	return t.AddDate(0, 0, defaultDueInDays).Format("2006-01-02")
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
