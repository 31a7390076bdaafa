package interfaces

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrChargeNotFound is returned by GetCharge when ASAAS answers 404 or an error
// body indicating the charge no longer exists. Callers treat it as "deleted
// out-of-band", not as a transport failure.
var ErrChargeNotFound = errors.New("asaas charge not found")

// ProviderError is one entry of the ASAAS error payload.
type ProviderError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GatewayError carries the HTTP status and provider error list of a failed
// ASAAS call so upper layers can classify without string matching.
type GatewayError struct {
	StatusCode int
	Errors     []ProviderError
}

func (e *GatewayError) Error() string {
	if len(e.Errors) > 0 && e.Errors[0].Description != "" {
		return fmt.Sprintf("asaas: %s (status %d)", e.Errors[0].Description, e.StatusCode)
	}
	return fmt.Sprintf("asaas: request failed (status %d)", e.StatusCode)
}

// IndicatesNotFound reports whether the error payload means the resource is
// gone, which ASAAS sometimes signals with a 200-family error body instead of
// a plain 404.
func (e *GatewayError) IndicatesNotFound() bool {
	if e.StatusCode == 404 {
		return true
	}
	for _, pe := range e.Errors {
		if pe.Code == "invalid_action" || strings.Contains(strings.ToLower(pe.Description), "not found") {
			return true
		}
	}
	return false
}

// Billing types accepted by ASAAS charge creation.
const (
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypePix        = "PIX"
	BillingTypeUndefined  = "UNDEFINED"
)

// GatewayCustomer is an ASAAS customer as the workflow consumes it.
type GatewayCustomer struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	CpfCnpj              string `json:"cpfCnpj"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	MobilePhone          string `json:"mobilePhone,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled,omitempty"`
}

type CreateGatewayCustomerParams struct {
	Name                 string `json:"name"`
	CpfCnpj              string `json:"cpfCnpj"`
	MobilePhone          string `json:"mobilePhone,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
}

type UpdateGatewayCustomerParams struct {
	MobilePhone          string `json:"mobilePhone,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
}

// GatewayNotification is one notification-preference entry of an ASAAS customer.
type GatewayNotification struct {
	ID      string `json:"id"`
	Event   string `json:"event"`
	Enabled bool   `json:"enabled"`
}

// NotificationEventPaymentCreated is the only event the workflow reconfigures.
const NotificationEventPaymentCreated = "PAYMENT_CREATED"

type UpdateGatewayNotificationParams struct {
	Enabled                    bool `json:"enabled"`
	EmailEnabledForCustomer    bool `json:"emailEnabledForCustomer"`
	SMSEnabledForCustomer      bool `json:"smsEnabledForCustomer"`
	WhatsappEnabledForCustomer bool `json:"whatsappEnabledForCustomer"`
}

// GatewayCharge is an ASAAS payment/charge as the workflow consumes it.
type GatewayCharge struct {
	ID                string  `json:"id"`
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	NetValue          float64 `json:"netValue,omitempty"`
	DueDate           string  `json:"dueDate"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
	Status            string  `json:"status"`
	InvoiceURL        string  `json:"invoiceUrl,omitempty"`
	BankSlipURL       string  `json:"bankSlipUrl,omitempty"`
	PixQRCodeURL      string  `json:"pixQrCodeUrl,omitempty"`
	PaymentDate       string  `json:"paymentDate,omitempty"`
	DateCreated       string  `json:"dateCreated,omitempty"`
}

type CreateGatewayChargeParams struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	DueDate           string  `json:"dueDate"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
	PostalService     bool    `json:"postalService"`
}

// IPaymentGateway abstracts the ASAAS REST API (v3) down to the operations the
// negotiation and sync workflows consume.
//
// GetCustomerByDocument returns a zero-value customer (empty ID) when no match
// exists; that is not an error.

type IPaymentGateway interface {
	GetCustomerByDocument(ctx context.Context, cpfCnpj string) (GatewayCustomer, error)
	CreateCustomer(ctx context.Context, params CreateGatewayCustomerParams) (GatewayCustomer, error)
	UpdateCustomer(ctx context.Context, customerID string, params UpdateGatewayCustomerParams) (GatewayCustomer, error)
	ListCustomerNotifications(ctx context.Context, customerID string) ([]GatewayNotification, error)
	UpdateNotification(ctx context.Context, notificationID string, params UpdateGatewayNotificationParams) error
	CreateCharge(ctx context.Context, params CreateGatewayChargeParams) (GatewayCharge, error)
	GetCharge(ctx context.Context, chargeID string) (GatewayCharge, error)
	ListCustomerCharges(ctx context.Context, customerID string) ([]GatewayCharge, error)
	ResendChargeNotification(ctx context.Context, chargeID string) error
}
