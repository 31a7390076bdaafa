package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"alteapay/internal/usecase/interfaces"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const defaultBaseURL = "https://api.asaas.com/v3"

// AsaasGateway talks to the ASAAS REST API (v3). ASAAS publishes no Go SDK,
// so this is a thin JSON/HTTP client authenticating via the access_token
// header.
type AsaasGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

func NewAsaasGateway(baseURL, apiKey string) (*AsaasGateway, error) {
	if apiKey == "" {
		log.Printf("[asaas][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[asaas][gateway] client initialized base_url=%s", baseURL)
	return &AsaasGateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// listEnvelope is the ASAAS pagination wrapper for collection endpoints.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type errorEnvelope struct {
	Errors []interfaces.ProviderError `json:"errors"`
}

func (g *AsaasGateway) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("asaas: marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("asaas: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("asaas: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("asaas: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gwErr := &interfaces.GatewayError{StatusCode: resp.StatusCode}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil {
			gwErr.Errors = env.Errors
		}
		log.Printf("[asaas][gateway] request failed method=%s endpoint=%s status=%d err=%v",
			method, endpoint, resp.StatusCode, gwErr)
		return gwErr
	}

	// Success bodies can still carry an error list on some endpoints.
	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil && len(env.Errors) > 0 {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Errors: env.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("asaas: decode response: %w", err)
		}
	}
	return nil
}

func (g *AsaasGateway) GetCustomerByDocument(ctx context.Context, cpfCnpj string) (interfaces.GatewayCustomer, error) {
	var env listEnvelope[interfaces.GatewayCustomer]
	endpoint := "/customers?cpfCnpj=" + url.QueryEscape(cpfCnpj)
	if err := g.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	if len(env.Data) == 0 {
		return interfaces.GatewayCustomer{}, nil
	}
	return env.Data[0], nil
}

func (g *AsaasGateway) CreateCustomer(ctx context.Context, params interfaces.CreateGatewayCustomerParams) (interfaces.GatewayCustomer, error) {
	log.Printf("[asaas][gateway] create customer cpf_cnpj=%s", params.CpfCnpj)
	var customer interfaces.GatewayCustomer
	if err := g.do(ctx, http.MethodPost, "/customers", params, &customer); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	return customer, nil
}

func (g *AsaasGateway) UpdateCustomer(ctx context.Context, customerID string, params interfaces.UpdateGatewayCustomerParams) (interfaces.GatewayCustomer, error) {
	var customer interfaces.GatewayCustomer
	if err := g.do(ctx, http.MethodPut, "/customers/"+customerID, params, &customer); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	return customer, nil
}

func (g *AsaasGateway) ListCustomerNotifications(ctx context.Context, customerID string) ([]interfaces.GatewayNotification, error) {
	var env listEnvelope[interfaces.GatewayNotification]
	if err := g.do(ctx, http.MethodGet, "/customers/"+customerID+"/notifications", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (g *AsaasGateway) UpdateNotification(ctx context.Context, notificationID string, params interfaces.UpdateGatewayNotificationParams) error {
	return g.do(ctx, http.MethodPut, "/notifications/"+notificationID, params, nil)
}

func (g *AsaasGateway) CreateCharge(ctx context.Context, params interfaces.CreateGatewayChargeParams) (interfaces.GatewayCharge, error) {
	log.Printf("[asaas][gateway] create charge customer=%s value=%.2f billing_type=%s",
		params.Customer, params.Value, params.BillingType)
	var charge interfaces.GatewayCharge
	if err := g.do(ctx, http.MethodPost, "/payments", params, &charge); err != nil {
		return interfaces.GatewayCharge{}, err
	}
	return charge, nil
}

// GetCharge maps "gone" answers (plain 404 or an error body saying not found)
// to ErrChargeNotFound so callers can treat deletion as a domain event.
func (g *AsaasGateway) GetCharge(ctx context.Context, chargeID string) (interfaces.GatewayCharge, error) {
	var charge interfaces.GatewayCharge
	err := g.do(ctx, http.MethodGet, "/payments/"+chargeID, nil, &charge)
	if err != nil {
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) && gwErr.IndicatesNotFound() {
			return interfaces.GatewayCharge{}, fmt.Errorf("%w: %s", interfaces.ErrChargeNotFound, chargeID)
		}
		return interfaces.GatewayCharge{}, err
	}
	return charge, nil
}

func (g *AsaasGateway) ListCustomerCharges(ctx context.Context, customerID string) ([]interfaces.GatewayCharge, error) {
	var env listEnvelope[interfaces.GatewayCharge]
	endpoint := "/payments?customer=" + url.QueryEscape(customerID)
	if err := g.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (g *AsaasGateway) ResendChargeNotification(ctx context.Context, chargeID string) error {
	return g.do(ctx, http.MethodPost, "/payments/"+chargeID+"/resendNotification", nil, nil)
}
