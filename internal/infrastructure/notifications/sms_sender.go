package notifications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alteapay/internal/usecase/interfaces"
)

var ErrMissingTwilioCredentials = errors.New("missing TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN")

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioSMSSender delivers collection SMS through the Twilio Messages API.
// It sits behind ISMSSender and is only ever called fire-and-forget.
type TwilioSMSSender struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
}

var _ interfaces.ISMSSender = (*TwilioSMSSender)(nil)

func NewTwilioSMSSender(baseURL, accountSID, authToken, fromNumber string) (*TwilioSMSSender, error) {
	if accountSID == "" || authToken == "" {
		log.Printf("[sms][sender] missing twilio credentials")
		return nil, ErrMissingTwilioCredentials
	}
	if baseURL == "" {
		baseURL = twilioBaseURL
	}
	return &TwilioSMSSender{
		baseURL:    baseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (s *TwilioSMSSender) SendSMS(ctx context.Context, params interfaces.SMSParams) error {
	body := collectionSMSBody(params)

	form := url.Values{}
	form.Set("To", params.To)
	form.Set("From", s.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms: twilio status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	log.Printf("[sms][sender] sent to=%s", params.To)
	return nil
}

// collectionSMSBody renders the debt-collection SMS template.
func collectionSMSBody(params interfaces.SMSParams) string {
	return fmt.Sprintf(
		"%s, você tem uma proposta de negociação de R$ %.2f com %s. Acesse: %s",
		params.CustomerName, params.Amount, params.CompanyName, params.PaymentLink,
	)
}
