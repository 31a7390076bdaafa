package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"alteapay/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const resendBaseURL = "https://api.resend.com"

// ResendEmailSender delivers collection emails through the Resend REST API.
type ResendEmailSender struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

var _ interfaces.IEmailSender = (*ResendEmailSender)(nil)

func NewResendEmailSender(baseURL, apiKey, from string) (*ResendEmailSender, error) {
	if apiKey == "" {
		log.Printf("[email][sender] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	if baseURL == "" {
		baseURL = resendBaseURL
	}
	if from == "" {
		from = "AlteaPay <cobranca@alteapay.com>"
	}
	return &ResendEmailSender{
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type resendMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendEmailSender) SendEmail(ctx context.Context, params interfaces.EmailParams) error {
	msg := resendMessage{
		From:    s.from,
		To:      []string{params.To},
		Subject: fmt.Sprintf("Proposta de Negociação - %s", params.CompanyName),
		HTML:    collectionEmailHTML(params),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email: resend status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	log.Printf("[email][sender] sent to=%s", params.To)
	return nil
}

func collectionEmailHTML(params interfaces.EmailParams) string {
	return fmt.Sprintf(
		`<p>Olá %s,</p>
<p>A %s tem uma proposta de negociação para você no valor de <strong>R$ %.2f</strong>, com vencimento em %s.</p>
<p><a href="%s">Acessar proposta de pagamento</a></p>`,
		params.CustomerName, params.CompanyName, params.Amount, params.DueDate, params.PaymentLink,
	)
}
