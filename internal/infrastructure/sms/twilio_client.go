// Package sms implementa os transportes de entrega dos alertas de dívida:
// o cliente REST da Twilio e o envio simulado usado em desenvolvimento.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioClient envia SMS pela API de mensagens da Twilio.
// Usa net/http da stdlib; não requer SDK.
type TwilioClient struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
}

// NewTwilioClient constrói o cliente com as credenciais da conta.
func NewTwilioClient(accountSID, authToken, from string) *TwilioClient {
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send entrega a mensagem ao número informado via POST .../Messages.json.
// A Twilio responde 201 quando aceita a mensagem para entrega.
func (t *TwilioClient) Send(ctx context.Context, phone, body string) error {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", t.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: montar requisição: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: enviar SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var te twilioError
	if json.Unmarshal(raw, &te) == nil && te.Message != "" {
		return fmt.Errorf("twilio: API retornou %d (código %d): %s", resp.StatusCode, te.Code, te.Message)
	}
	return fmt.Errorf("twilio: API retornou %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}
