package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const defaultBaseURL = "https://api.resend.com"

// Message is a single transactional email handed to a Sender.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Receipt is the outcome of a successful send. Simulated marks deliveries
// that were logged instead of handed to the provider.
type Receipt struct {
	ID        string
	Simulated bool
}

// Sender delivers a message, exactly one attempt per call.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// ProviderError is returned when Resend explicitly rejects a message.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("resend rejected message (status %d): %s", e.StatusCode, e.Message)
}

// Client sends mail through the Resend REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, msg Message) (*Receipt, error) {
	payload, err := json.Marshal(sendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return nil, fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
			errResp.Message = string(body)
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	var sendResp sendResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		return nil, fmt.Errorf("decode resend response: %w", err)
	}

	return &Receipt{ID: sendResp.ID}, nil
}

// SimulatedSender logs deliveries instead of sending them. Used when no
// Resend API key is configured so the form keeps working in development.
type SimulatedSender struct {
	log *slog.Logger
}

func NewSimulatedSender(log *slog.Logger) *SimulatedSender {
	return &SimulatedSender{log: log}
}

func (s *SimulatedSender) Send(_ context.Context, msg Message) (*Receipt, error) {
	s.log.Info("email delivery simulated (Resend API key missing)",
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	s.log.Debug("simulated email body", "html", msg.HTML)
	return &Receipt{Simulated: true}, nil
}
