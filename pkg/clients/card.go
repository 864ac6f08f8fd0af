package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SessionOpen     = "open"
	SessionComplete = "complete"
	SessionExpired  = "expired"

	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

var (
	ErrSessionNotFound = errors.New("card session not found")
	ErrUnexpectedReply = errors.New("unexpected card processor reply")
)

// RateLimitError is returned when the processor asks to slow down.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("card processor rate limit, retry after %s", e.RetryAfter)
}

// CardSession is a hosted checkout session as the processor reports it.
type CardSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	PaymentIntent string            `json:"payment_intent"`
	Created       int64             `json:"created"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Paid reports whether the processor captured the money for the session.
func (s CardSession) Paid() bool {
	return s.Status == SessionComplete && s.PaymentStatus == PaymentPaid
}

type CreateSessionRequest struct {
	UserID      int    `json:"-"`
	Pack        string `json:"-"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type CardClient struct {
	baseURL string
	apiKey  string
	client  HTTPClientI
}

func NewCardClient(baseURL, apiKey string, client HTTPClientI) *CardClient {
	return &CardClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (c *CardClient) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.apiKey)
	h.Set("Content-Type", "application/json")
	return h
}

// CreateSession opens a checkout session. Every call carries a fresh
// idempotency key so the processor never merges two purchase attempts.
func (c *CardClient) CreateSession(ctx context.Context, req CreateSessionRequest) (*CardSession, error) {
	payload := struct {
		CreateSessionRequest
		ClientReferenceID string            `json:"client_reference_id"`
		Metadata          map[string]string `json:"metadata"`
	}{
		CreateSessionRequest: req,
		ClientReferenceID:    strconv.Itoa(req.UserID),
		Metadata: map[string]string{
			"user_id": strconv.Itoa(req.UserID),
			"pack":    req.Pack,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode session request: %w", err)
	}

	headers := c.headers()
	headers.Set("Idempotency-Key", uuid.New().String())
	status, respBody, respHeaders, err := c.client.Post(ctx, c.baseURL+"/v1/checkout/sessions", headers, body)
	if err != nil {
		return nil, fmt.Errorf("create card session: %w", err)
	}
	return decodeSession(status, respBody, respHeaders)
}

func (c *CardClient) GetSession(ctx context.Context, sessionID string) (*CardSession, error) {
	status, respBody, respHeaders, err := c.client.Get(ctx, c.baseURL+"/v1/checkout/sessions/"+sessionID, c.headers())
	if err != nil {
		return nil, fmt.Errorf("get card session %s: %w", sessionID, err)
	}
	return decodeSession(status, respBody, respHeaders)
}

func decodeSession(status int, body []byte, headers http.Header) (*CardSession, error) {
	switch status {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return nil, ErrSessionNotFound
	case http.StatusTooManyRequests:
		retryAfter := time.Second
		if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
		return nil, &RateLimitError{RetryAfter: retryAfter}
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedReply, status)
	}

	var session CardSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
	}
	if session.ID == "" {
		return nil, fmt.Errorf("%w: session without id", ErrUnexpectedReply)
	}
	return &session, nil
}
