package smsgateway

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

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Client sends SMS through a Twilio-compatible REST gateway.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	toNumber   string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a gateway client. Empty credentials produce a client
// that reports ErrNotConfigured on send, so callers can treat SMS as optional.
func NewClient(baseURL, accountSID, authToken, fromNumber, toNumber string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		toNumber:   toNumber,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured reports whether all credentials are present.
func (c *Client) Configured() bool {
	return c.accountSID != "" && c.authToken != "" && c.fromNumber != "" && c.toNumber != ""
}

// Send delivers one message to the business owner's number.
func (c *Client) Send(ctx context.Context, body string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.fromNumber)
	form.Set("To", c.toNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// accepted
	default:
		var gwErr errorResponse
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, &gwErr); jsonErr == nil && gwErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, gwErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("SMS dispatched, sid=%s status=%s", msg.SID, msg.Status)
	return nil
}
