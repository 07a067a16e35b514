// Package contactform is the client side of the contact pipeline: the form
// field state, client-side phone validation, the submit lifecycle
// (idle → submitting → success/error), and localized error display.
//
// The server side is POST /api/contact, which responds with
// {"message": ...} on success or {"error": <kind>, "message": ...} otherwise.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Submission is one inquiry as sent over the wire.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// Client issues the one HTTP request of the pipeline.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the API at baseURL with a 30-second
// request timeout.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewClientWithHTTP creates a client using the given http.Client.
func NewClientWithHTTP(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Submit posts one submission. A non-2xx response is returned as a
// *SubmitError carrying the server's structured error kind; transport
// failures are returned as-is.
func (c *Client) Submit(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("contactform: marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("contactform: submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Best effort: the body may not be the structured envelope.
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&envelope)
	return &SubmitError{Status: resp.StatusCode, Kind: envelope.Error, Message: envelope.Message}
}
