// Package reasoning talks to the external natural-language reasoning service.
// The service's output is prose-adjacent free text; callers run it through
// ExtractJSON before trusting anything in it.
package reasoning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no API key is set. Handlers surface it as
// a configuration error rather than a reasoning failure.
var ErrNotConfigured = errors.New("OPENAI_API_KEY is not set")

// Completer is the single capability the engine needs: one role-scoped
// instruction set, one free-text input, one free-text output.
type Completer interface {
	Complete(ctx context.Context, instructions, input string) (string, error)
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a credential is present. Checked per request so
// the server can boot without one.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete performs one chat-completion round trip. No retries: a failed call
// degrades to the deterministic coaching fallback upstream, so the worst case
// stays at one round trip per call site.
func (c *Client) Complete(ctx context.Context, instructions, input string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: instructions},
			{Role: "user", Content: input},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reasoning service returned status %d", resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("reasoning service returned no choices")
	}
	return payload.Choices[0].Message.Content, nil
}
