// Package chat sends free-text prompts to the chat service and turns the
// replies into QueryResults.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clementus360/glowup/config"
	"clementus360/glowup/types"
)

// Response is a chat service reply as received, before classification.
type Response struct {
	StatusCode int
	Body       []byte
}

// Sender posts one message to the chat service.
type Sender interface {
	Send(ctx context.Context, req types.ChatRequest) (Response, error)
}

// Client talks to the chat endpoint over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = config.DefaultChatURL
	}
	if timeout <= 0 {
		timeout = config.DefaultChatTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts {message} and returns the reply whatever its status code. An
// error means no usable reply arrived.
func (c *Client) Send(ctx context.Context, req types.ChatRequest) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
