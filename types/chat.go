package types

import "strings"

// QueryRequest exists for one round trip only.
type QueryRequest struct {
	Text string
}

// NewQueryRequest trims text and rejects empty input.
func NewQueryRequest(text string) (QueryRequest, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return QueryRequest{}, false
	}
	return QueryRequest{Text: trimmed}, true
}

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatErrorBody is the error half of a chat reply, with Error already
// rendered as text.
type ChatErrorBody struct {
	Error       string `json:"error,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}
