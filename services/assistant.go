package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Assistant answers a visitor query given the instruction string built from
// the portfolio document.
type Assistant interface {
	Query(ctx context.Context, instructions, query string) (string, error)
}

// UpstreamError is a structured error reported by the completion endpoint
// itself, as opposed to a transport failure. Handlers map it to 400.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// HTTPAssistant talks to the hosted completion endpoint. Requests carry an
// explicit deadline; a hung upstream fails the request instead of blocking
// it forever. No retries.
type HTTPAssistant struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAssistant(baseURL string, timeout time.Duration) *HTTPAssistant {
	return &HTTPAssistant{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type aiQueryRequest struct {
	Instructions string `json:"instructions"`
	Query        string `json:"query"`
}

type aiQueryResponse struct {
	RespText string `json:"resp_text"`
	Error    string `json:"error"`
}

func (a *HTTPAssistant) Query(ctx context.Context, instructions, query string) (string, error) {
	payload, err := json.Marshal(aiQueryRequest{Instructions: instructions, Query: query})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/simple_ai_query", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint responded with status %d", resp.StatusCode)
	}

	var body aiQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if body.Error != "" {
		return "", &UpstreamError{Message: body.Error}
	}
	return body.RespText, nil
}
