package redact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mvoren/clauselens/internal/model"
	"github.com/mvoren/clauselens/internal/util"
)

// HTTPRedactionService calls a DLP-style PII detection API
type HTTPRedactionService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type redactRequest struct {
	Text string `json:"text"`
}

type redactResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// NewHTTPRedactionService creates a redaction service client. Returns nil
// (no service) when no URL is configured; the chain then runs regex-only.
func NewHTTPRedactionService(cfg model.RedactionConfig, proxy model.ProxyConfig) *HTTPRedactionService {
	if cfg.ServiceURL == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPRedactionService{
		baseURL: strings.TrimSuffix(cfg.ServiceURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(proxy.HTTP, proxy.HTTPS, proxy.NoProxy),
			},
		},
	}
}

// Name returns the redactor name
func (s *HTTPRedactionService) Name() string {
	return "service"
}

// Redact sends text to the redaction API and returns its redacted form
func (s *HTTPRedactionService) Redact(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(redactRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/redact", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("redaction service: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("redaction service error (%d)", httpResp.StatusCode)
	}

	var resp redactResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("redaction service error: %s", resp.Error)
	}

	return resp.Text, nil
}
