package extract

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

// HTTPLayoutService calls a document layout/OCR API that accepts raw document
// bytes and returns per-page text with positioned lines and paragraphs
type HTTPLayoutService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Layout API wire structures
type layoutResponse struct {
	Pages []layoutPage `json:"pages"`
	Error string       `json:"error,omitempty"`
}

type layoutPage struct {
	Number     int     `json:"number"`
	Text       string  `json:"text"`
	Lines      []Block `json:"lines"`
	Paragraphs []Block `json:"paragraphs"`
}

// NewHTTPLayoutService creates a layout service client
func NewHTTPLayoutService(cfg model.ExtractionConfig, proxy model.ProxyConfig) (*HTTPLayoutService, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("layout service URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &HTTPLayoutService{
		baseURL: strings.TrimSuffix(cfg.ServiceURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(proxy.HTTP, proxy.HTTPS, proxy.NoProxy),
			},
		},
	}, nil
}

// Name returns the service name
func (s *HTTPLayoutService) Name() string {
	return "layout-api"
}

// Extract sends the document to the layout API and converts its response
// into text plus positioned segments. A response with no text at all is an
// error, never a silently empty result.
func (s *HTTPLayoutService) Extract(ctx context.Context, data []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/layout", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("layout service: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("layout service error (%d): %s", httpResp.StatusCode, truncate(string(body), 200))
	}

	var resp layoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal layout response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("layout service error: %s", resp.Error)
	}

	return resultFromLayout(resp)
}

// resultFromLayout assembles an extraction Result from the layout response
func resultFromLayout(resp layoutResponse) (*Result, error) {
	result := &Result{}
	var full strings.Builder

	for i, page := range resp.Pages {
		number := page.Number
		if number == 0 {
			number = i + 1
		}

		pageText := page.Text
		if pageText == "" {
			// Some layout backends omit page text; rebuild it from blocks
			var b strings.Builder
			for _, line := range page.Lines {
				b.WriteString(line.Text)
				b.WriteString("\n")
			}
			pageText = b.String()
		}

		result.Pages = append(result.Pages, Page{Number: number, Text: pageText})
		full.WriteString(pageText)
		full.WriteString("\n")

		result.Segments = append(result.Segments, SegmentsFromPage(number, page.Lines, page.Paragraphs)...)
	}

	result.Text = strings.TrimSpace(full.String())
	if result.Text == "" {
		return nil, ErrNoText
	}

	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
