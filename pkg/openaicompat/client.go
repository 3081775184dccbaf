package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is kept in an APIError.
const maxErrorBody = 4 << 10

// Client talks to any endpoint implementing the OpenAI chat-completions protocol.
// It is safe for concurrent use.
type Client struct {
	vendor  string
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// New builds a Client, filling empty Config fields from the vendor defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	vendor := strings.ToLower(strings.TrimSpace(cfg.Vendor))
	if alias, ok := vendorAliases[vendor]; ok {
		vendor = alias
	}

	def, known := vendorDefaults[vendor]
	if !known && (cfg.BaseURL == "" || cfg.Model == "") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVendor, cfg.Vendor)
	}
	if cfg.Model == "" {
		cfg.Model = def.model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.baseURL
	}
	if cfg.HTTPClient == nil {
		timeout := def.timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		vendor:  vendor,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
	}, nil
}

func (c *Client) Vendor() string { return c.vendor }

func (c *Client) Model() string { return c.model }

// Complete posts req and decodes the completion. An empty req.Model uses the client's model.
func (c *Client) Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", c.vendor, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", c.vendor, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: send request: %w", c.vendor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", c.vendor, err)
	}
	return &out, nil
}

func (c *Client) apiError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{Vendor: c.vendor, StatusCode: resp.StatusCode, Message: string(raw)}

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
		apiErr.Message = eb.Error.Message
		apiErr.Type = eb.Error.Type
	}
	return apiErr
}
