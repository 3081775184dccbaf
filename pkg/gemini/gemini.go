package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 4 << 10
)

// IGemini is the generateContent surface the LLM provider chain needs.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, fills its defaults and returns a client safe for concurrent use.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

func (g *geminiImpl) Model() string {
	return g.model
}

// GenerateContent posts one generateContent call and returns the first candidate.
// Non-200 answers come back as *APIError.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return out.toResponse(), nil
}

func readAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}

	var eb geminiErrorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
		apiErr.Message = eb.Error.Message
		apiErr.Status = eb.Error.Status
	}
	return apiErr
}

func buildRequest(req *Request) geminiRequest {
	out := geminiRequest{Contents: make([]geminiContent, 0, len(req.Messages))}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: wireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, geminiContent{Role: wireRole(msg.Role), Parts: wireParts(msg.Parts)})
	}

	if len(req.Tools) > 0 {
		decls := make([]geminiFunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, geminiFunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
		}
		out.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 || req.JSONMode {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.JSONMode {
			out.GenerationConfig.ResponseMIMEType = "application/json"
		}
	}
	return out
}

// wireRole maps neutral roles onto the roles Gemini accepts.
func wireRole(role string) string {
	switch role {
	case "assistant", "model":
		return "model"
	case "tool", "function":
		return "function"
	default:
		return "user"
	}
}

func wireParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i].Text = p.Text
		if fc := p.FunctionCall; fc != nil {
			out[i].FunctionCall = &geminiFunctionCall{Name: fc.Name, Args: fc.Args}
		}
		if fr := p.FunctionResponse; fr != nil {
			response := fr.Response
			// The API rejects a functionResponse whose response is not an object.
			if _, ok := response.(map[string]interface{}); !ok {
				response = map[string]interface{}{"result": response}
			}
			out[i].FunctionResponse = &geminiFunctionResponse{Name: fr.Name, Response: response}
		}
	}
	return out
}

func (r *geminiResponse) toResponse() *Response {
	usage := &Usage{}
	if m := r.UsageMetadata; m != nil {
		usage.InputTokens = m.PromptTokenCount
		usage.OutputTokens = m.CandidatesTokenCount
		usage.TotalTokens = m.TotalTokenCount
	}
	if len(r.Candidates) == 0 {
		return &Response{Usage: usage}
	}

	content := r.Candidates[0].Content
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i].Text = p.Text
		if fc := p.FunctionCall; fc != nil {
			parts[i].FunctionCall = &FunctionCall{Name: fc.Name, Args: fc.Args}
		}
	}
	return &Response{Content: Content{Role: content.Role, Parts: parts}, Usage: usage}
}
