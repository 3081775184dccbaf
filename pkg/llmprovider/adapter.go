package llmprovider

import (
	"context"
	"encoding/json"
	"strings"

	"phone-assistant/pkg/gemini"
	"phone-assistant/pkg/openaicompat"
)

// GeminiAdapter serves Provider on top of the native Gemini client.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system *gemini.Content
	if req.SystemInstruction != nil {
		c := toGeminiContent(*req.SystemInstruction)
		system = &c
	}

	contents := make([]gemini.Content, len(req.Messages))
	for i, msg := range req.Messages {
		contents[i] = toGeminiContent(msg)
	}

	tools := make([]gemini.Tool, len(req.Tools))
	for i, t := range req.Tools {
		tools[i] = gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: system,
		Messages:          contents,
		Tools:             tools,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	parts := make([]Part, 0, len(resp.Content.Parts))
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		parts = append(parts, part)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		*out.Usage = Usage(*resp.Usage)
	}
	return out, nil
}

func (a *GeminiAdapter) Name() string { return "gemini" }

func (a *GeminiAdapter) Model() string { return a.client.Model() }

func toGeminiContent(msg Message) gemini.Content {
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if fc := p.FunctionCall; fc != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{Name: fc.Name, Args: fc.Args}
		}
		if fr := p.FunctionResponse; fr != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{Name: fr.Name, Response: fr.Response}
		}
	}
	return gemini.Content{Role: msg.Role, Parts: parts}
}

// ChatCompletionsAdapter serves Provider for every vendor speaking the
// OpenAI chat-completions protocol (Qwen, DeepSeek).
type ChatCompletionsAdapter struct {
	client *openaicompat.Client
}

func NewChatCompletionsAdapter(client *openaicompat.Client) *ChatCompletionsAdapter {
	return &ChatCompletionsAdapter{client: client}
}

func (a *ChatCompletionsAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	creq := &openaicompat.ChatRequest{
		Messages:    toChatMessages(req.SystemInstruction, req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, t := range req.Tools {
		creq.Tools = append(creq.Tools, openaicompat.ToolDef{
			Type:     "function",
			Function: openaicompat.FunctionDef{Name: t.Name, Description: t.Description, Parameters: t.Parameters},
		})
	}
	if req.JSONMode {
		creq.ResponseFormat = &openaicompat.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.Complete(ctx, creq)
	if err != nil {
		return nil, err
	}

	msg := resp.First()
	parts := []Part{}
	if msg.Content != "" {
		parts = append(parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				args = map[string]interface{}{}
			}
		}
		parts = append(parts, Part{FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args}})
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ChatCompletionsAdapter) Name() string { return a.client.Vendor() }

func (a *ChatCompletionsAdapter) Model() string { return a.client.Model() }

// toChatMessages flattens the system instruction and the conversation into
// chat-completions messages. Tool calls are paired with their results by name.
func toChatMessages(system *Message, msgs []Message) []openaicompat.ChatMessage {
	out := make([]openaicompat.ChatMessage, 0, len(msgs)+1)
	if system != nil && len(system.Parts) > 0 {
		out = append(out, openaicompat.ChatMessage{Role: "system", Content: joinText(system.Parts)})
	}

	for _, msg := range msgs {
		cm := openaicompat.ChatMessage{Role: msg.Role, Content: joinText(msg.Parts)}
		if cm.Role != RoleUser && cm.Role != RoleTool {
			cm.Role = RoleAssistant
		}

		for _, part := range msg.Parts {
			if fc := part.FunctionCall; fc != nil {
				args, _ := json.Marshal(fc.Args)
				cm.ToolCalls = append(cm.ToolCalls, openaicompat.ToolCall{
					ID:       toolCallID(fc.Name),
					Type:     "function",
					Function: openaicompat.FunctionCall{Name: fc.Name, Arguments: string(args)},
				})
			}
			if fr := part.FunctionResponse; fr != nil {
				result, _ := json.Marshal(fr.Response)
				cm.Role = RoleTool
				cm.Name = fr.Name
				cm.ToolCallID = toolCallID(fr.Name)
				cm.Content = string(result)
			}
		}
		out = append(out, cm)
	}
	return out
}

func toolCallID(name string) string { return "call_" + name }

func joinText(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
