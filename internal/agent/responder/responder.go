// Package responder turns an instruction and a conversation history into either
// assistant text or a request to call one of the offered tools.
package responder

import (
	"context"
	"fmt"
	"strings"

	"phone-assistant/internal/agent"
	"phone-assistant/pkg/llmprovider"
	"phone-assistant/pkg/log"
)

const (
	LogPrefixGenerate = "internal.agent.responder.Generate"

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
)

// ErrGenerationFailed wraps every synthesis failure.
var ErrGenerationFailed = fmt.Errorf("responder: %w", agent.ErrOracleFailure)

// LLM is the generation surface the responder needs; *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Responder struct {
	llm         LLM
	l           log.Logger
	temperature float64
	maxTokens   int
}

func New(llm LLM, l log.Logger) *Responder {
	return &Responder{
		llm:         llm,
		l:           l,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
}

// Generate asks the model to answer history under instruction. When tools are given the
// model may answer with a tool call instead of text; only the first call is returned.
func (r *Responder) Generate(ctx context.Context, instruction string, history []agent.Entry, tools []llmprovider.Tool) (agent.Generation, error) {
	msgs := agent.ToMessages(history)
	if len(msgs) == 0 {
		return agent.Generation{}, fmt.Errorf("%w: empty history", ErrGenerationFailed)
	}

	req := &llmprovider.Request{
		Messages:    msgs,
		Tools:       tools,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	}
	if strings.TrimSpace(instruction) != "" {
		req.SystemInstruction = &llmprovider.Message{Parts: []llmprovider.Part{{Text: instruction}}}
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return agent.Generation{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	gen := agent.Generation{Text: strings.TrimSpace(resp.Text())}
	if call := resp.FunctionCall(); call != nil && len(tools) > 0 {
		gen.ToolCall = &agent.ToolCall{Name: call.Name, Args: call.Args}
		r.l.Infof(ctx, "%s: tool call %s", LogPrefixGenerate, call.Name)
	}

	if gen.Text == "" && !gen.HasToolCall() && len(tools) == 0 {
		return agent.Generation{}, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return gen, nil
}
