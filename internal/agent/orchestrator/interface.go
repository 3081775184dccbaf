package orchestrator

import (
	"context"
	"encoding/json"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/router"
	"phone-assistant/pkg/llmprovider"
)

// IntentClassifier labels the latest user message. *router.SemanticRouter satisfies it.
type IntentClassifier interface {
	Classify(ctx context.Context, history []agent.Entry) (router.Intent, error)
}

// ResponseGenerator synthesizes text or a tool call. *responder.Responder satisfies it.
type ResponseGenerator interface {
	Generate(ctx context.Context, instruction string, history []agent.Entry, tools []llmprovider.Tool) (agent.Generation, error)
}

// ToolExecutor runs catalog tools. *agent.ToolRegistry satisfies it.
type ToolExecutor interface {
	ToFunctionDefinitions() []llmprovider.Tool
	Execute(ctx context.Context, call agent.ToolCall) json.RawMessage
}
