package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/router"
	"phone-assistant/pkg/llmprovider"
)

func (o *Orchestrator) classifyIntent(ctx context.Context, s *turnState) (node, error) {
	intent, err := o.classifier.Classify(ctx, o.window(s.history))
	if err != nil {
		return "", err
	}
	if !intent.Valid() {
		return "", fmt.Errorf("%w: %q", router.ErrUnknownIntent, intent)
	}
	s.setIntent(intent)
	o.l.Infof(ctx, "%s: %s", LogPrefixClassify, intent)

	if _, ok := o.dataRoutes[intent]; ok {
		return nodePrepareDataCall, nil
	}
	return nodeSimpleBranch, nil
}

func (o *Orchestrator) simpleBranch(ctx context.Context, s *turnState) (node, error) {
	intent := s.mustIntent()
	next, ok := o.simpleRoutes[intent]
	if !ok {
		panic(fmt.Sprintf("orchestrator: no simple route for intent %s", intent))
	}
	return next, nil
}

// prepareDataCall offers the model only the intent's tool and ends the pass without
// a response when the model selects none.
func (o *Orchestrator) prepareDataCall(ctx context.Context, s *turnState) (node, error) {
	instruction := o.toolInstruction + buildDateContext(o.now(), o.timezone)

	offered, err := o.toolsFor(s.mustIntent())
	if err != nil {
		return "", err
	}

	gen, err := o.generator.Generate(ctx, instruction, o.window(s.history), offered)
	if err != nil {
		return "", err
	}
	if !gen.HasToolCall() {
		o.l.Infof(ctx, "%s: no tool selected for %s, clarification needed", LogPrefixPrepare, s.mustIntent())
		s.needsClarification = true
		return nodeEnd, nil
	}

	s.pendingCall = gen.ToolCall
	s.history = append(s.history, agent.ToolCallEntry(*gen.ToolCall))
	return nodeFetchData, nil
}

func (o *Orchestrator) toolsFor(intent router.Intent) ([]llmprovider.Tool, error) {
	name, ok := o.dataTools[intent]
	if !ok {
		panic(fmt.Sprintf("orchestrator: no tool for intent %s", intent))
	}
	for _, def := range o.tools.ToFunctionDefinitions() {
		if def.Name == name {
			return []llmprovider.Tool{def}, nil
		}
	}
	return nil, fmt.Errorf("orchestrator: tool %s is not registered", name)
}

// fetchData never fails: tool errors come back as {"error": ...} results.
func (o *Orchestrator) fetchData(ctx context.Context, s *turnState) (node, error) {
	intent := s.mustIntent()
	call := *s.pendingCall

	result := o.tools.Execute(ctx, call)
	if agent.IsErrorResult(result) {
		o.l.Warnf(ctx, "%s: %s returned %s", LogPrefixFetch, call.Name, result)
	}
	s.history = append(s.history, agent.ToolResultEntry(call.Name, result))

	next, ok := o.dataRoutes[intent]
	if !ok {
		panic(fmt.Sprintf("orchestrator: no data route for intent %s", intent))
	}
	return next, nil
}

func (o *Orchestrator) respondSimple(instruction string) step {
	return func(ctx context.Context, s *turnState) (node, error) {
		gen, err := o.generator.Generate(ctx, instruction, o.window(s.history), nil)
		if err != nil {
			return "", err
		}
		s.setResponse(gen.Text, nil)
		s.history = append(s.history, agent.AssistantEntry(gen.Text))
		return nodeEnd, nil
	}
}

// respondData synthesizes from the history including the tool result, then keeps the
// most recent tool result as context data only when it is a well-formed record for
// the tool that produced it.
func (o *Orchestrator) respondData(instruction string) step {
	return func(ctx context.Context, s *turnState) (node, error) {
		gen, err := o.generator.Generate(ctx, instruction, o.window(s.history), nil)
		if err != nil {
			return "", err
		}

		var data json.RawMessage
		if entry, ok := agent.LastToolResult(s.history); ok {
			if payload, known := o.payloads[entry.ToolName]; known {
				data = payload(json.RawMessage(entry.Content))
			}
		}
		if data == nil {
			o.l.Debugf(ctx, "%s: no context data for %s", LogPrefixRespond, s.mustIntent())
		}

		s.setResponse(gen.Text, data)
		s.history = append(s.history, agent.AssistantEntry(gen.Text))
		return nodeEnd, nil
	}
}
